package request

func New(d Direction, sector, count uint64) *Request {
	if count == 0 {
		count = 1
	}
	return &Request{Direction: d, Sector: sector, Count: count}
}

package request

const (
	Read Direction = iota
	Write
)

// Direction is the transfer direction of a request, used only for tracing
// and merge eligibility.
type Direction int

// Request is one block-I/O request. The host owns the object; the
// scheduler holds a reference while the request is pending. Sector is the
// sole sort key and never changes while queued.
type Request struct {
	Direction Direction
	Sector    uint64 // first sector
	Count     uint64 // sectors spanned
}

func (d Direction) Tag() byte {
	if d == Write {
		return 'W'
	}
	return 'R'
}

// End is the first sector past the request's range.
func (r *Request) End() uint64 {
	return r.Sector + r.Count
}

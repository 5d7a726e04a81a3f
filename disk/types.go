package disk

// Disk is a sector-addressed backing device. Buffers must be a whole
// number of sectors and fit inside the device.
type Disk interface {
	Close() error
	Flush() error
	Sectors() uint64
	Read(sector uint64, buf []byte) error
	Write(sector uint64, buf []byte) error
}

type disk struct {
	fd  int
	cnt uint64 // sector count
}

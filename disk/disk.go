package disk

import (
	"github.com/infinivision/sstf/constant"
	"github.com/infinivision/sstf/errmsg"
	"golang.org/x/sys/unix"
)

func New(path string, sectors uint64) (*disk, error) {
	if sectors == 0 {
		return nil, errmsg.BadConfig
	}
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR, 0664)
	if err != nil {
		return nil, err
	}
	if err := unix.Ftruncate(fd, int64(sectors)*constant.SectorSize); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &disk{fd: fd, cnt: sectors}, nil
}

func (d *disk) Close() error {
	return unix.Close(d.fd)
}

func (d *disk) Flush() error {
	return unix.Fdatasync(d.fd)
}

func (d *disk) Sectors() uint64 {
	return d.cnt
}

func (d *disk) Read(sector uint64, buf []byte) error {
	if err := d.check(sector, buf); err != nil {
		return err
	}
	n, err := unix.Pread(d.fd, buf, int64(sector)*constant.SectorSize)
	switch {
	case err != nil:
		return err
	case n != len(buf):
		return errmsg.ReadFailed
	}
	return nil
}

func (d *disk) Write(sector uint64, buf []byte) error {
	if err := d.check(sector, buf); err != nil {
		return err
	}
	n, err := unix.Pwrite(d.fd, buf, int64(sector)*constant.SectorSize)
	switch {
	case err != nil:
		return err
	case n != len(buf):
		return errmsg.WriteFailed
	}
	return nil
}

func (d *disk) check(sector uint64, buf []byte) error {
	if sector >= d.cnt || uint64(len(buf)) > (d.cnt-sector)*constant.SectorSize {
		return errmsg.OutOfRange
	}
	return nil
}

package errmsg

import "errors"

var (
	BadConfig     = errors.New("bad config")
	OutOfRange    = errors.New("out of range")
	ReadFailed    = errors.New("read failed")
	WriteFailed   = errors.New("write failed")
	QueueClosed   = errors.New("queue closed")
	QueueNotEmpty = errors.New("queue not empty")
	NotRegistered = errors.New("not registered")
)

package scheduler

import (
	"io"

	"github.com/infinivision/sstf/queue"
	"github.com/infinivision/sstf/request"
)

/*
Scheduler decides which pending request is issued next. The SSTF policy
is a greedy nearest-neighbor: the request whose sector is closest to the
last dispatched sector wins, with no starvation prevention. Callers must
serialize Add, Dispatch, Merge and Close externally; the scheduler holds
no lock of its own.
*/
type Scheduler interface {
	Close() error
	Head() uint64
	IsEmpty() bool
	Add(*request.Request)
	Dispatch() bool
	Merge(primary, absorbed *request.Request)
}

// Submitter is the host's native dispatch path. Submit places a selected
// request into the device's own issue sequence; ordering past this point
// belongs to the host.
type Submitter interface {
	Submit(*request.Request)
}

// nearester is implemented by pending collections that keep a sector index.
type nearester interface {
	Nearest(uint64) *request.Request
}

type scheduler struct {
	head uint64 // sector of the most recently dispatched request
	q    queue.Queue
	sub  Submitter
	tw   io.Writer
}

package elevator

import (
	"io"
	"sync"

	"github.com/infinivision/sstf/disk"
	"github.com/infinivision/sstf/queue"
	"github.com/infinivision/sstf/request"
	"github.com/infinivision/sstf/scheduler"
	"github.com/nnsgmsone/damrey/logger"
)

// Constructor builds a scheduler instance at queue attachment. Schedulers
// register one under their name at program start and the attaching queue
// binds to it by Config.Scheduler, the way an elevator ops table works.
type Constructor func(q queue.Queue, sub scheduler.Submitter, tw io.Writer) (scheduler.Scheduler, error)

/*
Queue is one device queue: a scheduler instance bound to a backing disk
behind a single boundary lock. All calls are serialized by that lock, so
the scheduler core itself runs lock-free. Queue is thread-safe.
*/
type Queue interface {
	Close() error
	Head() uint64
	Pending() int
	Add(*request.Request) error
	Dispatch() bool
	DispatchAll() int
}

type Config struct {
	Path      string // backing file
	Sectors   uint64
	Scheduler string
	Indexed   bool // position-indexed pending queue

	LogWriter   io.Writer
	TraceWriter io.Writer
}

type devq struct {
	sync.Mutex
	closed bool
	d      disk.Disk
	xs     []*request.Request // native issue sequence, sorted by sector
	q      queue.Queue
	schd   scheduler.Scheduler
	log    logger.Log
	buf    []byte // scratch for issued transfers
}

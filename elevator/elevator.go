package elevator

import (
	"io"
	"os"
	"sort"

	"github.com/infinivision/sstf/constant"
	"github.com/infinivision/sstf/disk"
	"github.com/infinivision/sstf/errmsg"
	"github.com/infinivision/sstf/queue"
	"github.com/infinivision/sstf/request"
	"github.com/nnsgmsone/damrey/logger"
)

func DefaultConfig() Config {
	return Config{
		Path:        "sstf.img",
		Sectors:     constant.DefaultSectors,
		Scheduler:   constant.SchedulerName,
		LogWriter:   os.Stderr,
		TraceWriter: io.Discard,
	}
}

// Attach opens the backing disk and binds the named scheduler to a new
// device queue.
func Attach(cfg Config) (*devq, error) {
	ctor, err := lookup(cfg.Scheduler)
	if err != nil {
		return nil, err
	}
	if cfg.LogWriter == nil {
		cfg.LogWriter = os.Stderr
	}
	d, err := disk.New(cfg.Path, cfg.Sectors)
	if err != nil {
		return nil, err
	}
	var q queue.Queue
	if cfg.Indexed {
		q = queue.NewIndexed()
	} else {
		q = queue.New()
	}
	dq := &devq{
		d:   d,
		q:   q,
		log: logger.New(cfg.LogWriter, constant.SchedulerName),
		buf: make([]byte, constant.SectorSize),
	}
	schd, err := ctor(q, dq, cfg.TraceWriter)
	if err != nil {
		d.Close()
		return nil, err
	}
	dq.schd = schd
	return dq, nil
}

// Close drains the native queue and detaches the scheduler. A scheduler
// still holding pending requests at detach means I/O is being dropped;
// that is escalated fatally rather than ignored.
func (dq *devq) Close() error {
	dq.Lock()
	defer dq.Unlock()
	if dq.closed {
		return errmsg.QueueClosed
	}
	dq.drain()
	if err := dq.schd.Close(); err != nil {
		dq.log.Fatalf("detach with pending requests: %v\n", err)
		return err
	}
	dq.closed = true
	if err := dq.d.Flush(); err != nil {
		dq.d.Close()
		return err
	}
	return dq.d.Close()
}

// Add hands a request to the scheduler, then lets the generic merge pass
// fold it with an adjacent same-direction request if one is pending. The
// surviving request keeps the lower start sector, so sort keys never move.
func (dq *devq) Add(rq *request.Request) error {
	dq.Lock()
	defer dq.Unlock()
	if dq.closed {
		return errmsg.QueueClosed
	}
	dq.schd.Add(rq)
	if p, a := dq.mergeCandidate(rq); p != nil {
		p.Count += a.Count
		dq.schd.Merge(p, a)
	}
	return nil
}

// Dispatch runs one scheduler dispatch cycle. The selected request lands
// in the native issue sequence; the sequence is flushed to the disk once
// it reaches the queue depth and at Close.
func (dq *devq) Dispatch() bool {
	dq.Lock()
	defer dq.Unlock()
	if dq.closed {
		return false
	}
	ok := dq.schd.Dispatch()
	if len(dq.xs) >= constant.DefaultQueueDepth {
		dq.drain()
	}
	return ok
}

func (dq *devq) DispatchAll() int {
	dq.Lock()
	defer dq.Unlock()
	cnt := 0
	for !dq.closed && dq.schd.Dispatch() {
		cnt++
		if len(dq.xs) >= constant.DefaultQueueDepth {
			dq.drain()
		}
	}
	dq.drain()
	return cnt
}

func (dq *devq) Pending() int {
	dq.Lock()
	defer dq.Unlock()
	return dq.q.Len()
}

func (dq *devq) Head() uint64 {
	dq.Lock()
	defer dq.Unlock()
	return dq.schd.Head()
}

// Submit is the scheduler's outbound submission path; it runs under the
// queue lock held by the dispatch cycle that selected rq.
func (dq *devq) Submit(rq *request.Request) {
	i := sort.Search(len(dq.xs), func(i int) bool { return dq.xs[i].Sector >= rq.Sector })
	dq.xs = append(dq.xs, nil)
	copy(dq.xs[i+1:], dq.xs[i:])
	dq.xs[i] = rq
}

func (dq *devq) mergeCandidate(rq *request.Request) (primary, absorbed *request.Request) {
	for p := range dq.q.Iterate() {
		if p == rq || p.Direction != rq.Direction {
			continue
		}
		switch {
		case p.End() == rq.Sector:
			return p, rq
		case rq.End() == p.Sector:
			return rq, p
		}
	}
	return nil, nil
}

func (dq *devq) drain() {
	for _, rq := range dq.xs {
		dq.issue(rq)
	}
	dq.xs = dq.xs[:0]
}

func (dq *devq) issue(rq *request.Request) {
	n := rq.Count * constant.SectorSize
	if uint64(len(dq.buf)) < n {
		dq.buf = make([]byte, n)
	}
	var err error
	if buf := dq.buf[:n]; rq.Direction == request.Write {
		err = dq.d.Write(rq.Sector, buf)
	} else {
		err = dq.d.Read(rq.Sector, buf)
	}
	if err != nil {
		dq.log.Errorf("issue %c %v+%v failed: %v\n", rq.Direction.Tag(), rq.Sector, rq.Count, err)
	}
}

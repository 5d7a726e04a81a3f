package scheduler

import (
	"fmt"
	"io"

	"github.com/infinivision/sstf/errmsg"
	"github.com/infinivision/sstf/queue"
	"github.com/infinivision/sstf/request"
)

func New(q queue.Queue, sub Submitter, tw io.Writer) (*scheduler, error) {
	if q == nil || sub == nil {
		return nil, errmsg.BadConfig
	}
	if tw == nil {
		tw = io.Discard
	}
	return &scheduler{q: q, sub: sub, tw: tw}, nil
}

func (s *scheduler) Add(rq *request.Request) {
	s.q.Add(rq)
	fmt.Fprintf(s.tw, "[SSTF] add %c %d\n", rq.Direction.Tag(), rq.Sector)
}

// Dispatch removes the request nearest to the head position, hands it to
// the host's submission path and records its sector as the new head.
// Returns false and changes nothing when no request is pending.
func (s *scheduler) Dispatch() bool {
	rq := selectNearest(s.q, s.head)
	if rq == nil {
		return false
	}
	s.q.Remove(rq)
	s.sub.Submit(rq)
	s.head = rq.Sector
	fmt.Fprintf(s.tw, "[SSTF] dsp %c %d\n", rq.Direction.Tag(), rq.Sector)
	return true
}

// Merge drops absorbed from the pending collection after the host folded
// its range into primary. primary stays queued and selectable; an absent
// absorbed is a no-op. The merge decision itself is the host's.
func (s *scheduler) Merge(primary, absorbed *request.Request) {
	s.q.Remove(absorbed)
}

func (s *scheduler) IsEmpty() bool {
	return s.q.IsEmpty()
}

func (s *scheduler) Head() uint64 {
	return s.head
}

// Close fails with QueueNotEmpty if requests are still pending: tearing
// down a non-empty queue would drop I/O on the floor.
func (s *scheduler) Close() error {
	if !s.q.IsEmpty() {
		return errmsg.QueueNotEmpty
	}
	return nil
}

func selectNearest(q queue.Queue, head uint64) *request.Request {
	if n, ok := q.(nearester); ok {
		return n.Nearest(head)
	}
	var min uint64
	var next *request.Request

	for rq := range q.Iterate() {
		if d := seekDistance(rq.Sector, head); next == nil || d < min {
			min, next = d, rq
		}
	}
	return next
}

// seekDistance is the absolute difference of two unsigned sectors; the
// operands are compared first so the subtraction can never wrap.
func seekDistance(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

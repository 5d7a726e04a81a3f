package queue

import (
	"iter"

	"github.com/infinivision/sstf/request"
	"github.com/tidwall/btree"
)

// NewIndexed returns a queue that also keeps its requests ordered by
// (sector, insertion order), making nearest-sector lookup O(log n)
// instead of a full scan. Selection results are identical to the linear
// scan, ties included.
func NewIndexed() *indexed {
	return &indexed{
		q:  New(),
		mp: make(map[*request.Request]*entry),
		bt: btree.NewBTreeG(func(a, b *entry) bool {
			if a.rq.Sector != b.rq.Sector {
				return a.rq.Sector < b.rq.Sector
			}
			return a.seq < b.seq
		}),
	}
}

func (x *indexed) Len() int {
	return x.q.Len()
}

func (x *indexed) IsEmpty() bool {
	return x.q.IsEmpty()
}

func (x *indexed) Add(rq *request.Request) {
	if _, ok := x.mp[rq]; ok {
		return
	}
	x.seq++
	e := &entry{seq: x.seq, rq: rq}
	x.mp[rq] = e
	x.bt.Set(e)
	x.q.Add(rq)
}

func (x *indexed) Remove(rq *request.Request) {
	if e, ok := x.mp[rq]; ok {
		delete(x.mp, rq)
		x.bt.Delete(e)
		x.q.Remove(rq)
	}
}

func (x *indexed) Iterate() iter.Seq[*request.Request] {
	return x.q.Iterate()
}

// Nearest returns the pending request whose sector is closest to pos,
// preferring the earliest-inserted on equal distance. Returns nil when
// the queue is empty.
func (x *indexed) Nearest(pos uint64) *request.Request {
	var lo, hi *entry

	// pivot seq 0 sorts before every live entry at the same sector, so
	// Ascend covers sector >= pos and Descend covers sector < pos.
	pivot := &entry{rq: &request.Request{Sector: pos}}
	x.bt.Ascend(pivot, func(e *entry) bool {
		hi = e
		return false
	})
	x.bt.Descend(pivot, func(e *entry) bool {
		lo = e
		return false
	})
	if lo != nil { // earliest insert among entries at lo's sector
		x.bt.Ascend(&entry{rq: &request.Request{Sector: lo.rq.Sector}}, func(e *entry) bool {
			lo = e
			return false
		})
	}
	switch {
	case lo == nil && hi == nil:
		return nil
	case lo == nil:
		return hi.rq
	case hi == nil:
		return lo.rq
	}
	if dl, dh := pos-lo.rq.Sector, hi.rq.Sector-pos; dl < dh || (dl == dh && lo.seq < hi.seq) {
		return lo.rq
	}
	return hi.rq
}

package queue

import (
	"container/list"
	"iter"

	"github.com/infinivision/sstf/request"
	"github.com/tidwall/btree"
)

// Queue is the pending-request collection. A request is present at most
// once; iteration yields requests in insertion order.
type Queue interface {
	Len() int
	IsEmpty() bool
	Add(*request.Request)
	Remove(*request.Request)
	Iterate() iter.Seq[*request.Request]
}

type queue struct {
	l  *list.List
	mp map[*request.Request]*list.Element
}

type entry struct {
	seq uint64 // insertion order, tie-break key
	rq  *request.Request
}

type indexed struct {
	seq uint64
	q   *queue
	bt  *btree.BTreeG[*entry]
	mp  map[*request.Request]*entry
}

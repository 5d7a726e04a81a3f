package queue

import (
	"container/list"
	"iter"

	"github.com/infinivision/sstf/request"
)

func New() *queue {
	return &queue{
		l:  new(list.List),
		mp: make(map[*request.Request]*list.Element),
	}
}

func (q *queue) Len() int {
	return q.l.Len()
}

func (q *queue) IsEmpty() bool {
	return q.l.Len() == 0
}

func (q *queue) Add(rq *request.Request) {
	if _, ok := q.mp[rq]; ok {
		return
	}
	q.mp[rq] = q.l.PushBack(rq)
}

func (q *queue) Remove(rq *request.Request) {
	if e, ok := q.mp[rq]; ok {
		delete(q.mp, rq)
		q.l.Remove(e)
	}
}

// Iterate yields the live collection in insertion order. The successor is
// captured before each yield, so removing the yielded request is safe.
func (q *queue) Iterate() iter.Seq[*request.Request] {
	return func(yield func(*request.Request) bool) {
		var next *list.Element

		for e := q.l.Front(); e != nil; e = next {
			next = e.Next()
			if !yield(e.Value.(*request.Request)) {
				return
			}
		}
	}
}

package scheduler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/infinivision/sstf/errmsg"
	"github.com/infinivision/sstf/queue"
	"github.com/infinivision/sstf/request"
)

type hostStub struct {
	xs []*request.Request
}

func (h *hostStub) Submit(rq *request.Request) {
	h.xs = append(h.xs, rq)
}

func newScheduler(t *testing.T, q queue.Queue) (*scheduler, *hostStub) {
	t.Helper()
	h := new(hostStub)
	s, err := New(q, h, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, h
}

// seed dispatches one request to move the head to a known sector.
func seed(t *testing.T, s *scheduler, sector uint64) {
	t.Helper()
	s.Add(request.New(request.Read, sector, 1))
	if !s.Dispatch() {
		t.Fatal("Dispatch() = false while seeding")
	}
	if s.Head() != sector {
		t.Fatalf("Head() = %d, want %d", s.Head(), sector)
	}
}

func TestNew_BadConfig(t *testing.T) {
	if _, err := New(nil, new(hostStub), nil); err != errmsg.BadConfig {
		t.Errorf("New(nil queue) error = %v, want BadConfig", err)
	}
	if _, err := New(queue.New(), nil, nil); err != errmsg.BadConfig {
		t.Errorf("New(nil submitter) error = %v, want BadConfig", err)
	}
}

func TestDispatch_Nearest(t *testing.T) {
	for name, q := range map[string]queue.Queue{"list": queue.New(), "indexed": queue.NewIndexed()} {
		t.Run(name, func(t *testing.T) {
			s, h := newScheduler(t, q)
			seed(t, s, 100)
			s.Add(request.New(request.Read, 50, 1))
			s.Add(request.New(request.Read, 120, 1))
			s.Add(request.New(request.Read, 80, 1))

			want := []uint64{120, 80, 50}
			for i, sector := range want {
				if !s.Dispatch() {
					t.Fatalf("Dispatch() #%d = false", i)
				}
				if s.Head() != sector {
					t.Errorf("Head() after dispatch #%d = %d, want %d", i, s.Head(), sector)
				}
			}
			if !s.IsEmpty() {
				t.Error("IsEmpty() = false after draining")
			}
			if got := h.xs[1:]; got[0].Sector != 120 || got[1].Sector != 80 || got[2].Sector != 50 {
				t.Errorf("submitted order = %d,%d,%d, want 120,80,50", got[0].Sector, got[1].Sector, got[2].Sector)
			}
		})
	}
}

func TestDispatch_Tie(t *testing.T) {
	s, _ := newScheduler(t, queue.New())
	seed(t, s, 10)
	s.Add(request.New(request.Read, 20, 1))
	s.Add(request.New(request.Read, 0, 1))
	// both are distance 10; the first inserted wins
	if !s.Dispatch() {
		t.Fatal("Dispatch() = false")
	}
	if s.Head() != 20 {
		t.Errorf("Head() = %d, want 20 (first inserted)", s.Head())
	}
}

func TestDispatch_NoWraparound(t *testing.T) {
	s, _ := newScheduler(t, queue.New())
	seed(t, s, 1000)
	s.Add(request.New(request.Read, 1150, 1))
	s.Add(request.New(request.Read, 900, 1))
	// 900 is nearer (100 vs 150); an unsigned-wrapping distance would
	// make it look astronomically far and pick 1150
	if !s.Dispatch() {
		t.Fatal("Dispatch() = false")
	}
	if s.Head() != 900 {
		t.Errorf("Head() = %d, want 900", s.Head())
	}
}

func TestDispatch_Empty(t *testing.T) {
	s, h := newScheduler(t, queue.New())
	seed(t, s, 42)
	if s.Dispatch() {
		t.Error("Dispatch() = true on empty queue")
	}
	if s.Head() != 42 {
		t.Errorf("Head() = %d, want 42 (unchanged)", s.Head())
	}
	if len(h.xs) != 1 {
		t.Errorf("submitted %d requests, want 1", len(h.xs))
	}
}

func TestDispatch_Bookkeeping(t *testing.T) {
	s, h := newScheduler(t, queue.New())
	rq := request.New(request.Write, 64, 8)
	s.Add(rq)
	if !s.Dispatch() {
		t.Fatal("Dispatch() = false")
	}
	if s.Head() != 64 {
		t.Errorf("Head() = %d, want 64", s.Head())
	}
	if !s.IsEmpty() {
		t.Error("dispatched request still pending")
	}
	if len(h.xs) != 1 || h.xs[0] != rq {
		t.Error("request was not handed to the submitter")
	}
}

func TestMerge(t *testing.T) {
	s, _ := newScheduler(t, queue.New())
	a := request.New(request.Read, 10, 2)
	b := request.New(request.Read, 12, 2)
	s.Add(a)
	s.Add(b)
	s.Merge(a, b)
	s.Merge(a, b) // second notification is a no-op
	if s.IsEmpty() {
		t.Fatal("IsEmpty() = true, primary must stay queued")
	}
	if !s.Dispatch() {
		t.Fatal("Dispatch() = false")
	}
	if s.Head() != 10 {
		t.Errorf("Head() = %d, want 10 (primary)", s.Head())
	}
	if s.Dispatch() {
		t.Error("Dispatch() = true, absorbed request resurfaced")
	}
}

func TestMerge_NotQueued(t *testing.T) {
	s, _ := newScheduler(t, queue.New())
	a := request.New(request.Read, 10, 2)
	s.Add(a)
	s.Merge(a, request.New(request.Read, 12, 2))
	if s.IsEmpty() {
		t.Error("Merge of a never-queued request changed the queue")
	}
}

func TestClose(t *testing.T) {
	s, _ := newScheduler(t, queue.New())
	s.Add(request.New(request.Read, 7, 1))
	if err := s.Close(); err != errmsg.QueueNotEmpty {
		t.Errorf("Close() with pending request error = %v, want QueueNotEmpty", err)
	}
	s.Dispatch()
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(queue.New(), new(hostStub), &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.Add(request.New(request.Read, 120, 1))
	s.Add(request.New(request.Write, 64, 1))
	s.Dispatch()
	s.Dispatch()
	want := []string{
		"[SSTF] add R 120",
		"[SSTF] add W 64",
		"[SSTF] dsp W 64",
		"[SSTF] dsp R 120",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("trace has %d records, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSeekDistance(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 0, 0},
		{10, 4, 6},
		{4, 10, 6},
		{0, 1 << 63, 1 << 63},
		{^uint64(0), 0, ^uint64(0)},
	}
	for _, tt := range tests {
		if got := seekDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("seekDistance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

package clock

import (
	"container/heap"
	"time"
)

// Virtual is a logical clock for deferred page actions. Time only moves when
// Advance is called, and due actions run on the caller's goroutine in due-time
// order, ties broken by scheduling order. It is not safe for concurrent use.
type Virtual struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewVirtual returns a clock at elapsed time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// AfterFunc implements ports.Scheduler.
func (v *Virtual) AfterFunc(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	v.seq++
	heap.Push(&v.queue, &task{due: v.now + delay, seq: v.seq, fn: fn})
}

// Advance moves the clock forward by d, running every action that falls due.
// Actions scheduled while advancing run too if they fall inside the window.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now + d
	for v.queue.Len() > 0 && v.queue[0].due <= target {
		next := heap.Pop(&v.queue).(*task)
		v.now = next.due
		next.fn()
	}
	v.now = target
}

// Elapsed returns the logical time since the clock was created.
func (v *Virtual) Elapsed() time.Duration {
	return v.now
}

// Pending returns the number of actions not yet run.
func (v *Virtual) Pending() int {
	return v.queue.Len()
}

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

package pageview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type scheduledAction struct {
	id    uint64
	delay time.Duration
}

// deferredQueue adapts ports.Scheduler to Bubble Tea. Scheduled actions are
// handed to the runtime as tick commands and run inside Update when their
// message arrives, so they never race with key handling.
type deferredQueue struct {
	nextID  uint64
	pending []scheduledAction
	waiting map[uint64]func()
}

func newDeferredQueue() *deferredQueue {
	return &deferredQueue{waiting: make(map[uint64]func())}
}

// AfterFunc implements ports.Scheduler.
func (q *deferredQueue) AfterFunc(delay time.Duration, fn func()) {
	q.nextID++
	q.pending = append(q.pending, scheduledAction{id: q.nextID, delay: delay})
	q.waiting[q.nextID] = fn
}

// commands drains actions scheduled since the last call into tick commands.
func (q *deferredQueue) commands() []tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(q.pending))
	for _, action := range q.pending {
		id := action.id
		cmds = append(cmds, tea.Tick(action.delay, func(time.Time) tea.Msg {
			return deferredMsg{id: id}
		}))
	}
	q.pending = nil

	return cmds
}

// run executes the action with the given id once.
func (q *deferredQueue) run(id uint64) bool {
	fn, ok := q.waiting[id]
	if !ok {
		return false
	}
	delete(q.waiting, id)
	fn()
	return true
}

// outstanding returns the number of actions that have not run yet.
func (q *deferredQueue) outstanding() int {
	return len(q.waiting)
}

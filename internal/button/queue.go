package button

import (
	"sync"
	"time"
)

// Queue is a Detector fed with ready-made gestures, e.g. from a keyboard.
// Push may be called from any goroutine; the gestures are only handed out when the render loop polls.
type Queue struct {
	events []Event
	lock   sync.Mutex
}

var _ Detector = &Queue{}

// NewQueue returns an empty Queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds a gesture to the queue
func (q *Queue) Push(ev Event) {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.events = append(q.events, ev)
}

// Poll returns all queued gestures and empties the queue
func (q *Queue) Poll(_ time.Duration) []Event {
	q.lock.Lock()
	defer q.lock.Unlock()
	events := q.events
	q.events = nil
	return events
}

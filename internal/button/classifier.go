package button

import "time"

// Default timings of the Classifier
const (
	DefaultDebounce    = 50 * time.Millisecond
	DefaultClickWindow = 400 * time.Millisecond
	DefaultLongPress   = 800 * time.Millisecond
)

type classifierState int

const (
	idle classifierState = iota
	down
	up
	counting
	held
	released
)

// Classifier turns a stream of pressed/released samples into gestures.
//
// A press shorter than Debounce is ignored. Presses separated by less than ClickWindow are counted together:
// one gives a Click, two a DoubleClick, more a MultiClick. A press held longer than LongPress gives a
// LongPressStart and, once released, a LongPressStop.
type Classifier struct {
	Debounce    time.Duration
	ClickWindow time.Duration
	LongPress   time.Duration

	state    classifierState
	previous classifierState
	start    time.Duration
	clicks   int
}

// NewClassifier returns a Classifier with the default timings
func NewClassifier() *Classifier {
	return &Classifier{
		Debounce:    DefaultDebounce,
		ClickWindow: DefaultClickWindow,
		LongPress:   DefaultLongPress,
	}
}

// Update processes one sample of the button and returns the gestures it completes, if any
func (c *Classifier) Update(pressed bool, now time.Duration) (events []Event) {
	wait := now - c.start

	switch c.state {
	case idle:
		if pressed {
			c.moveTo(down)
			c.start = now
			c.clicks = 0
		}
	case down:
		switch {
		case !pressed && wait < c.Debounce:
			c.moveTo(c.previous)
		case !pressed:
			c.moveTo(up)
			c.start = now
		case wait > c.LongPress:
			events = append(events, Event{Gesture: LongPressStart})
			c.moveTo(held)
		}
	case up:
		switch {
		case pressed && wait < c.Debounce:
			c.moveTo(c.previous)
		case wait >= c.Debounce:
			c.clicks++
			c.moveTo(counting)
		}
	case counting:
		switch {
		case pressed:
			c.moveTo(down)
			c.start = now
		case wait > c.ClickWindow:
			events = append(events, c.clickEvent())
			c.reset()
		}
	case held:
		if !pressed {
			c.moveTo(released)
			c.start = now
		}
	case released:
		switch {
		case pressed && wait < c.Debounce:
			c.moveTo(held)
		case wait >= c.Debounce:
			events = append(events, Event{Gesture: LongPressStop})
			c.reset()
		}
	}
	return events
}

func (c *Classifier) clickEvent() Event {
	switch c.clicks {
	case 1:
		return Event{Gesture: Click, Clicks: 1}
	case 2:
		return Event{Gesture: DoubleClick, Clicks: 2}
	default:
		return Event{Gesture: MultiClick, Clicks: c.clicks}
	}
}

func (c *Classifier) moveTo(state classifierState) {
	c.previous = c.state
	c.state = state
}

func (c *Classifier) reset() {
	c.state = idle
	c.previous = idle
	c.clicks = 0
}

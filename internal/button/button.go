package button

import (
	"fmt"
	"time"
)

// Gesture is a classified button interaction
type Gesture int

const (
	Click Gesture = iota
	DoubleClick
	MultiClick
	LongPressStart
	LongPressStop
)

var gestureNames = map[Gesture]string{
	Click:          "click",
	DoubleClick:    "double-click",
	MultiClick:     "multi-click",
	LongPressStart: "long-press-start",
	LongPressStop:  "long-press-stop",
}

func (g Gesture) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gesture(%d)", int(g))
}

// Event is a gesture detected on the button. Clicks holds the number of clicks for a MultiClick.
type Event struct {
	Gesture Gesture
	Clicks  int
}

// Detector classifies button input into gestures. Poll is called once per frame and returns the gestures
// completed since the previous call, in the order they happened.
type Detector interface {
	Poll(now time.Duration) []Event
}

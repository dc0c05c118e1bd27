package button_test

import (
	"testing"
	"time"

	"github.com/clambin/ledstrip/internal/button"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// segment holds the button in one position for a while
type segment struct {
	pressed  bool
	duration time.Duration
}

const sampleInterval = 10 * time.Millisecond

func run(c *button.Classifier, segments []segment) (events []button.Event) {
	var now time.Duration
	for _, s := range segments {
		for end := now + s.duration; now < end; now += sampleInterval {
			events = append(events, c.Update(s.pressed, now)...)
		}
	}
	return events
}

func clicks(count int, pressed, released time.Duration) (segments []segment) {
	for i := 0; i < count; i++ {
		segments = append(segments, segment{pressed: true, duration: pressed}, segment{duration: released})
	}
	return append(segments, segment{duration: time.Second})
}

func TestClassifier(t *testing.T) {
	testCases := []struct {
		name     string
		segments []segment
		want     []button.Event
	}{
		{
			name:     "single click",
			segments: clicks(1, 100*time.Millisecond, 100*time.Millisecond),
			want:     []button.Event{{Gesture: button.Click, Clicks: 1}},
		},
		{
			name:     "double click",
			segments: clicks(2, 100*time.Millisecond, 100*time.Millisecond),
			want:     []button.Event{{Gesture: button.DoubleClick, Clicks: 2}},
		},
		{
			name:     "triple click",
			segments: clicks(3, 100*time.Millisecond, 100*time.Millisecond),
			want:     []button.Event{{Gesture: button.MultiClick, Clicks: 3}},
		},
		{
			name:     "quadruple click",
			segments: clicks(4, 80*time.Millisecond, 150*time.Millisecond),
			want:     []button.Event{{Gesture: button.MultiClick, Clicks: 4}},
		},
		{
			name:     "two separate clicks",
			segments: append(clicks(1, 100*time.Millisecond, 0), clicks(1, 100*time.Millisecond, 0)...),
			want:     []button.Event{{Gesture: button.Click, Clicks: 1}, {Gesture: button.Click, Clicks: 1}},
		},
		{
			name:     "bounce",
			segments: []segment{{pressed: true, duration: 20 * time.Millisecond}, {duration: time.Second}},
		},
		{
			name:     "long press",
			segments: []segment{{pressed: true, duration: 2 * time.Second}, {duration: 100 * time.Millisecond}},
			want:     []button.Event{{Gesture: button.LongPressStart}, {Gesture: button.LongPressStop}},
		},
		{
			name:     "nothing",
			segments: []segment{{duration: time.Second}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(button.NewClassifier(), tt.segments))
		})
	}
}

func TestClassifier_LongPressTiming(t *testing.T) {
	c := button.NewClassifier()

	assert.Empty(t, c.Update(true, 0))
	assert.Empty(t, c.Update(true, 800*time.Millisecond))
	assert.Equal(t, []button.Event{{Gesture: button.LongPressStart}}, c.Update(true, 810*time.Millisecond))
	// no repeat while held
	assert.Empty(t, c.Update(true, 5*time.Second))
	assert.Empty(t, c.Update(false, 5010*time.Millisecond))
	// a short bounce after release keeps the press going
	assert.Empty(t, c.Update(true, 5020*time.Millisecond))
	assert.Empty(t, c.Update(false, 5030*time.Millisecond))
	assert.Equal(t, []button.Event{{Gesture: button.LongPressStop}}, c.Update(false, 5080*time.Millisecond))
}

func TestGesture_String(t *testing.T) {
	assert.Equal(t, "click", button.Click.String())
	assert.Equal(t, "long-press-stop", button.LongPressStop.String())
	assert.Equal(t, "gesture(12)", button.Gesture(12).String())
}

func TestQueue(t *testing.T) {
	q := button.NewQueue()
	assert.Empty(t, q.Poll(0))

	q.Push(button.Event{Gesture: button.Click, Clicks: 1})
	q.Push(button.Event{Gesture: button.MultiClick, Clicks: 4})

	assert.Equal(t, []button.Event{
		{Gesture: button.Click, Clicks: 1},
		{Gesture: button.MultiClick, Clicks: 4},
	}, q.Poll(0))
	assert.Empty(t, q.Poll(0))
}

func TestGPIO(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	b, err := button.NewGPIO(pin)
	require.NoError(t, err)
	assert.Equal(t, gpio.PullUp, pin.P)

	var events []button.Event
	var now time.Duration
	sample := func(level gpio.Level, duration time.Duration) {
		pin.Lock()
		pin.L = level
		pin.Unlock()
		for end := now + duration; now < end; now += sampleInterval {
			events = append(events, b.Poll(now)...)
		}
	}

	sample(gpio.Low, 100*time.Millisecond)
	sample(gpio.High, time.Second)
	assert.Equal(t, []button.Event{{Gesture: button.Click, Clicks: 1}}, events)
}

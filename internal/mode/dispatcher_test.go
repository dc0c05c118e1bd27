package mode_test

import (
	"testing"

	"github.com/clambin/ledstrip/internal/button"
	"github.com/clambin/ledstrip/internal/mode"
	"github.com/clambin/ledstrip/internal/pattern"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewState(t *testing.T) {
	s := mode.NewState()
	assert.Equal(t, &mode.State{
		Family:     pattern.Solid,
		Pattern:    0,
		Enabled:    true,
		Brightness: 250,
	}, s)
}

func TestDispatcher_Click(t *testing.T) {
	d := mode.NewDispatcher(mode.NewState())

	for i := 0; i < 3; i++ {
		d.Click()
	}
	assert.Equal(t, 3, d.State.Pattern)

	for i := 3; i < len(pattern.Colors); i++ {
		d.Click()
	}
	assert.Equal(t, 0, d.State.Pattern)
}

func TestDispatcher_Click_Animated(t *testing.T) {
	d := mode.NewDispatcher(mode.NewState())
	d.DoubleClick()

	for i := 0; i < len(pattern.Animations)-1; i++ {
		d.Click()
	}
	assert.Equal(t, len(pattern.Animations)-1, d.State.Pattern)
	d.Click()
	assert.Equal(t, 0, d.State.Pattern)
}

func TestDispatcher_DoubleClick(t *testing.T) {
	d := mode.NewDispatcher(mode.NewState())

	d.Click()
	d.Click()
	d.DoubleClick()
	assert.Equal(t, pattern.Animated, d.State.Family)
	assert.Zero(t, d.State.Pattern)

	d.Click()
	d.DoubleClick()
	assert.Equal(t, pattern.Solid, d.State.Family)
	assert.Zero(t, d.State.Pattern)
}

func TestDispatcher_MultiClick(t *testing.T) {
	testCases := []struct {
		name   string
		before mode.State
		clicks int
		after  mode.State
	}{
		{
			name:   "three clicks enable automatic mode",
			before: mode.State{Enabled: true},
			clicks: 3,
			after:  mode.State{Enabled: true, Automatic: true, ModeChanged: true},
		},
		{
			name:   "three clicks disable automatic mode",
			before: mode.State{Enabled: true, Automatic: true},
			clicks: 3,
			after:  mode.State{Enabled: true, Automatic: false, ModeChanged: true},
		},
		{
			name:   "three clicks while off only switch on",
			before: mode.State{Enabled: false, Pattern: 2},
			clicks: 3,
			after:  mode.State{Enabled: true, Pattern: 2},
		},
		{
			name:   "four clicks switch off",
			before: mode.State{Enabled: true, Automatic: true},
			clicks: 4,
			after:  mode.State{Enabled: false, Automatic: true},
		},
		{
			name:   "four clicks switch on",
			before: mode.State{Enabled: false},
			clicks: 4,
			after:  mode.State{Enabled: true},
		},
		{
			name:   "five clicks are ignored",
			before: mode.State{Enabled: true, Pattern: 1},
			clicks: 5,
			after:  mode.State{Enabled: true, Pattern: 1},
		},
		{
			name:   "five clicks while off are ignored",
			before: mode.State{Enabled: false},
			clicks: 5,
			after:  mode.State{Enabled: false},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.before
			mode.NewDispatcher(&state).MultiClick(tt.clicks)
			assert.Equal(t, tt.after, state)
		})
	}
}

func TestDispatcher_Disabled(t *testing.T) {
	state := mode.State{Enabled: false, Family: pattern.Animated, Pattern: 3, Automatic: true, Brightness: 100}
	d := mode.NewDispatcher(&state)

	d.LongPressStart()
	d.LongPressStop()
	assert.Equal(t, mode.State{Enabled: false, Family: pattern.Animated, Pattern: 3, Automatic: true, Brightness: 100}, state)

	d.Click()
	assert.Equal(t, mode.State{Enabled: true, Family: pattern.Animated, Pattern: 3, Automatic: true, Brightness: 100}, state)
}

func TestDispatcher_Brightness(t *testing.T) {
	d := mode.NewDispatcher(mode.NewState())

	// nothing happens outside a long press
	b, changed := d.StepBrightness()
	assert.False(t, changed)
	assert.Equal(t, uint8(250), b)

	// the first long press dims the strip
	d.LongPressStart()
	b, changed = d.StepBrightness()
	assert.True(t, changed)
	assert.Equal(t, uint8(245), b)
	d.LongPressStop()
	assert.False(t, d.State.Adjusting)
	assert.True(t, d.State.Increase)

	// the second one brightens it, up to the limit
	d.LongPressStart()
	b, changed = d.StepBrightness()
	assert.True(t, changed)
	assert.Equal(t, uint8(250), b)
	b, changed = d.StepBrightness()
	assert.False(t, changed)
	assert.Equal(t, uint8(250), b)
	d.LongPressStop()

	// the third one dims it, down to the limit
	d.LongPressStart()
	for i := 0; i < 100; i++ {
		d.StepBrightness()
	}
	assert.Equal(t, uint8(10), d.State.Brightness)
}

func TestDispatcher_Handle(t *testing.T) {
	d := mode.NewDispatcher(mode.NewState())

	d.Handle(button.Event{Gesture: button.Click, Clicks: 1})
	assert.Equal(t, 1, d.State.Pattern)
	d.Handle(button.Event{Gesture: button.DoubleClick, Clicks: 2})
	assert.Equal(t, pattern.Animated, d.State.Family)
	d.Handle(button.Event{Gesture: button.MultiClick, Clicks: 3})
	assert.True(t, d.State.Automatic)
	d.Handle(button.Event{Gesture: button.LongPressStart})
	assert.True(t, d.State.Adjusting)
	d.Handle(button.Event{Gesture: button.LongPressStop})
	assert.False(t, d.State.Adjusting)
	d.Handle(button.Event{Gesture: button.MultiClick, Clicks: 4})
	assert.False(t, d.State.Enabled)
	d.Handle(button.Event{Gesture: button.Gesture(99)})
	assert.False(t, d.State.Enabled)
}

func TestDispatcher_Properties(t *testing.T) {
	gestures := []button.Event{
		{Gesture: button.Click, Clicks: 1},
		{Gesture: button.DoubleClick, Clicks: 2},
		{Gesture: button.MultiClick, Clicks: 3},
		{Gesture: button.MultiClick, Clicks: 4},
		{Gesture: button.MultiClick, Clicks: 5},
		{Gesture: button.LongPressStart},
		{Gesture: button.LongPressStop},
	}

	rapid.Check(t, func(t *rapid.T) {
		d := mode.NewDispatcher(mode.NewState())
		steps := rapid.IntRange(0, 500).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "tick") {
				d.StepBrightness()
			} else {
				d.Handle(rapid.SampledFrom(gestures).Draw(t, "gesture"))
			}

			if d.State.Brightness < mode.MinBrightness || d.State.Brightness > mode.MaxBrightness {
				t.Fatalf("brightness out of range: %d", d.State.Brightness)
			}
			if d.State.Pattern < 0 || d.State.Pattern >= d.State.Family.Len() {
				t.Fatalf("invalid pattern %d for family %s", d.State.Pattern, d.State.Family)
			}
		}
	})
}

func TestDispatcher_DoubleClick_Alternates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		state := mode.State{
			Enabled: rapid.Bool().Draw(t, "enabled"),
			Family:  pattern.Family(rapid.IntRange(0, 1).Draw(t, "family")),
		}
		state.Pattern = rapid.IntRange(0, state.Family.Len()-1).Draw(t, "pattern")
		d := mode.NewDispatcher(&state)

		family := state.Family
		for i := rapid.IntRange(1, 20).Draw(t, "count"); i > 0; i-- {
			d.DoubleClick()
			if state.Family == family {
				t.Fatalf("family did not change")
			}
			if state.Pattern != 0 {
				t.Fatalf("pattern not reset")
			}
			family = state.Family
		}
	})
}

package mode

import (
	"github.com/clambin/ledstrip/internal/button"
	log "github.com/sirupsen/logrus"
)

// Dispatcher applies button gestures to a State. It never renders anything itself.
//
// While the strip is off, a click or a triple click only switches it back on, and long presses are ignored.
// A quadruple click switches the strip on or off.
type Dispatcher struct {
	State *State
}

// NewDispatcher returns a Dispatcher for state
func NewDispatcher(state *State) *Dispatcher {
	return &Dispatcher{State: state}
}

// Handle dispatches a gesture
func (d *Dispatcher) Handle(ev button.Event) {
	switch ev.Gesture {
	case button.Click:
		d.Click()
	case button.DoubleClick:
		d.DoubleClick()
	case button.MultiClick:
		d.MultiClick(ev.Clicks)
	case button.LongPressStart:
		d.LongPressStart()
	case button.LongPressStop:
		d.LongPressStop()
	default:
		log.WithField("gesture", ev.Gesture).Warning("unsupported gesture ignored")
	}
}

// Click moves to the next pattern of the current family
func (d *Dispatcher) Click() {
	d.Advance()
}

// Advance moves to the next pattern of the current family, wrapping at the end. If the strip is off, it is
// switched on instead.
func (d *Dispatcher) Advance() {
	if d.enable() {
		return
	}
	d.State.Pattern = (d.State.Pattern + 1) % d.State.Family.Len()
	log.WithFields(d.State.fields()).Debug("next pattern")
}

// DoubleClick moves to the first pattern of the next family
func (d *Dispatcher) DoubleClick() {
	d.State.Family = d.State.Family.Next()
	d.State.Pattern = 0
	log.WithFields(d.State.fields()).Debug("next family")
}

// MultiClick handles three or more clicks: three toggles automatic mode, four switches the strip on or off.
func (d *Dispatcher) MultiClick(count int) {
	switch count {
	case 3:
		d.toggleAutomatic()
	case 4:
		d.toggleEnabled()
	default:
		log.WithField("clicks", count).Debug("multi-click ignored")
	}
}

func (d *Dispatcher) toggleAutomatic() {
	if d.enable() {
		return
	}
	d.State.Automatic = !d.State.Automatic
	d.State.ModeChanged = true
	log.WithFields(d.State.fields()).Debug("automatic mode toggled")
}

func (d *Dispatcher) toggleEnabled() {
	d.State.Enabled = !d.State.Enabled
	log.WithFields(d.State.fields()).Debug("strip toggled")
}

// enable switches the strip on, if it was off, and reports whether it did
func (d *Dispatcher) enable() bool {
	if d.State.Enabled {
		return false
	}
	d.State.Enabled = true
	log.WithFields(d.State.fields()).Debug("strip enabled")
	return true
}

// LongPressStart starts changing the brightness
func (d *Dispatcher) LongPressStart() {
	if !d.State.Enabled {
		return
	}
	d.State.Adjusting = true
	log.WithField("increase", d.State.Increase).Debug("brightness change started")
}

// LongPressStop stops changing the brightness. The next long press goes the other way.
func (d *Dispatcher) LongPressStop() {
	if !d.State.Enabled {
		return
	}
	d.State.Adjusting = false
	d.State.Increase = !d.State.Increase
	log.WithField("brightness", d.State.Brightness).Debug("brightness change stopped")
}

// StepBrightness moves the brightness one step in the current direction while a long press is in progress.
// It returns the new brightness and whether it changed.
func (d *Dispatcher) StepBrightness() (uint8, bool) {
	if !d.State.Enabled || !d.State.Adjusting {
		return d.State.Brightness, false
	}

	current := int(d.State.Brightness)
	next := current - BrightnessStep
	if d.State.Increase {
		next = current + BrightnessStep
	}
	next = max(MinBrightness, min(MaxBrightness, next))

	d.State.Brightness = uint8(next)
	return d.State.Brightness, next != current
}

package mode

import (
	"github.com/clambin/ledstrip/internal/pattern"
	log "github.com/sirupsen/logrus"
)

// Brightness limits
const (
	MinBrightness  = 10
	MaxBrightness  = 250
	BrightnessStep = 5
)

// State is everything the button controls. It is owned by the render loop.
type State struct {
	// Family and Pattern select what the strip shows. Pattern is always valid for Family.
	Family  pattern.Family
	Pattern int
	// Enabled is false while the strip is switched off
	Enabled bool
	// Automatic advances the pattern periodically
	Automatic bool
	// ModeChanged shows the automatic/manual indicator on the next frame
	ModeChanged bool
	// Adjusting is set while a long press changes the brightness
	Adjusting bool
	// Increase is the direction of the next brightness adjustment. It flips at the end of every long press.
	Increase   bool
	Brightness uint8
	// Hue is the rotating base colour of the animations
	Hue uint8
}

// NewState returns the power-on state: enabled, first solid colour, manual mode, full brightness.
// The first long press dims the strip.
func NewState() *State {
	return &State{
		Family:     pattern.Solid,
		Enabled:    true,
		Brightness: MaxBrightness,
	}
}

func (s *State) fields() log.Fields {
	return log.Fields{
		"family":     s.Family,
		"pattern":    pattern.Name(s.Family, s.Pattern),
		"enabled":    s.Enabled,
		"automatic":  s.Automatic,
		"brightness": s.Brightness,
	}
}

package statusled

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setter switches a status LED on or off
type Setter interface {
	SetLED(state bool) error
}

// SysFS drives one of the board's LEDs through the kernel's LED class, e.g. /sys/class/leds/ACT
type SysFS struct {
	LEDPath string
	state   *bool
}

var _ Setter = &SysFS{}

// New takes control of the LED at path: it detaches any kernel trigger, so the LED only changes when SetLED is called.
func New(path string) (*SysFS, error) {
	if err := os.WriteFile(filepath.Join(path, "trigger"), []byte("none"), 0644); err != nil {
		return nil, fmt.Errorf("status led: %w", err)
	}
	return &SysFS{LEDPath: path}, nil
}

// SetLED switches the LED on or off. Writes are skipped if the LED is already in the requested state.
func (s *SysFS) SetLED(state bool) error {
	if s.state != nil && *s.state == state {
		return nil
	}
	data := "0"
	if state {
		data = "255"
	}
	err := os.WriteFile(filepath.Join(s.LEDPath, "brightness"), []byte(data), 0644)
	log.WithError(err).WithField("state", state).Debug("SetLED")
	if err == nil {
		s.state = &state
	}
	return err
}

// GetLED reports whether the LED is on
func (s *SysFS) GetLED() bool {
	content, err := os.ReadFile(filepath.Join(s.LEDPath, "brightness"))
	return err == nil && strings.TrimSpace(string(content)) != "0"
}

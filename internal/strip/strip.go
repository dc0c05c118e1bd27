package strip

import "github.com/clambin/ledstrip/internal/pixel"

// Driver sends frames to an LED strip
type Driver interface {
	// Show emits the buffer at the current brightness
	Show(buf pixel.Buffer) error
	// SetBrightness sets the brightness applied to every subsequent frame
	SetBrightness(brightness uint8) error
}

package strip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/clambin/ledstrip/internal/pixel"
)

const cell = "█"

// Terminal previews the strip as a row of coloured blocks
type Terminal struct {
	frame      pixel.Buffer
	brightness uint8
}

var _ Driver = &Terminal{}

// NewTerminal returns a Terminal for a strip of count LEDs
func NewTerminal(count int) *Terminal {
	return &Terminal{frame: pixel.New(count), brightness: 0xFF}
}

func (t *Terminal) Show(buf pixel.Buffer) error {
	t.frame = buf.Scaled(t.brightness)
	return nil
}

func (t *Terminal) SetBrightness(brightness uint8) error {
	t.brightness = brightness
	return nil
}

// Frame returns the last frame, as the strip would show it
func (t *Terminal) Frame() pixel.Buffer {
	return t.frame
}

func (t *Terminal) String() string {
	var b strings.Builder
	for _, c := range t.frame {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(cell))
	}
	return b.String()
}

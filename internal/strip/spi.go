package strip

import (
	"fmt"

	"github.com/clambin/ledstrip/internal/pixel"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/nrzled"
)

// SPI drives a WS2812 strip from an SPI port's MOSI pin, NRZ-encoding the frames
type SPI struct {
	dev        pixelWriter
	count      int
	brightness uint8
}

var _ Driver = &SPI{}

// pixelWriter is the part of nrzled.Dev we use
type pixelWriter interface {
	Write(pixels []byte) (int, error)
	Halt() error
}

// NewSPI opens a strip of count LEDs on port
func NewSPI(port spi.Port, count int) (*SPI, error) {
	opts := nrzled.DefaultOpts
	opts.NumPixels = count
	opts.Channels = 3
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	log.WithFields(log.Fields{"leds": count, "freq": opts.Freq}).Debug("strip configured")
	return newSPI(dev, count), nil
}

func newSPI(dev pixelWriter, count int) *SPI {
	return &SPI{dev: dev, count: count, brightness: 0xFF}
}

// Show emits the buffer
func (s *SPI) Show(buf pixel.Buffer) error {
	if len(buf) != s.count {
		panic(fmt.Sprintf("strip: buffer holds %d LEDs, strip has %d", len(buf), s.count))
	}
	_, err := s.dev.Write(buf.Scaled(s.brightness).Bytes())
	return err
}

// SetBrightness sets the brightness of the next frames
func (s *SPI) SetBrightness(brightness uint8) error {
	s.brightness = brightness
	return nil
}

// Halt switches off all LEDs
func (s *SPI) Halt() error {
	return s.dev.Halt()
}

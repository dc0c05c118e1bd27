package button

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// GPIO reads a push button wired between a GPIO pin and ground. The pin's internal pull-up keeps it high
// while the button is released.
type GPIO struct {
	pin        gpio.PinIn
	classifier *Classifier
}

var _ Detector = &GPIO{}

// NewGPIO configures pin as a pulled-up input
func NewGPIO(pin gpio.PinIn) (*GPIO, error) {
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("button %s: %w", pin, err)
	}
	log.WithField("pin", pin.Name()).Debug("button configured")
	return &GPIO{pin: pin, classifier: NewClassifier()}, nil
}

// Poll samples the pin and returns the gestures it completes
func (g *GPIO) Poll(now time.Duration) []Event {
	events := g.classifier.Update(g.pin.Read() == gpio.Low, now)
	for _, ev := range events {
		log.WithFields(log.Fields{"gesture": ev.Gesture, "clicks": ev.Clicks}).Debug("button")
	}
	return events
}

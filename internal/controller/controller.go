package controller

import (
	"context"
	"math/rand"
	"time"

	"github.com/clambin/ledstrip/internal/button"
	"github.com/clambin/ledstrip/internal/mode"
	"github.com/clambin/ledstrip/internal/pattern"
	"github.com/clambin/ledstrip/internal/pixel"
	"github.com/clambin/ledstrip/internal/statusled"
	"github.com/clambin/ledstrip/internal/strip"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Config holds the tunables of the render loop
type Config struct {
	LEDs        int
	FrameRate   int
	AutoAdvance time.Duration
	FlashHold   time.Duration
}

// DefaultConfig returns the settings for a 32 LED strip at 120 frames per second
func DefaultConfig() Config {
	return Config{
		LEDs:        32,
		FrameRate:   120,
		AutoAdvance: time.Minute,
		FlashHold:   5 * time.Second,
	}
}

const (
	hueInterval        = 20 * time.Millisecond
	brightnessInterval = 100 * time.Millisecond
	switchOffFade      = 20
)

// Controller runs the render loop: it applies the button's gestures to the mode state, renders the selected pattern
// and sends it to the strip.
type Controller struct {
	State      *mode.State
	dispatcher *mode.Dispatcher
	detector   button.Detector
	strip      strip.Driver
	statusLED  statusled.Setter
	clock      Clock
	random     pattern.Random
	buffer     pixel.Buffer
	config     Config
	interval   time.Duration
	hue        timer
	brightness timer
	advance    timer
	metrics    *metrics
}

// Option configures a Controller
type Option func(*Controller)

// WithClock sets the clock. The default clock measures time since the Controller was created.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithRandom sets the source of randomness for the animations
func WithRandom(random pattern.Random) Option {
	return func(c *Controller) {
		c.random = random
	}
}

// WithRegisterer registers the Controller's metrics
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *Controller) {
		r.MustRegister(c.metrics)
	}
}

// WithStatusLED mirrors the strip's on/off state on a status LED
func WithStatusLED(setter statusled.Setter) Option {
	return func(c *Controller) {
		c.statusLED = setter
	}
}

// New creates a Controller, reading gestures from detector and showing frames on driver
func New(cfg Config, detector button.Detector, driver strip.Driver, options ...Option) *Controller {
	state := mode.NewState()
	c := Controller{
		State:      state,
		dispatcher: mode.NewDispatcher(state),
		detector:   detector,
		strip:      driver,
		clock:      newSystemClock(),
		random:     rand.New(rand.NewSource(time.Now().UnixNano())),
		buffer:     pixel.New(cfg.LEDs),
		config:     cfg,
		interval:   time.Second / time.Duration(cfg.FrameRate),
		metrics:    newMetrics(),
	}
	for _, option := range options {
		option(&c)
	}

	now := c.clock.Now()
	c.hue = timer{period: hueInterval, last: now}
	c.brightness = timer{period: brightnessInterval, last: now}
	c.advance = timer{period: cfg.AutoAdvance, last: now}

	c.setBrightness(state.Brightness)
	c.setStatusLED()
	return &c
}

// Run renders frames until ctx is cancelled
func (c *Controller) Run(ctx context.Context) {
	log.WithFields(log.Fields{"leds": c.config.LEDs, "fps": c.config.FrameRate}).Info("controller started")
	wait := time.NewTimer(c.Frame())
	defer wait.Stop()
	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case <-wait.C:
			c.Periodic()
			wait.Reset(c.Frame())
		}
	}
	log.Info("controller stopped")
}

// Frame applies all pending gestures, renders one frame and shows it. It returns how long to wait before the next frame.
func (c *Controller) Frame() time.Duration {
	start := c.clock.Now()

	for _, ev := range c.detector.Poll(start) {
		c.metrics.gestures.WithLabelValues(ev.Gesture.String()).Inc()
		c.dispatcher.Handle(ev)
	}
	c.setStatusLED()

	var flash bool
	switch {
	case c.State.Enabled && c.State.ModeChanged:
		c.buffer.Fill(modeColor(c.State.Automatic))
		c.State.ModeChanged = false
		flash = true
	case c.State.Enabled:
		c.render(start)
	default:
		c.buffer.FadeToBlackBy(switchOffFade)
	}

	if err := c.strip.Show(c.buffer); err != nil {
		c.metrics.errors.Inc()
		log.WithError(err).Warning("failed to show frame")
	}

	elapsed := c.clock.Now() - start
	c.metrics.frames.Inc()
	c.metrics.duration.Observe(elapsed.Seconds())

	if flash {
		return c.config.FlashHold
	}
	return max(0, c.interval-elapsed)
}

// Periodic runs the timers: it rotates the hue, adjusts the brightness during a long press and, in automatic mode,
// moves to the next pattern. Each timer fires at most once per call.
func (c *Controller) Periodic() {
	now := c.clock.Now()

	if c.hue.ready(now) {
		c.State.Hue++
	}
	if c.brightness.ready(now) {
		if b, changed := c.dispatcher.StepBrightness(); changed {
			c.setBrightness(b)
		}
	}
	if c.advance.ready(now) && c.State.Enabled && c.State.Automatic {
		c.dispatcher.Advance()
	}
}

// Buffer returns the frame buffer
func (c *Controller) Buffer() pixel.Buffer {
	return c.buffer
}

func (c *Controller) render(now time.Duration) {
	switch c.State.Family {
	case pattern.Solid:
		c.buffer.Fill(pattern.Colors[c.State.Pattern].RGB)
	case pattern.Animated:
		pattern.Animations[c.State.Pattern].Render(c.buffer, pattern.Frame{
			Hue:  c.State.Hue,
			Now:  now,
			Rand: c.random,
		})
	}
}

func (c *Controller) setBrightness(brightness uint8) {
	c.metrics.brightness.Set(float64(brightness))
	if err := c.strip.SetBrightness(brightness); err != nil {
		c.metrics.errors.Inc()
		log.WithError(err).WithField("brightness", brightness).Warning("failed to set brightness")
	}
}

func (c *Controller) setStatusLED() {
	if c.statusLED == nil {
		return
	}
	if err := c.statusLED.SetLED(c.State.Enabled); err != nil {
		c.metrics.errors.Inc()
		log.WithError(err).Warning("failed to set status led")
	}
}

// modeColor is the colour flashed after automatic mode is switched on (green) or off (red)
func modeColor(automatic bool) pixel.RGB {
	if automatic {
		return pixel.Green
	}
	return pixel.Red
}

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clambin/ledstrip/internal/controller"
	"github.com/clambin/ledstrip/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Supported strip drivers
const (
	DriverSPI      = "spi"
	DriverTerminal = "terminal"
)

type Configuration struct {
	Debug          bool
	Driver         string
	PrometheusAddr string
	StripConfiguration
	TimingConfiguration
}

type StripConfiguration struct {
	SPIPort   string
	ButtonPin string
	StatusLED string
	LEDs      int
}

type TimingConfiguration struct {
	FrameRate   int
	AutoAdvance time.Duration
	FlashHold   time.Duration
}

func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration

	a := kingpin.New(filepath.Base(os.Args[0]), "ledstrip")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("driver", "Strip driver (spi or terminal)").Default(DriverSPI).EnumVar(&cfg.Driver, DriverSPI, DriverTerminal)
	a.Flag("prometheus", "Prometheus metrics listener address (blank: no metrics)").Default("").StringVar(&cfg.PrometheusAddr)
	a.Flag("spi", "SPI port the strip is connected to (blank: first available port)").Default("").StringVar(&cfg.StripConfiguration.SPIPort)
	a.Flag("button", "GPIO pin the button is connected to").Default("GPIO2").StringVar(&cfg.StripConfiguration.ButtonPin)
	a.Flag("status-led", "sysfs path of an LED that shows whether the strip is on (blank: none)").Default("").StringVar(&cfg.StripConfiguration.StatusLED)
	a.Flag("leds", "Number of LEDs in the strip").Default("32").IntVar(&cfg.StripConfiguration.LEDs)
	a.Flag("fps", "Target frame rate").Default("120").IntVar(&cfg.TimingConfiguration.FrameRate)
	a.Flag("auto-advance", "Time between patterns in automatic mode").Default("60s").DurationVar(&cfg.TimingConfiguration.AutoAdvance)
	a.Flag("flash", "How long to show the automatic mode indicator").Default("5s").DurationVar(&cfg.TimingConfiguration.FlashHold)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Configuration) validate() error {
	if c.LEDs < 1 {
		return errors.New("strip needs at least one LED")
	}
	if c.FrameRate < 1 {
		return errors.New("frame rate must be positive")
	}
	if c.AutoAdvance <= 0 {
		return errors.New("auto-advance must be positive")
	}
	return nil
}

// Controller returns the render loop configuration
func (c Configuration) Controller() controller.Config {
	return controller.Config{
		LEDs:        c.LEDs,
		FrameRate:   c.FrameRate,
		AutoAdvance: c.AutoAdvance,
		FlashHold:   c.FlashHold,
	}
}

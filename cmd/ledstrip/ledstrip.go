package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clambin/ledstrip/internal/button"
	"github.com/clambin/ledstrip/internal/configuration"
	"github.com/clambin/ledstrip/internal/controller"
	"github.com/clambin/ledstrip/internal/statusled"
	"github.com/clambin/ledstrip/internal/strip"
	"github.com/clambin/ledstrip/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.Driver == configuration.DriverTerminal {
		// the preview owns the terminal
		f, err := os.OpenFile("ledstrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			log.WithError(err).Fatal("failed to open log file")
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	}

	log.WithField("version", version.BuildVersion).Info("ledstrip starting")

	if cfg.PrometheusAddr != "" {
		go runPrometheusServer(cfg.PrometheusAddr)
	}

	switch cfg.Driver {
	case configuration.DriverTerminal:
		err = runPreview(cfg)
	default:
		ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = runStrip(ctx, cfg)
		done()
	}

	if err != nil {
		log.WithError(err).Fatal("ledstrip failed")
	}
	log.Info("ledstrip exiting")
}

func runStrip(ctx context.Context, cfg configuration.Configuration) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("host: %w", err)
	}

	port, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return fmt.Errorf("spi: %w", err)
	}
	defer func() { _ = port.Close() }()

	s, err := strip.NewSPI(port, cfg.LEDs)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Halt(); err != nil {
			log.WithError(err).Warning("failed to switch off strip")
		}
	}()

	pin := gpioreg.ByName(cfg.ButtonPin)
	if pin == nil {
		return fmt.Errorf("button: unknown pin %q", cfg.ButtonPin)
	}
	b, err := button.NewGPIO(pin)
	if err != nil {
		return err
	}

	options := []controller.Option{controller.WithRegisterer(prometheus.DefaultRegisterer)}
	if cfg.StatusLED != "" {
		led, err := statusled.New(cfg.StatusLED)
		if err != nil {
			return err
		}
		options = append(options, controller.WithStatusLED(led))
		defer func() { _ = led.SetLED(false) }()
	}

	controller.New(cfg.Controller(), b, s, options...).Run(ctx)
	return nil
}

func runPreview(cfg configuration.Configuration) error {
	q := button.NewQueue()
	s := strip.NewTerminal(cfg.LEDs)
	c := controller.New(cfg.Controller(), q, s, controller.WithRegisterer(prometheus.DefaultRegisterer))

	_, err := tea.NewProgram(newPreview(c, s, q)).Run()
	return err
}

func runPrometheusServer(addr string) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, m); !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("failed to start prometheus server")
	}
}

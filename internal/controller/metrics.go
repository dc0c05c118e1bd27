package controller

import "github.com/prometheus/client_golang/prometheus"

var buckets = []float64{.0001, .0005, .001, .002, .004, .008, .016}

var _ prometheus.Collector = &metrics{}

type metrics struct {
	frames     prometheus.Counter
	duration   prometheus.Histogram
	gestures   *prometheus.CounterVec
	brightness prometheus.Gauge
	errors     prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledstrip_frames_total",
			Help: "Number of frames sent to the strip",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledstrip_frame_render_duration_seconds",
			Help:    "Time to render and show one frame",
			Buckets: buckets,
		}),
		gestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledstrip_gestures_total",
			Help: "Number of button gestures, by gesture",
		}, []string{"gesture"}),
		brightness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledstrip_brightness",
			Help: "Current strip brightness",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledstrip_strip_errors_total",
			Help: "Number of failed writes to the strip",
		}),
	}
}

func (m *metrics) Describe(ch chan<- *prometheus.Desc) {
	m.frames.Describe(ch)
	m.duration.Describe(ch)
	m.gestures.Describe(ch)
	m.brightness.Describe(ch)
	m.errors.Describe(ch)
}

func (m *metrics) Collect(ch chan<- prometheus.Metric) {
	m.frames.Collect(ch)
	m.duration.Collect(ch)
	m.gestures.Collect(ch)
	m.brightness.Collect(ch)
	m.errors.Collect(ch)
}

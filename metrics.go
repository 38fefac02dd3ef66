package mcwire

import (
	"errors"
	"io"
	"time"

	"github.com/gstoney/mcwire/packet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors of a server.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "mcwire").
	Namespace string

	// Buckets are the histogram buckets for handler duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "mcwire",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts packets flowing through connections. A nil *Metrics
// records nothing.
type Metrics struct {
	decoded         *prometheus.CounterVec
	encoded         *prometheus.CounterVec
	decodeErrors    *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
	sessions        prometheus.Gauge
}

func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		decoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "packets_decoded_total",
			Help:      "Total number of packets decoded",
		}, []string{"state", "direction"}),

		encoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "packets_encoded_total",
			Help:      "Total number of packets encoded",
		}, []string{"state", "direction"}),

		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "decode_errors_total",
			Help:      "Total number of packets that failed to decode",
		}, []string{"state", "reason"}),

		handlerDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "handler_duration_seconds",
			Help:      "Packet handler duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"state"}),

		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "active_sessions",
			Help:      "Number of open connections",
		}),
	}
}

func (m *Metrics) recordDecoded(s packet.State, d packet.Direction) {
	if m == nil {
		return
	}
	m.decoded.WithLabelValues(s.String(), d.String()).Inc()
}

func (m *Metrics) recordEncoded(s packet.State, d packet.Direction) {
	if m == nil {
		return
	}
	m.encoded.WithLabelValues(s.String(), d.String()).Inc()
}

func (m *Metrics) recordDecodeError(s packet.State, err error) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(s.String(), ErrorReason(err)).Inc()
}

func (m *Metrics) observeHandler(s packet.State, start time.Time) {
	if m == nil {
		return
	}
	m.handlerDuration.WithLabelValues(s.String()).Observe(time.Since(start).Seconds())
}

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.sessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.sessions.Dec()
	}
}

// ErrorReason classifies a read failure into a short label.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, packet.ErrUnknownOpcode):
		return "unknown_opcode"
	case errors.Is(err, packet.ErrUnknownDiscriminant):
		return "unknown_discriminant"
	case errors.Is(err, packet.ErrTrailingData):
		return "trailing_data"
	case errors.Is(err, packet.ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrPacketTooBig):
		return "too_big"
	case errors.Is(err, io.EOF):
		return "eof"
	}
	var merr *packet.MalformedError
	if errors.As(err, &merr) {
		return "malformed"
	}
	return "transport"
}

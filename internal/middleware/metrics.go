package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/budgetbot/internal/router"
)

// Metrics holds the update instruments.
type Metrics struct {
	updates  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the update instruments and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "budgetbot",
			Name:      "updates_total",
			Help:      "Handled updates by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "budgetbot",
			Name:      "update_duration_seconds",
			Help:      "Time spent handling an update.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	reg.MustRegister(m.updates, m.duration)
	return m
}

// Instrument returns a middleware that counts and times every event. An
// event that panics is counted with outcome "error".
func (m *Metrics) Instrument() Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx context.Context, ev router.Event) (msgs []router.Message, err error) {
			kind := kindOf(ev)
			start := time.Now()
			outcome := "error"
			defer func() {
				m.updates.WithLabelValues(kind, outcome).Inc()
				m.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
			}()

			msgs, err = next(ctx, ev)
			if err == nil {
				outcome = "ok"
			}
			return msgs, err
		}
	}
}

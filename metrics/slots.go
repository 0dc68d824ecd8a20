package metrics

import "github.com/prometheus/client_golang/prometheus"

// SlotMetrics exposes counters for slot generation, mutation and booking.
// A nil *SlotMetrics is valid and records nothing.
type SlotMetrics struct {
	generated     *prometheus.CounterVec
	deleted       *prometheus.CounterVec
	conflicts     *prometheus.CounterVec
	bookings      *prometheus.CounterVec
	generationRun prometheus.Histogram
}

func NewSlotMetrics(reg prometheus.Registerer) *SlotMetrics {
	m := &SlotMetrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetcare",
			Subsystem: "slots",
			Name:      "generated_total",
			Help:      "Slots handled by the generator, by outcome (created|skipped)",
		}, []string{"outcome"}),
		deleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetcare",
			Subsystem: "slots",
			Name:      "deleted_total",
			Help:      "Slots deleted, by operation",
		}, []string{"operation"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetcare",
			Subsystem: "slots",
			Name:      "booked_conflicts_total",
			Help:      "Mutations refused because booked slots were involved",
		}, []string{"operation"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetcare",
			Subsystem: "slots",
			Name:      "bookings_total",
			Help:      "Booking attempts, by result",
		}, []string{"result"}),
		generationRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vetcare",
			Subsystem: "slots",
			Name:      "generation_duration_seconds",
			Help:      "Duration of slot generation runs",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.generated, m.deleted, m.conflicts, m.bookings, m.generationRun)
	return m
}

func (m *SlotMetrics) ObserveGeneration(created, skipped int, seconds float64) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues("created").Add(float64(created))
	m.generated.WithLabelValues("skipped").Add(float64(skipped))
	m.generationRun.Observe(seconds)
}

func (m *SlotMetrics) ObserveDeleted(operation string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.deleted.WithLabelValues(operation).Add(float64(count))
}

func (m *SlotMetrics) ObserveConflict(operation string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(operation).Inc()
}

func (m *SlotMetrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(result).Inc()
}

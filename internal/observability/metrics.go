package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signUpCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups, labeled by activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations, labeled by activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular_service",
		Subsystem: "registry",
		Name:      "enrollment_rejections_total",
		Help:      "Number of rejected signup or unregister requests, labeled by operation and reason.",
	}, []string{"operation", "reason"})

	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "extracurricular_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	lastChangeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "extracurricular_service",
		Subsystem: "registry",
		Name:      "last_roster_change_timestamp_seconds",
		Help:      "Unix timestamp of the most recent roster change.",
	})
)

func init() {
	prometheus.MustRegister(signUpCounter, unregisterCounter, rejectionCounter, rosterGauge, lastChangeGauge)
}

// RecordSignUp counts a signup and refreshes the roster gauge.
func RecordSignUp(activity string, rosterSize int, ts time.Time) {
	signUpCounter.WithLabelValues(activity).Inc()
	recordRosterChange(activity, rosterSize, ts)
}

// RecordUnregistration counts an unregistration and refreshes the roster gauge.
func RecordUnregistration(activity string, rosterSize int, ts time.Time) {
	unregisterCounter.WithLabelValues(activity).Inc()
	recordRosterChange(activity, rosterSize, ts)
}

// RecordRejection counts a refused enrollment change.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}

// SetRosterSize sets the roster gauge without touching the counters.
func SetRosterSize(activity string, rosterSize int) {
	rosterGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

func recordRosterChange(activity string, rosterSize int, ts time.Time) {
	SetRosterSize(activity, rosterSize)
	if ts.IsZero() {
		return
	}
	lastChangeGauge.Set(float64(ts.Unix()))
}

package events

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of enrollment events written to Kafka, labeled by event type.",
	}, []string{"event_type"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular_service",
		Subsystem: "events",
		Name:      "failed_total",
		Help:      "Number of enrollment events that could not be written to Kafka, labeled by event type.",
	}, []string{"event_type"})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter)
}

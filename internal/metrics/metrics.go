package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	TimersStarted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_timers_started_total", Help: "Total countdown timers started"},
	)
	SubmissionsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_submissions_total", Help: "Total project submissions received"},
	)
	ReviewDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hackhub_review_decisions_total", Help: "Total review decisions by resulting status"},
		[]string{"status"},
	)
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_registrations_total", Help: "Total hackathon registrations"},
	)
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_logins_total", Help: "Total successful logins"},
	)
)

var registerOnce sync.Once

// Register installs the collectors in the default registry. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(TimersStarted, SubmissionsReceived, ReviewDecisions, Registrations, Logins)
	})
}

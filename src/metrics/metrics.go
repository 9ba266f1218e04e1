package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Signup outcomes used as the "outcome" label.
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeAlreadySignedUp = "already_signed_up"
	OutcomeFull            = "full"
	OutcomeInvalid         = "invalid"
)

type Metrics struct {
	Signups      *prometheus.CounterVec
	Participants *prometheus.GaugeVec
}

// New registers the activity collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Signups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Signup attempts by activity and outcome",
			},
			[]string{"activity", "outcome"},
		),
		Participants: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "activity_participants",
				Help: "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
	reg.MustRegister(m.Signups, m.Participants)
	return m
}

// ObserveSignup counts one attempt. Unknown activity names are collapsed so
// arbitrary path input cannot blow up label cardinality.
func (m *Metrics) ObserveSignup(activity, outcome string) {
	if outcome == OutcomeNotFound || outcome == OutcomeInvalid {
		activity = "unknown"
	}
	m.Signups.WithLabelValues(activity, outcome).Inc()
}

func (m *Metrics) SetParticipants(activity string, n int) {
	m.Participants.WithLabelValues(activity).Set(float64(n))
}

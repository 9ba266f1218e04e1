package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSignupCollapsesUnknownActivities(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSignup("Chess Club", OutcomeSuccess)
	m.ObserveSignup("Nonexistent Club", OutcomeNotFound)
	m.ObserveSignup("Another Bogus Name", OutcomeNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Signups.WithLabelValues("Chess Club", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Signups.WithLabelValues("unknown", OutcomeNotFound)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Signups))
}

func TestSetParticipants(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetParticipants("Chess Club", 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Participants.WithLabelValues("Chess Club")))
}

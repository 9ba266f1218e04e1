package controllers_test

import (
	"Mergington-Activities/test"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, client *http.Client, base, activity, email string) int {
	t.Helper()
	target := base + "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	resp, err := client.Post(target, "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

func TestSignupStateSurvivesLaterRequests(t *testing.T) {
	suite := test.NewTestSuiteResult("Signup Keep-Alive Tests")
	defer suite.Summary(t)

	suite.Run(t, "StoredEmailNotOverwrittenByNextRequest", func(t *testing.T) {
		ta := test.NewTestApp(t)
		base, client := ta.Serve(t)

		require.Equal(t, fiber.StatusOK, post(t, client, base, "Chess Club", "aaaa@mergington.edu"))
		for i := 0; i < 5; i++ {
			assert.Equal(t, fiber.StatusNotFound, post(t, client, base, "Nope", "bbbb@mergington.edu"))
		}

		a, err := ta.Registry.Get("Chess Club")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"michael@mergington.edu",
			"daniel@mergington.edu",
			"aaaa@mergington.edu",
		}, a.Participants)
	})

	suite.Run(t, "DuplicateDetectedAcrossKeepAliveRequests", func(t *testing.T) {
		ta := test.NewTestApp(t)
		base, client := ta.Serve(t)

		require.Equal(t, fiber.StatusOK, post(t, client, base, "Debate Team", "cccc@mergington.edu"))
		require.Equal(t, fiber.StatusOK, post(t, client, base, "Debate Team", "dddd@mergington.edu"))
		assert.Equal(t, fiber.StatusBadRequest, post(t, client, base, "Debate Team", "cccc@mergington.edu"))

		a, err := ta.Registry.Get("Debate Team")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"sarah@mergington.edu",
			"cccc@mergington.edu",
			"dddd@mergington.edu",
		}, a.Participants)
	})

	suite.Run(t, "MetricLabelsNotOverwrittenByNextRequest", func(t *testing.T) {
		ta := test.NewTestApp(t)
		base, client := ta.Serve(t)

		require.Equal(t, fiber.StatusOK, post(t, client, base, "Art Studio", "eeee@mergington.edu"))
		for i := 0; i < 3; i++ {
			post(t, client, base, "Zzz Club!!", "ffff@mergington.edu")
		}

		expected := `
# HELP activity_signups_total Signup attempts by activity and outcome
# TYPE activity_signups_total counter
activity_signups_total{activity="Art Studio",outcome="success"} 1
activity_signups_total{activity="unknown",outcome="not_found"} 3
`
		assert.NoError(t, testutil.GatherAndCompare(ta.Metrics, strings.NewReader(expected), "activity_signups_total"))

		a, err := ta.Registry.Get("Art Studio")
		require.NoError(t, err)
		assert.Equal(t, []string{"maya@mergington.edu", "eeee@mergington.edu"}, a.Participants)
	})
}

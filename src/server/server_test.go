package server_test

import (
	_ "Mergington-Activities/docs"
	"Mergington-Activities/src/routes"
	"Mergington-Activities/test"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRedirectsToFrontEnd(t *testing.T) {
	ta := test.NewTestApp(t)

	resp, _ := ta.Do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, routes.IndexPage, resp.Header.Get(fiber.HeaderLocation))
}

func TestStaticAssetsServed(t *testing.T) {
	ta := test.NewTestApp(t)

	for path, contains := range map[string]string{
		"/static/index.html": "Mergington High School",
		"/static/app.js":     "/activities",
		"/static/styles.css": ".activity-card",
	} {
		resp, body := ta.Do(t, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Contains(t, string(body), contains, path)
	}
}

func TestUnknownRouteUsesDetailBody(t *testing.T) {
	ta := test.NewTestApp(t)

	resp, body := ta.Do(t, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"detail"`)
}

func TestMetricsTrackSignups(t *testing.T) {
	ta := test.NewTestApp(t)

	ta.Signup(t, "Chess Club", "new@mergington.edu")
	ta.Signup(t, "Chess Club", "new@mergington.edu")
	ta.Signup(t, "Nonexistent Club", "a@b.edu")

	expected := `
# HELP activity_signups_total Signup attempts by activity and outcome
# TYPE activity_signups_total counter
activity_signups_total{activity="Chess Club",outcome="already_signed_up"} 1
activity_signups_total{activity="Chess Club",outcome="success"} 1
activity_signups_total{activity="unknown",outcome="not_found"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(ta.Metrics, strings.NewReader(expected), "activity_signups_total"))

	resp, body := ta.Do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `activity_participants{activity="Chess Club"} 3`)
	assert.Contains(t, string(body), `activity_participants{activity="Debate Team"} 1`)
}

func TestSwaggerDocServed(t *testing.T) {
	ta := test.NewTestApp(t)

	resp, body := ta.Do(t, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/activities/{activity_name}/signup")
}

func TestCORSHeaders(t *testing.T) {
	ta := test.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://example.com")
	resp, _ := ta.Do(t, req)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

package test

import (
	"Mergington-Activities/src/config"
	"Mergington-Activities/src/models"
	"Mergington-Activities/src/server"
	"Mergington-Activities/src/services/activities"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestApp bundles a fiber app with the registry and metrics registry behind it.
type TestApp struct {
	App      *fiber.App
	Registry *activities.Registry
	Metrics  *prometheus.Registry
}

// NewTestApp builds the full HTTP stack over the given seed, or the
// embedded seed when none is passed.
func NewTestApp(t testing.TB, seed ...models.Activity) *TestApp {
	t.Helper()

	var (
		registry *activities.Registry
		err      error
	)
	if len(seed) == 0 {
		registry, err = activities.NewSeededRegistry()
	} else {
		registry, err = activities.NewRegistry(seed)
	}
	require.NoError(t, err)

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	return &TestApp{
		App:      server.New(cfg, zaptest.NewLogger(t), registry, reg),
		Registry: registry,
		Metrics:  reg,
	}
}

// Do sends req through the app and returns the response with its body read.
func (ta *TestApp) Do(t testing.TB, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := ta.App.Test(req, int((5 * time.Second).Milliseconds()))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// Signup posts to /activities/{name}/signup with the email query parameter.
func (ta *TestApp) Signup(t testing.TB, activity, email string) (int, map[string]string) {
	t.Helper()
	target := "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	resp, body := ta.Do(t, httptest.NewRequest(http.MethodPost, target, nil))

	out := map[string]string{}
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

// ListActivities fetches GET /activities.
func (ta *TestApp) ListActivities(t testing.TB) map[string]models.Activity {
	t.Helper()
	resp, body := ta.Do(t, httptest.NewRequest(http.MethodGet, "/activities", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := map[string]models.Activity{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// Serve runs the app on a loopback listener and returns its base URL plus a
// client that reuses one keep-alive connection, the way a browser would.
// app.Test opens a fresh connection per request and cannot show buffer reuse.
func (ta *TestApp) Serve(t testing.TB) (string, *http.Client) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = ta.App.Listener(ln) }()
	t.Cleanup(func() { _ = ta.App.Shutdown() })

	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{MaxIdleConnsPerHost: 1, MaxConnsPerHost: 1},
	}
	t.Cleanup(client.CloseIdleConnections)
	return "http://" + ln.Addr().String(), client
}

// TestTimer measures how long a single test case takes.
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

// Stop logs and returns the elapsed time.
func (tt *TestTimer) Stop(t testing.TB) time.Duration {
	d := time.Since(tt.start)
	t.Logf("⏱️  %s took %v", tt.name, d)
	return d
}

// TestResult is one timed case inside a TestSuiteResult.
type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// TestSuiteResult collects timed cases and prints a summary at the end.
type TestSuiteResult struct {
	SuiteName string
	Results   []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

// Run times fn as a subtest and records whether it passed.
func (tsr *TestSuiteResult) Run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		timer := NewTestTimer(name)
		defer func() {
			tsr.Results = append(tsr.Results, TestResult{
				Name:     name,
				Duration: timer.Stop(t),
				Passed:   !t.Failed(),
			})
		}()
		fn(t)
	})
}

// Summary logs pass/fail counts and total time for the suite.
func (tsr *TestSuiteResult) Summary(t testing.TB) {
	var passed int
	var total time.Duration
	for _, r := range tsr.Results {
		total += r.Duration
		if r.Passed {
			passed++
		}
	}
	t.Logf("📊 %s: %d/%d passed in %v", tsr.SuiteName, passed, len(tsr.Results), total)
	for _, r := range tsr.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		t.Logf("   %s %s: %v", status, r.Name, r.Duration)
	}
}

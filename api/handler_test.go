package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/config"
	"schedsim/internal/responses"
)

func newTestApp() *fiber.App {
	cfg := &config.SchedulerConfig{
		Port:                  9095,
		LogLevel:              "info",
		RoundRobinTimeQuantum: 2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{5, 8},
	}
	app := fiber.New()
	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) responses.ScheduleResponse {
	t.Helper()
	var out responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandler_ScheduleFcfs_FromJobLines(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/schedule/fcfs", fiber.Map{
		"job_lines": "P1,0,8\nP2,1,4\nP3,2,9",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	assert.Equal(t, "fcfs", out.Policy)
	require.Len(t, out.Timeline, 3)
	assert.Equal(t, 21, out.TotalTime)
	require.NotNil(t, out.AverageTurnAroundTime)
	assert.InDelta(t, 38.0/3.0, *out.AverageTurnAroundTime, 1e-9)
}

func TestHandler_GenericSchedule_PolicyFromBody(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/schedule", fiber.Map{
		"policy": "rr",
		"jobs": []fiber.Map{
			{"pid": "P1", "arrival": 0, "burst": 5},
			{"pid": "P2", "arrival": 1, "burst": 3},
		},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeResponse(t, resp)
	assert.Equal(t, "rr", out.Policy)
	assert.Equal(t, 2, out.Quantum) // config default
	require.Len(t, out.Timeline, 5)
}

func TestHandler_RoundRobin_NonPositiveQuantum_BadRequest(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/schedule/rr", fiber.Map{
		"quantum": -1,
		"jobs":    []fiber.Map{{"pid": "P1", "arrival": 0, "burst": 5}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_UnknownPolicy_BadRequest(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/schedule", fiber.Map{
		"policy": "lottery",
		"jobs":   []fiber.Map{{"pid": "P1", "arrival": 0, "burst": 5}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_MalformedJobLines_BadRequest(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/schedule/sjf", fiber.Map{
		"job_lines": "P1,0",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Healthz(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHandler(t *testing.T) {
	var console, file bytes.Buffer
	logger := slog.New(NewCustomHandler(&console, &file, slog.LevelInfo))

	logger.With(slog.String("team_id", "team-1")).Warn("Budget exceeded", slog.String("error", "too much"))
	logger.Debug("hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &record))
	assert.Equal(t, Job, record["job"])
	assert.Equal(t, "Budget exceeded", record["msg"])
	assert.Equal(t, "team-1", record["team_id"])
	assert.Contains(t, record, "timestamp")
	assert.NotContains(t, record, "time")

	assert.Contains(t, console.String(), "Budget exceeded")
	assert.Contains(t, console.String(), "team_id=team-1")
	assert.Contains(t, console.String(), "error=too much")
	assert.NotContains(t, console.String(), "hidden")
}

func TestMiddleware(t *testing.T) {
	var console, file bytes.Buffer
	logger := slog.New(NewCustomHandler(&console, &file, slog.LevelInfo))

	handler := middleware.RequestID(Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	}

	lines := bytes.Split(bytes.TrimSpace(file.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &record))
	assert.Equal(t, "/healthz", record["path"])
	assert.EqualValues(t, http.StatusTeapot, record["status"])
	assert.NotEqual(t, "unknown", record["request_id"])
}

func TestSetupLogger(t *testing.T) {
	_, err := SetupLogger("", slog.LevelInfo)
	assert.Error(t, err)

	logger, err := SetupLogger(t.TempDir()+"/test.log", slog.LevelInfo)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

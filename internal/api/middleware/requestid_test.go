package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func newRouter(log Logger, seen *string) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, Logging(log))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		*seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	return router
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	log := &recordingLogger{}

	rec := httptest.NewRecorder()
	newRouter(log, &seen).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)

	require.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "GET /health - status=204")
	assert.Contains(t, log.lines[0], "request_id="+id)
}

func TestRequestID_FromHeader(t *testing.T) {
	var seen string

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "dashboard-poll-42")

	rec := httptest.NewRecorder()
	newRouter(&recordingLogger{}, &seen).ServeHTTP(rec, req)

	assert.Equal(t, "dashboard-poll-42", seen)
	assert.Equal(t, "dashboard-poll-42", rec.Header().Get(RequestIDHeader))
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

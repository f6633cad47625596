package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_LogsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/search?q=x", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/search", fields["path"])
	assert.EqualValues(t, http.StatusAccepted, fields["status"])
	assert.EqualValues(t, 2, fields["bytes"])
}

func TestNew(t *testing.T) {
	for _, prod := range []bool{true, false} {
		log, err := New(prod)
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuggester map[string][]string

func (f fakeSuggester) Suggest(_ context.Context, q string) []string {
	return f[q]
}

func TestHandler(t *testing.T) {
	h := Handler(fakeSuggester{"inc": {"Inception", "Incendies"}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/suggest?q=inc", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Inception", "Incendies"}, got.Suggestions)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/suggest?q=x", nil))
	assert.JSONEq(t, `{"suggestions":[]}`, rec.Body.String())
}

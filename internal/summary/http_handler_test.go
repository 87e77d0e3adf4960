package summary

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	handler := NewHTTPHandler(NewBridge(&fakeProvider{text: "A space epic."}))

	body := `{"content":"Paul Atreides...","book_title":"Dune","author":"Frank Herbert"}`
	rr := httptest.NewRecorder()
	handler.Generate(rr, httptest.NewRequest(http.MethodPost, "/generate-summary", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)

	var got generateSummaryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "A space epic.", got.Summary)
}

func TestGenerate_MissingContent(t *testing.T) {
	handler := NewHTTPHandler(NewBridge(&fakeProvider{}))

	rr := httptest.NewRecorder()
	handler.Generate(rr, httptest.NewRequest(http.MethodPost, "/generate-summary", strings.NewReader(`{"book_title":"Dune"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGenerate_ProviderFailureIsExplicit(t *testing.T) {
	handler := NewHTTPHandler(NewBridge(&fakeProvider{err: errors.New("provider unavailable")}))

	rr := httptest.NewRecorder()
	handler.Generate(rr, httptest.NewRequest(http.MethodPost, "/generate-summary", strings.NewReader(`{"content":"text"}`)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to generate summary: provider unavailable")
}

func TestGenerate_MalformedBody(t *testing.T) {
	handler := NewHTTPHandler(NewBridge(&fakeProvider{}))

	rr := httptest.NewRecorder()
	handler.Generate(rr, httptest.NewRequest(http.MethodPost, "/generate-summary", strings.NewReader("{broken")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

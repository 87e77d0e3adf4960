package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateText(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":[{"content":[{"text":"A short synopsis."}]}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gpt-4.1-mini")
	text, err := client.GenerateText(context.Background(), "Summarize this.")

	require.NoError(t, err)
	assert.Equal(t, "A short synopsis.", text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/responses", gotPath)
	assert.Equal(t, "gpt-4.1-mini", gotBody.Model)
	assert.Equal(t, "Summarize this.", gotBody.Input)
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"insufficient_quota"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gpt-4.1-mini")
	_, err := client.GenerateText(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 429")
}

func TestClient_EmptyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gpt-4.1-mini")
	_, err := client.GenerateText(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gpt-4.1-mini")
	_, err := client.GenerateText(context.Background(), "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("http://127.0.0.1:0", "test-key", "gpt-4.1-mini")
	_, err := client.GenerateText(ctx, "prompt")
	assert.Error(t, err)
}

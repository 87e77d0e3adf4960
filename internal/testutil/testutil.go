package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/RajatCoding/jktech-assignment/internal/auth"
	"github.com/RajatCoding/jktech-assignment/internal/user"
)

// TestSecret signs tokens in tests.
const TestSecret = "test-secret"

// TestUser is a plain active account.
var TestUser = user.User{
	ID:        7,
	Username:  "reader",
	Email:     "reader@example.com",
	IsActive:  true,
	CreatedAt: time.Now(),
}

// TestAdmin is an active admin account.
var TestAdmin = user.User{
	ID:       1,
	Username: "admin",
	Email:    "admin@example.com",
	IsActive: true,
	IsAdmin:  true,
}

// GenerateTestToken mints a valid token for the given username.
func GenerateTestToken(username string) string {
	token, _ := auth.GenerateToken(TestSecret, username, time.Hour)
	return token
}

// GenerateExpiredToken mints a token that expired an hour ago.
func GenerateExpiredToken(username string) string {
	token, _ := auth.GenerateToken(TestSecret, username, -time.Hour)
	return token
}

// NewRequest builds a JSON request for handler tests.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth builds a JSON request carrying a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// DecodeBody decodes a recorded JSON response body into a map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}
	return bodyMap
}

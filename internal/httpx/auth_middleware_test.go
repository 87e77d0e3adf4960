package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajatCoding/jktech-assignment/internal/user"
)

type fakeAuthenticator struct {
	user *user.User
	err  error
}

func (f fakeAuthenticator) Authenticate(ctx context.Context, token string) (*user.User, error) {
	return f.user, f.err
}

func TestRequireAuth_StoresUserInContext(t *testing.T) {
	var seen *user.User
	handler := RequireAuth(fakeAuthenticator{user: &user.User{ID: 7, Username: "alice"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = UserFrom(r)
		}))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Username)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	handler := RequireAuth(fakeAuthenticator{})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}

func TestRequireAuth_NonBearerScheme(t *testing.T) {
	handler := RequireAuth(fakeAuthenticator{})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuth_RejectedToken(t *testing.T) {
	handler := RequireAuth(fakeAuthenticator{err: errors.New("expired")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	called := false
	handler := RequireAdmin(fakeAuthenticator{user: &user.User{ID: 1, Username: "root", IsAdmin: true}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}

func TestRequireAdmin_ForbidsRegularUser(t *testing.T) {
	handler := RequireAdmin(fakeAuthenticator{user: &user.User{ID: 7, Username: "alice"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not enough permissions. Admin access required.")
}

func TestRequireAdmin_StillRequiresToken(t *testing.T) {
	handler := RequireAdmin(fakeAuthenticator{user: &user.User{IsAdmin: true}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/books", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

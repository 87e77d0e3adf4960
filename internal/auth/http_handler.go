package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/RajatCoding/jktech-assignment/internal/httpx"
	"github.com/RajatCoding/jktech-assignment/internal/user"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type registerReq struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"full_name"`
	Password string  `json:"password" validate:"required,min=8"`
	IsAdmin  bool    `json:"is_admin"`
}

// Register handles POST /register.
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	u, err := h.service.Register(r.Context(), RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			httpx.Error(w, http.StatusBadRequest, "ALREADY_EXISTS", "Username already registered", nil)
		case errors.Is(err, user.ErrEmailTaken):
			httpx.Error(w, http.StatusBadRequest, "ALREADY_EXISTS", "Email already registered", nil)
		default:
			httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, u)
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /login.
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Incorrect username or password", nil)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /users/me. Runs behind RequireAuth.
func (h *HTTPHandler) Me(w http.ResponseWriter, r *http.Request) {
	u := httpx.UserFrom(r)
	if u == nil {
		httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}

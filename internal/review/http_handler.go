package review

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RajatCoding/jktech-assignment/internal/book"
	"github.com/RajatCoding/jktech-assignment/internal/httpx"
)

// BookGetter checks review targets exist before writes.
type BookGetter interface {
	Get(ctx context.Context, id int64) (book.Book, error)
}

type HTTPHandler struct {
	service *Service
	books   BookGetter
}

func NewHTTPHandler(service *Service, books BookGetter) *HTTPHandler {
	return &HTTPHandler{service: service, books: books}
}

type createReviewReq struct {
	ReviewText string   `json:"review_text" validate:"required"`
	Rating     *float64 `json:"rating" validate:"required,gte=0,lte=5"`
}

// Create handles POST /books/{id}/reviews. Runs behind RequireAuth; the
// review is always bound to the acting user, whatever the body says.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	u := httpx.UserFrom(r)
	if u == nil {
		httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
		return
	}

	bookID, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "id", Message: "id must be an integer"},
		})
		return
	}

	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if _, err := h.books.Get(r.Context(), bookID); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	rv := Review{
		BookID:     bookID,
		UserID:     u.ID,
		ReviewText: req.ReviewText,
		Rating:     *req.Rating,
	}
	if err := h.service.Create(r.Context(), &rv); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, rv)
}

// List handles GET /books/{id}/reviews.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "id", Message: "id must be an integer"},
		})
		return
	}

	if _, err := h.books.Get(r.Context(), bookID); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	reviews, err := h.service.ListByBook(r.Context(), bookID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, reviews)
}

package book

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/RajatCoding/jktech-assignment/internal/httpx"
	"github.com/RajatCoding/jktech-assignment/internal/rating"
	"github.com/RajatCoding/jktech-assignment/internal/review"
)

// ReviewLister loads the live review set of a book for aggregation.
type ReviewLister interface {
	ListByBook(ctx context.Context, bookID int64) ([]review.Review, error)
}

// ReviewSummarizer turns a review set into a short natural-language synopsis.
type ReviewSummarizer interface {
	SummarizeReviews(ctx context.Context, reviews []review.Review) (string, error)
}

type HTTPHandler struct {
	service    *Service
	reviews    ReviewLister
	summarizer ReviewSummarizer
	logger     *zap.Logger
}

func NewHTTPHandler(service *Service, reviews ReviewLister, summarizer ReviewSummarizer, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		service:    service,
		reviews:    reviews,
		summarizer: summarizer,
		logger:     logger,
	}
}

type createBookReq struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	Genre         string  `json:"genre" validate:"required"`
	YearPublished int     `json:"year_published" validate:"required,gte=1000,lte=9999"`
	Summary       *string `json:"summary"`
}

// Create handles POST /books. Runs behind RequireAdmin.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b := Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		YearPublished: req.YearPublished,
		Summary:       req.Summary,
	}
	if err := h.service.Create(r.Context(), &b); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusCreated, b)
}

// List handles GET /books?skip&limit&genre&author.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Genre:  r.URL.Query().Get("genre"),
		Author: r.URL.Query().Get("author"),
		Limit:  100,
	}

	if skip, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && skip > 0 {
		params.Skip = skip
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}

	books, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /books/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}

type updateBookReq struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Genre         *string `json:"genre"`
	YearPublished *int    `json:"year_published" validate:"omitempty,gte=1000,lte=9999"`
	Summary       *string `json:"summary"`
}

// Update handles PUT /books/{id}. Only fields present in the body change.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b, err := h.service.Update(r.Context(), id, UpdateParams{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		YearPublished: req.YearPublished,
		Summary:       req.Summary,
	})
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /books/{id}. Runs behind RequireAdmin.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	httpx.NoContent(w)
}

type summaryResponse struct {
	BookID        int64   `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Summary       *string `json:"summary"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	ReviewSummary *string `json:"review_summary"`
}

// Summary handles GET /books/{id}/summary: the book's own summary plus its
// rating aggregate and, when reviews exist, a provider-generated synopsis.
// Provider failure degrades to a null review_summary; it is never an error
// for the caller on this path.
func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	reviews, err := h.reviews.ListByBook(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	agg := rating.Compute(id, reviews)

	var reviewSummary *string
	if len(reviews) > 0 {
		text, err := h.summarizer.SummarizeReviews(r.Context(), reviews)
		if err != nil {
			h.logger.Error("generating review summary",
				zap.Int64("book_id", id),
				zap.Error(err),
			)
		} else {
			reviewSummary = &text
		}
	}

	httpx.JSON(w, http.StatusOK, summaryResponse{
		BookID:        b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Summary:       b.Summary,
		AverageRating: agg.AverageRating,
		TotalReviews:  agg.ReviewCount,
		ReviewSummary: reviewSummary,
	})
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "id", Message: "id must be an integer"},
		})
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) writeLookupError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "Book with id "+strconv.FormatInt(id, 10)+" not found", nil)
		return
	}
	httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajatCoding/jktech-assignment/internal/book"
	"github.com/RajatCoding/jktech-assignment/internal/review"
)

type stubBookSource struct {
	books []book.Book
	err   error
}

func (s stubBookSource) ListAll(ctx context.Context) ([]book.Book, error) {
	return s.books, s.err
}

type stubReviewSource struct {
	reviews []review.Review
	err     error
}

func (s stubReviewSource) ListAll(ctx context.Context) ([]review.Review, error) {
	return s.reviews, s.err
}

func newTestHandler(books stubBookSource, reviews stubReviewSource) *HTTPHandler {
	return NewHTTPHandler(NewService(books, reviews))
}

func TestRecommendHandler_PassesQueryFilters(t *testing.T) {
	handler := newTestHandler(
		stubBookSource{books: []book.Book{
			{ID: 1, Title: "Dune", Genre: "Science Fiction"},
			{ID: 2, Title: "Wolf Hall", Genre: "Historical Fiction"},
			{ID: 3, Title: "Becoming", Genre: "Biography"},
		}},
		stubReviewSource{reviews: []review.Review{
			{ID: 1, BookID: 1, UserID: 7, Rating: 5.0},
			{ID: 2, BookID: 2, UserID: 8, Rating: 4.5},
		}},
	)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?user_id=7&preferred_genres=fiction&min_rating=4", nil)
	rr := httptest.NewRecorder()
	handler.Recommend(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var result Result
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))

	// Book 1 is excluded (reviewed by user 7), book 3 fails both genre and
	// rating, leaving book 2.
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, int64(2), result.Recommendations[0].ID)
	assert.Equal(t, "Recommended based on your preferences: fiction with rating >= 4", result.Reason)
}

func TestRecommendHandler_NoFilters(t *testing.T) {
	handler := newTestHandler(
		stubBookSource{books: []book.Book{{ID: 1, Genre: "Fiction"}}},
		stubReviewSource{},
	)

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	rr := httptest.NewRecorder()
	handler.Recommend(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var result Result
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(t, "Recommended based on your preferences: all genres", result.Reason)
}

func TestRecommendHandler_InvalidMinRating(t *testing.T) {
	handler := newTestHandler(stubBookSource{}, stubReviewSource{})

	req := httptest.NewRequest(http.MethodGet, "/recommendations?min_rating=high", nil)
	rr := httptest.NewRecorder()
	handler.Recommend(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestRecommendHandler_SourceFailure(t *testing.T) {
	handler := newTestHandler(
		stubBookSource{err: errors.New("connection refused")},
		stubReviewSource{},
	)

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	rr := httptest.NewRecorder()
	handler.Recommend(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

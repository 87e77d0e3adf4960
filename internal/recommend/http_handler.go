package recommend

import (
	"net/http"
	"strconv"

	"github.com/RajatCoding/jktech-assignment/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Recommend handles GET /recommendations?user_id&preferred_genres&min_rating.
func (h *HTTPHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	f := Filters{
		PreferredGenres: r.URL.Query().Get("preferred_genres"),
		ExcludeUserID:   r.URL.Query().Get("user_id"),
	}

	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "min_rating", Message: "min_rating must be a number"},
			})
			return
		}
		f.MinRating = &minRating
	}

	result, err := h.service.Recommend(r.Context(), f)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}

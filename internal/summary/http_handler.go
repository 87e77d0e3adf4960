package summary

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RajatCoding/jktech-assignment/internal/httpx"
)

type HTTPHandler struct {
	bridge *Bridge
}

func NewHTTPHandler(bridge *Bridge) *HTTPHandler {
	return &HTTPHandler{bridge: bridge}
}

type generateSummaryReq struct {
	Content   string  `json:"content" validate:"required"`
	BookTitle *string `json:"book_title"`
	Author    *string `json:"author"`
}

type generateSummaryResponse struct {
	Summary string `json:"summary"`
}

// Generate handles POST /generate-summary. Unlike the book-summary flow,
// provider failure here surfaces as an explicit 500.
func (h *HTTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateSummaryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	text, err := h.bridge.SummarizeContent(r.Context(), req.Content, req.BookTitle, req.Author)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "PROVIDER_ERROR",
			fmt.Sprintf("Failed to generate summary: %v", err), nil)
		return
	}

	httpx.JSON(w, http.StatusOK, generateSummaryResponse{Summary: text})
}

package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/RajatCoding/jktech-assignment/internal/review"
)

// NoReviewsSummary is returned for an empty review set without touching the
// provider.
const NoReviewsSummary = "No reviews available."

// Bridge builds the prompts for both provider flows. Failure policy is the
// caller's concern: the book-summary path degrades, /generate-summary
// propagates.
type Bridge struct {
	provider Provider
}

func NewBridge(provider Provider) *Bridge {
	return &Bridge{provider: provider}
}

// SummarizeReviews asks the provider for a consensus synopsis of the given
// reviews, in input order.
func (b *Bridge) SummarizeReviews(ctx context.Context, reviews []review.Review) (string, error) {
	if len(reviews) == 0 {
		return NoReviewsSummary, nil
	}

	entries := make([]string, len(reviews))
	for i, rv := range reviews {
		entries[i] = fmt.Sprintf("Rating: %.1f/5.0\nReview: %s", rv.Rating, rv.ReviewText)
	}

	prompt := fmt.Sprintf(`Please analyze the following book reviews and provide a concise summary (2-3 sentences) highlighting:
1. Overall sentiment (positive/negative/mixed)
2. Common themes or points mentioned
3. General consensus

Reviews:
%s

Summary:`, strings.Join(entries, "\n\n"))

	return b.provider.GenerateText(ctx, prompt)
}

// SummarizeContent asks the provider for a short summary of raw book content.
func (b *Bridge) SummarizeContent(ctx context.Context, content string, bookTitle, author *string) (string, error) {
	prompt := fmt.Sprintf(`
Summarize the following book in 3-4 sentences.

Title: %s
Author: %s

Content:
%s
`, orNA(bookTitle), orNA(author), content)

	return b.provider.GenerateText(ctx, prompt)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

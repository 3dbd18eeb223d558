package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeDestination(t *testing.T) {
	// Location field wins when present
	summary := SummarizeDestination(map[string]any{
		"location":    "Bali, Indonesia",
		"attractions": []any{"Uluwatu Temple", "Kuta Beach"},
	})
	assert.Equal(t, "Bali, Indonesia", summary, "Location field should be preferred over JSON form")

	// Non-string location falls through to the JSON form
	summary = SummarizeDestination(map[string]any{"location": 42})
	assert.Equal(t, `{"location":42}`, summary, "Non-string location should fall back to JSON")

	// Empty location string falls through too
	summary = SummarizeDestination(map[string]any{"location": "", "city": "Ubud"})
	assert.Contains(t, summary, "city", "Empty location should fall back to JSON")

	// Nil destination summarizes to empty
	assert.Empty(t, SummarizeDestination(nil), "Nil destination should summarize to empty string")
}

func TestSummarizeDestinationTruncation(t *testing.T) {
	long := map[string]any{
		"city": strings.Repeat("x", 100),
	}
	summary := SummarizeDestination(long)
	assert.Len(t, summary, 50, "JSON fallback should be capped at 50 characters")
	assert.True(t, strings.HasPrefix(summary, `{"city":"xxx`), "Truncation should keep the JSON prefix")
}

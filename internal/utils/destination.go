package utils

import (
	"encoding/json"
	"fmt"
)

// maxDestinationSummaryLen caps the JSON fallback form of a destination.
const maxDestinationSummaryLen = 50

// SummarizeDestination renders a trip destination object as a short human
// readable string for ledger descriptions. The nested "location" field wins
// when present; otherwise the whole object is JSON-stringified and truncated.
func SummarizeDestination(destination map[string]any) string {
	if destination == nil {
		return ""
	}
	if loc, ok := destination["location"]; ok {
		if s, ok := loc.(string); ok && s != "" {
			return s
		}
	}
	raw, err := json.Marshal(destination)
	if err != nil {
		return fmt.Sprintf("%v", destination)
	}
	summary := string(raw)
	if len(summary) > maxDestinationSummaryLen {
		summary = summary[:maxDestinationSummaryLen]
	}
	return summary
}

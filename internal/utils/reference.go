package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceNumber generates a human-readable payment reference of the
// form REF-XXXXXXXX, where the suffix is the first 8 characters of a fresh
// UUID, uppercased.
func NewReferenceNumber() string {
	return "REF-" + strings.ToUpper(uuid.NewString()[:8])
}

package dto

import (
	"github.com/mlakumulu/travel_backend/internal/core/domain"
)

// ListTransactionsParams defines query parameters for the transaction listing.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page, when there is one.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

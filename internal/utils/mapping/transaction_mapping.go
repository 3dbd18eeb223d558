package mapping

import (
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/models"
)

// ToModelTransaction converts a domain transaction to its storage shape.
func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   t.TransactionID,
		TransactionDate: t.TransactionDate,
		Amount:          t.Amount,
		Status:          string(t.Status),
		PaymentMethod:   string(t.PaymentMethod),
		ReferenceNumber: t.ReferenceNumber,
		Notes:           t.Notes,
		TouristID:       t.TouristID,
		CreatedByID:     t.CreatedByID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToDomainTransaction converts a storage transaction row to the domain shape.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		TransactionDate:    m.TransactionDate,
		Amount:             m.Amount,
		Status:             domain.TransactionStatus(m.Status),
		PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
		ReferenceNumber:    m.ReferenceNumber,
		Notes:              m.Notes,
		TouristID:          m.TouristID,
		CreatedByID:        m.CreatedByID,
		CreatedByFirstName: m.CreatedByFirstName,
		CreatedByLastName:  m.CreatedByLastName,
		TouristFirstName:   m.TouristFirstName,
		TouristLastName:    m.TouristLastName,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainTransactionSlice converts a slice of storage transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	txns := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txns[i] = ToDomainTransaction(m)
	}
	return txns
}

// ToModelTransactionDetail converts a domain detail to its storage shape.
func ToModelTransactionDetail(d domain.TransactionDetail) models.TransactionDetail {
	return models.TransactionDetail{
		DetailID:      d.DetailID,
		Amount:        d.Amount,
		Description:   d.Description,
		TransactionID: d.TransactionID,
		TripID:        d.TripID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainTransactionDetail converts a storage detail row to the domain shape.
func ToDomainTransactionDetail(m models.TransactionDetail) domain.TransactionDetail {
	return domain.TransactionDetail{
		DetailID:      m.DetailID,
		Amount:        m.Amount,
		Description:   m.Description,
		TransactionID: m.TransactionID,
		TripID:        m.TripID,
		TripName:      m.TripName,
		TripPrice:     m.TripPrice,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainTransactionDetailSlice converts a slice of storage details.
func ToDomainTransactionDetailSlice(ms []models.TransactionDetail) []domain.TransactionDetail {
	details := make([]domain.TransactionDetail, len(ms))
	for i, m := range ms {
		details[i] = ToDomainTransactionDetail(m)
	}
	return details
}

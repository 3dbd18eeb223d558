package mapping

import (
	"encoding/json"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/models"
)

// ToModelTrip converts a domain trip to its storage shape.
func ToModelTrip(t domain.Trip) models.Trip {
	destination, err := json.Marshal(t.Destination)
	if err != nil {
		destination = []byte("{}")
	}
	return models.Trip{
		TripID:        t.TripID,
		Name:          t.Name,
		StartDateTime: t.StartDateTime,
		EndDateTime:   t.EndDateTime,
		Destination:   destination,
		Description:   t.Description,
		Price:         t.Price,
		TouristID:     t.TouristID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToDomainTrip converts a storage trip row to the domain shape.
func ToDomainTrip(m models.Trip) domain.Trip {
	var destination map[string]any
	// An undecodable destination is surfaced as empty rather than failing the read.
	_ = json.Unmarshal(m.Destination, &destination)
	return domain.Trip{
		TripID:        m.TripID,
		Name:          m.Name,
		StartDateTime: m.StartDateTime,
		EndDateTime:   m.EndDateTime,
		Destination:   destination,
		Description:   m.Description,
		Price:         m.Price,
		TouristID:     m.TouristID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainTripSlice converts a slice of storage trips.
func ToDomainTripSlice(ms []models.Trip) []domain.Trip {
	trips := make([]domain.Trip, len(ms))
	for i, m := range ms {
		trips[i] = ToDomainTrip(m)
	}
	return trips
}

package mapping

import (
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/models"
)

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToDomainUser converts a storage user row to the domain shape.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelUser converts a domain user to its storage shape.
func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:       u.UserID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToDomainEmployee converts a storage employee row to the domain shape.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: m.EmployeeID,
		UserID:     m.UserID,
		Position:   derefOrEmpty(m.Position),
		Department: derefOrEmpty(m.Department),
		HireDate:   m.HireDate,
	}
}

// ToDomainTourist converts a storage tourist row to the domain shape.
func ToDomainTourist(m models.Tourist) domain.Tourist {
	return domain.Tourist{
		TouristID:      m.TouristID,
		UserID:         m.UserID,
		PassportNumber: derefOrEmpty(m.PassportNumber),
		Nationality:    derefOrEmpty(m.Nationality),
		DateOfBirth:    m.DateOfBirth,
		PhoneNumber:    derefOrEmpty(m.PhoneNumber),
		Address:        derefOrEmpty(m.Address),
	}
}

// ToModelTourist converts a domain tourist to its storage shape.
func ToModelTourist(t domain.Tourist) models.Tourist {
	return models.Tourist{
		TouristID:      t.TouristID,
		UserID:         t.UserID,
		PassportNumber: nilIfEmpty(t.PassportNumber),
		Nationality:    nilIfEmpty(t.Nationality),
		DateOfBirth:    t.DateOfBirth,
		PhoneNumber:    nilIfEmpty(t.PhoneNumber),
		Address:        nilIfEmpty(t.Address),
	}
}

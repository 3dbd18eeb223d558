package models

import "time"

// User is the storage shape of a user row.
type User struct {
	UserID       string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Employee is the storage shape of an employee profile row.
type Employee struct {
	EmployeeID string
	UserID     string
	Position   *string
	Department *string
	HireDate   *time.Time
}

// Tourist is the storage shape of a tourist profile row.
type Tourist struct {
	TouristID      string
	UserID         string
	PassportNumber *string
	Nationality    *string
	DateOfBirth    *time.Time
	PhoneNumber    *string
	Address        *string
}

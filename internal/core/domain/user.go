package domain

import "time"

// UserRole distinguishes agency staff from customers.
type UserRole string

const (
	RoleEmployee UserRole = "EMPLOYEE"
	RoleTourist  UserRole = "TOURIST"
)

// User is an authenticated account, either an employee or a tourist.
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}

// Employee is the staff profile attached to an EMPLOYEE user.
type Employee struct {
	EmployeeID string     `json:"employeeID"`
	UserID     string     `json:"userID"`
	Position   string     `json:"position,omitempty"`
	Department string     `json:"department,omitempty"`
	HireDate   *time.Time `json:"hireDate,omitempty"`
}

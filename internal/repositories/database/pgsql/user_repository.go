package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/models"
	"github.com/mlakumulu/travel_backend/internal/utils/mapping"

	"github.com/google/uuid"
)

type PgxUserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new repository for user and employee data.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.FirstName,
		&m.LastName,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// FindUserByEmail retrieves a user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by email", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// SaveUser persists a new user and the matching role profile row (employee
// or tourist) within one database transaction.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelUser(user)
	userQuery := `
		INSERT INTO users (user_id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, userQuery,
		m.UserID,
		m.Email,
		m.PasswordHash,
		m.FirstName,
		m.LastName,
		m.Role,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert user "+m.UserID, err)
	}

	switch user.Role {
	case domain.RoleEmployee:
		_, err = tx.Exec(ctx, `INSERT INTO employees (employee_id, user_id) VALUES ($1, $2);`, uuid.NewString(), m.UserID)
	default:
		_, err = tx.Exec(ctx, `INSERT INTO tourists (tourist_id, user_id) VALUES ($1, $2);`, uuid.NewString(), m.UserID)
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert role profile for user "+m.UserID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEmployees retrieves all employee profiles.
func (r *PgxUserRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT employee_id, user_id, position, department, hire_date
		FROM employees
		ORDER BY employee_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var m models.Employee
		if err := rows.Scan(&m.EmployeeID, &m.UserID, &m.Position, &m.Department, &m.HireDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, mapping.ToDomainEmployee(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return employees, nil
}

// FindEmployeeByUserID retrieves the employee profile for a user account.
func (r *PgxUserRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, user_id, position, department, hire_date
		FROM employees
		WHERE user_id = $1;
	`
	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&m.EmployeeID, &m.UserID, &m.Position, &m.Department, &m.HireDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee for user "+userID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

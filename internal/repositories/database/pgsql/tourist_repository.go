package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/models"
	"github.com/mlakumulu/travel_backend/internal/utils/mapping"
)

type PgxTouristRepository struct {
	BaseRepository
}

// NewTouristRepository creates a new repository for tourist profiles.
func NewTouristRepository(pool *pgxpool.Pool) portsrepo.TouristRepositoryFacade {
	return &PgxTouristRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TouristRepositoryFacade = (*PgxTouristRepository)(nil)

// touristSelect joins the owning user account for display.
const touristSelect = `
	SELECT tr.tourist_id, tr.user_id, tr.passport_number, tr.nationality, tr.date_of_birth, tr.phone_number, tr.address,
	       u.user_id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.is_active, u.created_at, u.updated_at
	FROM tourists tr
	JOIN users u ON tr.user_id = u.user_id
`

func scanTouristWithUser(row pgx.Row) (domain.Tourist, error) {
	var mt models.Tourist
	var mu models.User
	err := row.Scan(
		&mt.TouristID,
		&mt.UserID,
		&mt.PassportNumber,
		&mt.Nationality,
		&mt.DateOfBirth,
		&mt.PhoneNumber,
		&mt.Address,
		&mu.UserID,
		&mu.Email,
		&mu.PasswordHash,
		&mu.FirstName,
		&mu.LastName,
		&mu.Role,
		&mu.IsActive,
		&mu.CreatedAt,
		&mu.UpdatedAt,
	)
	if err != nil {
		return domain.Tourist{}, err
	}
	tourist := mapping.ToDomainTourist(mt)
	user := mapping.ToDomainUser(mu)
	tourist.User = &user
	return tourist, nil
}

// FindTouristByID retrieves a tourist by ID with their user joined.
func (r *PgxTouristRepository) FindTouristByID(ctx context.Context, touristID string) (*domain.Tourist, error) {
	tourist, err := scanTouristWithUser(r.Pool.QueryRow(ctx, touristSelect+` WHERE tr.tourist_id = $1;`, touristID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tourist by ID "+touristID, err)
	}
	return &tourist, nil
}

// FindTouristByUserID retrieves the tourist profile for a user account.
func (r *PgxTouristRepository) FindTouristByUserID(ctx context.Context, userID string) (*domain.Tourist, error) {
	tourist, err := scanTouristWithUser(r.Pool.QueryRow(ctx, touristSelect+` WHERE tr.user_id = $1;`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tourist for user "+userID, err)
	}
	return &tourist, nil
}

// FindTourists retrieves all tourist profiles with their users.
func (r *PgxTouristRepository) FindTourists(ctx context.Context) ([]domain.Tourist, error) {
	rows, err := r.Pool.Query(ctx, touristSelect+` ORDER BY u.last_name, u.first_name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tourists", err)
	}
	defer rows.Close()

	tourists := []domain.Tourist{}
	for rows.Next() {
		tourist, err := scanTouristWithUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tourist row", err)
		}
		tourists = append(tourists, tourist)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tourist rows", err)
	}
	return tourists, nil
}

// UpdateTourist updates a tourist's profile fields.
func (r *PgxTouristRepository) UpdateTourist(ctx context.Context, tourist domain.Tourist) error {
	m := mapping.ToModelTourist(tourist)
	query := `
		UPDATE tourists
		SET passport_number = $2,
		    nationality = $3,
		    date_of_birth = $4,
		    phone_number = $5,
		    address = $6
		WHERE tourist_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TouristID,
		m.PassportNumber,
		m.Nationality,
		m.DateOfBirth,
		m.PhoneNumber,
		m.Address,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tourist "+m.TouristID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tourist " + m.TouristID + " not found for update")
	}
	return nil
}

package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/models"
	"github.com/mlakumulu/travel_backend/internal/utils/mapping"
)

type PgxTripRepository struct {
	BaseRepository
}

// NewTripRepository creates a new repository for trip data.
func NewTripRepository(pool *pgxpool.Pool) portsrepo.TripRepositoryFacade {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

const tripColumns = `trip_id, name, start_datetime, end_datetime, destination, description, price, tourist_id, created_at, updated_at`

func scanTrip(row pgx.Row) (models.Trip, error) {
	var m models.Trip
	var description sql.NullString
	err := row.Scan(
		&m.TripID,
		&m.Name,
		&m.StartDateTime,
		&m.EndDateTime,
		&m.Destination,
		&description,
		&m.Price,
		&m.TouristID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Trip{}, err
	}
	if description.Valid {
		m.Description = description.String
	}
	return m, nil
}

// FindTripByID retrieves a trip by its ID.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE trip_id = $1;
	`
	m, err := scanTrip(r.Pool.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find trip by ID "+tripID, err)
	}

	trip := mapping.ToDomainTrip(m)
	return &trip, nil
}

// FindTrips retrieves all trips, newest start date first.
func (r *PgxTripRepository) FindTrips(ctx context.Context) ([]domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY start_datetime DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trips", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

// FindTripsByTouristID retrieves all trips owned by a tourist.
func (r *PgxTripRepository) FindTripsByTouristID(ctx context.Context, touristID string) ([]domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE tourist_id = $1
		ORDER BY start_datetime DESC;
	`
	rows, err := r.Pool.Query(ctx, query, touristID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trips for tourist "+touristID, err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	trips := []models.Trip{}
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trip row", err)
		}
		trips = append(trips, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trip rows", err)
	}
	return mapping.ToDomainTripSlice(trips), nil
}

// SaveTrip persists a new trip.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		INSERT INTO trips (trip_id, name, start_datetime, end_datetime, destination, description, price, tourist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TripID,
		m.Name,
		m.StartDateTime,
		m.EndDateTime,
		m.Destination,
		m.Description,
		m.Price,
		m.TouristID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert trip "+m.TripID, err)
	}
	return nil
}

// UpdateTrip updates an existing trip's details.
func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		UPDATE trips
		SET name = $2,
		    start_datetime = $3,
		    end_datetime = $4,
		    destination = $5,
		    description = $6,
		    price = $7,
		    updated_at = $8
		WHERE trip_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TripID,
		m.Name,
		m.StartDateTime,
		m.EndDateTime,
		m.Destination,
		m.Description,
		m.Price,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update trip "+m.TripID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip " + m.TripID + " not found for update")
	}
	return nil
}

// DeleteTrip removes a trip row. Transaction details referencing the trip
// must already be gone or the foreign key rejects the delete.
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete trip "+tripID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip " + tripID + " not found for delete")
	}
	return nil
}

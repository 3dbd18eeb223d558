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

type PgxFeedbackRepository struct {
	BaseRepository
}

// NewFeedbackRepository creates a new repository for feedback data.
func NewFeedbackRepository(pool *pgxpool.Pool) portsrepo.FeedbackRepositoryFacade {
	return &PgxFeedbackRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FeedbackRepositoryFacade = (*PgxFeedbackRepository)(nil)

const feedbackColumns = `feedback_id, rating, comment, trip_id, tourist_id, sentiment_type, sentiment_confidence, created_at, updated_at`

func scanFeedback(row pgx.Row) (models.Feedback, error) {
	var m models.Feedback
	err := row.Scan(
		&m.FeedbackID,
		&m.Rating,
		&m.Comment,
		&m.TripID,
		&m.TouristID,
		&m.SentimentType,
		&m.SentimentConfidence,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindFeedbackByID retrieves a feedback entry by ID.
func (r *PgxFeedbackRepository) FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE feedback_id = $1;`
	m, err := scanFeedback(r.Pool.QueryRow(ctx, query, feedbackID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find feedback by ID "+feedbackID, err)
	}
	feedback := mapping.ToDomainFeedback(m)
	return &feedback, nil
}

// FindFeedbackByTripID retrieves all feedback left for a trip.
func (r *PgxFeedbackRepository) FindFeedbackByTripID(ctx context.Context, tripID string) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE trip_id = $1 ORDER BY created_at DESC;`
	return r.queryFeedback(ctx, query, tripID)
}

// FindFeedbackByTouristID retrieves all feedback left by a tourist.
func (r *PgxFeedbackRepository) FindFeedbackByTouristID(ctx context.Context, touristID string) ([]domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE tourist_id = $1 ORDER BY created_at DESC;`
	return r.queryFeedback(ctx, query, touristID)
}

func (r *PgxFeedbackRepository) queryFeedback(ctx context.Context, query string, arg any) ([]domain.Feedback, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query feedback", err)
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		m, err := scanFeedback(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan feedback row", err)
		}
		feedback = append(feedback, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating feedback rows", err)
	}
	return mapping.ToDomainFeedbackSlice(feedback), nil
}

// SaveFeedback persists a new feedback entry with its sentiment tag.
func (r *PgxFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	m := mapping.ToModelFeedback(feedback)
	query := `
		INSERT INTO feedback (feedback_id, rating, comment, trip_id, tourist_id, sentiment_type, sentiment_confidence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FeedbackID,
		m.Rating,
		m.Comment,
		m.TripID,
		m.TouristID,
		m.SentimentType,
		m.SentimentConfidence,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert feedback "+m.FeedbackID, err)
	}
	return nil
}

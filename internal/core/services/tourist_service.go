package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

// TouristService manages tourist profiles.
type TouristService struct {
	touristRepo portsrepo.TouristRepositoryFacade
}

func NewTouristService(touristRepo portsrepo.TouristRepositoryFacade) *TouristService {
	return &TouristService{touristRepo: touristRepo}
}

// ListTourists retrieves all tourist profiles with their user accounts.
func (s *TouristService) ListTourists(ctx context.Context) ([]domain.Tourist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	tourists, err := s.touristRepo.FindTourists(ctx)
	if err != nil {
		logger.Error("Failed to list tourists", slog.String("error", err.Error()))
		return nil, err
	}
	if tourists == nil {
		return []domain.Tourist{}, nil
	}
	return tourists, nil
}

// GetTouristByID retrieves a tourist profile.
func (s *TouristService) GetTouristByID(ctx context.Context, touristID string) (*domain.Tourist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	tourist, err := s.touristRepo.FindTouristByID(ctx, touristID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find tourist by ID", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		}
		return nil, err
	}
	return tourist, nil
}

// GetTouristByUserID retrieves a tourist profile by user account.
func (s *TouristService) GetTouristByUserID(ctx context.Context, userID string) (*domain.Tourist, error) {
	tourist, err := s.touristRepo.FindTouristByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return tourist, nil
}

// UpdateTourist updates a tourist's profile fields. Omitted fields keep
// their current values.
func (s *TouristService) UpdateTourist(ctx context.Context, touristID string, req dto.UpdateTouristRequest) (*domain.Tourist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tourist, err := s.touristRepo.FindTouristByID(ctx, touristID)
	if err != nil {
		return nil, err
	}

	if req.PassportNumber != nil {
		tourist.PassportNumber = *req.PassportNumber
	}
	if req.Nationality != nil {
		tourist.Nationality = *req.Nationality
	}
	if req.DateOfBirth != nil {
		tourist.DateOfBirth = req.DateOfBirth
	}
	if req.PhoneNumber != nil {
		tourist.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		tourist.Address = *req.Address
	}

	if err := s.touristRepo.UpdateTourist(ctx, *tourist); err != nil {
		logger.Error("Failed to update tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		return nil, err
	}

	logger.Info("Tourist updated", slog.String("tourist_id", touristID))
	return tourist, nil
}

package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
	"github.com/mlakumulu/travel_backend/internal/utils"
)

// ReportService renders per-tourist trip history reports to disk as PDF or
// CSV. Files land in the configured report directory and are served as
// attachments by the handler.
type ReportService struct {
	touristRepo  portsrepo.TouristRepositoryFacade
	tripRepo     portsrepo.TripRepositoryFacade
	feedbackRepo portsrepo.FeedbackRepositoryFacade
	tmpDir       string
}

func NewReportService(touristRepo portsrepo.TouristRepositoryFacade, tripRepo portsrepo.TripRepositoryFacade, feedbackRepo portsrepo.FeedbackRepositoryFacade, tmpDir string) *ReportService {
	return &ReportService{
		touristRepo:  touristRepo,
		tripRepo:     tripRepo,
		feedbackRepo: feedbackRepo,
		tmpDir:       tmpDir,
	}
}

// GenerateReport renders the tourist's trip history in the requested format.
// A tourist without any trips yields ErrNotFound, matching the direct-lookup
// semantics of the rest of the API.
func (s *ReportService) GenerateReport(ctx context.Context, touristID string, format dto.ReportFormat) (*dto.ReportFile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tourist, err := s.touristRepo.FindTouristByID(ctx, touristID)
	if err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.FindTripsByTouristID(ctx, touristID)
	if err != nil {
		logger.Error("Failed to load trips for report", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no trips found for tourist %s", touristID))
	}

	feedbackByTrip := make(map[string][]domain.Feedback, len(trips))
	for _, trip := range trips {
		fb, err := s.feedbackRepo.FindFeedbackByTripID(ctx, trip.TripID)
		if err != nil {
			logger.Error("Failed to load feedback for report", slog.String("error", err.Error()), slog.String("trip_id", trip.TripID))
			return nil, err
		}
		feedbackByTrip[trip.TripID] = fb
	}

	if err := os.MkdirAll(s.tmpDir, 0o755); err != nil {
		return nil, apperrors.NewAppError(500, "failed to create report directory", err)
	}

	var file *dto.ReportFile
	switch format {
	case dto.ReportFormatCSV:
		file, err = s.writeCSV(tourist, trips, feedbackByTrip)
	default:
		file, err = s.writePDF(tourist, trips, feedbackByTrip)
	}
	if err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		return nil, err
	}

	logger.Info("Report generated", slog.String("tourist_id", touristID), slog.String("file", file.FileName))
	return file, nil
}

func (s *ReportService) writePDF(tourist *domain.Tourist, trips []domain.Trip, feedbackByTrip map[string][]domain.Feedback) (*dto.ReportFile, error) {
	fileName := fmt.Sprintf("trip-report-%s.pdf", tourist.TouristID)
	filePath := filepath.Join(s.tmpDir, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "Mlaku-Mulu Travel Agency", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Trip Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	if tourist.User != nil {
		pdf.CellFormat(0, 7, fmt.Sprintf("Tourist: %s %s", tourist.User.FirstName, tourist.User.LastName), "", 1, "L", false, 0, "")
	}
	if tourist.PassportNumber != "" {
		pdf.CellFormat(0, 7, "Passport: "+tourist.PassportNumber, "", 1, "L", false, 0, "")
	}
	if tourist.Nationality != "" {
		pdf.CellFormat(0, 7, "Nationality: "+tourist.Nationality, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 9, "Trip History", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, trip := range trips {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Trip #%d: %s", i+1, trip.Name), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, "Destination: "+utils.SummarizeDestination(trip.Destination), "", "L", false)
		pdf.CellFormat(0, 6, "Start Date: "+trip.StartDateTime.Format(time.RFC3339), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "End Date: "+trip.EndDateTime.Format(time.RFC3339), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Price: $"+trip.Price.StringFixed(2), "", 1, "L", false, 0, "")
		if trip.Description != "" {
			pdf.MultiCell(0, 6, "Description: "+trip.Description, "", "L", false)
		}

		if fbs := feedbackByTrip[trip.TripID]; len(fbs) > 0 {
			pdf.Ln(2)
			pdf.CellFormat(0, 6, "Feedback:", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			for _, fb := range fbs {
				pdf.CellFormat(0, 5, fmt.Sprintf("Rating: %d/5", fb.Rating), "", 1, "L", false, 0, "")
				pdf.MultiCell(0, 5, "Comment: "+fb.Comment, "", "L", false)
				if fb.Sentiment != nil {
					pdf.CellFormat(0, 5, "Sentiment: "+string(fb.Sentiment.Type), "", 1, "L", false, 0, "")
				}
			}
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Report generated on "+time.Now().Format(time.RFC3339), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return nil, apperrors.NewAppError(500, "failed to write PDF report", err)
	}
	return &dto.ReportFile{FilePath: filePath, FileName: fileName}, nil
}

func (s *ReportService) writeCSV(tourist *domain.Tourist, trips []domain.Trip, feedbackByTrip map[string][]domain.Feedback) (*dto.ReportFile, error) {
	fileName := fmt.Sprintf("trip-report-%s.csv", tourist.TouristID)
	filePath := filepath.Join(s.tmpDir, fileName)

	f, err := os.Create(filePath)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to create CSV report", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Trip Name", "Destination", "Start Date", "End Date", "Price", "Rating", "Feedback", "Sentiment"}); err != nil {
		return nil, apperrors.NewAppError(500, "failed to write CSV report", err)
	}

	for _, trip := range trips {
		destination := ""
		if raw, err := json.Marshal(trip.Destination); err == nil {
			destination = string(raw)
		}
		base := []string{
			trip.Name,
			destination,
			trip.StartDateTime.Format(time.RFC3339),
			trip.EndDateTime.Format(time.RFC3339),
			trip.Price.StringFixed(2),
		}

		fbs := feedbackByTrip[trip.TripID]
		if len(fbs) == 0 {
			if err := w.Write(append(base, "N/A", "N/A", "N/A")); err != nil {
				return nil, apperrors.NewAppError(500, "failed to write CSV report", err)
			}
			continue
		}
		for _, fb := range fbs {
			sentiment := "N/A"
			if fb.Sentiment != nil {
				sentiment = string(fb.Sentiment.Type)
			}
			row := append(append([]string{}, base...), fmt.Sprintf("%d", fb.Rating), fb.Comment, sentiment)
			if err := w.Write(row); err != nil {
				return nil, apperrors.NewAppError(500, "failed to write CSV report", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to flush CSV report", err)
	}
	return &dto.ReportFile{FilePath: filePath, FileName: fileName}, nil
}

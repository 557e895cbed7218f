package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"personalysis/internal/export"
	"personalysis/internal/repository"
)

// ExportFormat selects the export encoding
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "xlsx"
)

// ExportService renders a survey's responses for download, optionally
// anonymized before flattening.
type ExportService struct {
	responseRepo repository.ResponseRepo
	surveyRepo   repository.SurveyRepo
}

// NewExportService creates a new export service
func NewExportService(responseRepo repository.ResponseRepo, surveyRepo repository.SurveyRepo) *ExportService {
	return &ExportService{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
	}
}

// Export returns the encoded document and its content type
func (s *ExportService) Export(ctx context.Context, surveyID string, format ExportFormat, anonymize bool) ([]byte, string, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, "", err
	}
	if survey == nil {
		return nil, "", ErrSurveyNotFound
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, "", err
	}
	if anonymize {
		responses = export.AnonymizeResponses(responses)
	}

	var buf bytes.Buffer
	switch format {
	case FormatExcel:
		if err := export.WriteExcel(&buf, responses, survey, time.Now()); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case FormatCSV:
		if err := export.WriteCSV(&buf, responses, survey, time.Now()); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "text/csv", nil
	default:
		return nil, "", fmt.Errorf("unsupported export format %q", format)
	}
}

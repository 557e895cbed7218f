package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"personalysis/internal/model"
	"personalysis/internal/repository"
)

var ErrSurveyNotFound = errors.New("survey not found")

// ResponseService handles response intake from the survey wizard. Submission
// payloads are stored as received; the stats normalizer owns shape coercion
// at read time, so historical rows with older shapes stay usable.
type ResponseService struct {
	responseRepo repository.ResponseRepo
	surveyRepo   repository.SurveyRepo
	notification *NotificationService
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, surveyRepo repository.SurveyRepo, notification *NotificationService) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
		notification: notification,
	}
}

// Submit validates the survey reference and stores the response. A
// respondent ID is minted when the client did not supply one.
func (s *ResponseService) Submit(ctx context.Context, response *model.SurveyResponse) (string, error) {
	survey, err := s.surveyRepo.GetByID(ctx, response.SurveyID)
	if err != nil {
		return "", err
	}
	if survey == nil {
		return "", ErrSurveyNotFound
	}

	response.CompanyID = survey.CompanyID
	if response.RespondentID == "" {
		response.RespondentID = uuid.New().String()
	}
	response.CreatedAt = time.Now()

	id, err := s.responseRepo.Create(ctx, response)
	if err != nil {
		return "", err
	}

	// Notification delivery is best effort; intake never fails on it
	s.notification.Notify(ctx, survey.CompanyID, "response", "New survey response", survey.Title)

	return id, nil
}

// GetBySurveyID returns a survey's responses for export and review
func (s *ResponseService) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.SurveyResponse, error) {
	return s.responseRepo.GetBySurveyID(ctx, surveyID)
}

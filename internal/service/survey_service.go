package service

import (
	"context"
	"errors"
	"fmt"

	"personalysis/internal/model"
	"personalysis/internal/repository"
)

var ErrNotSurveyOwner = errors.New("survey does not belong to this company")

// SurveyService handles survey CRUD for company dashboards
type SurveyService struct {
	surveyRepo repository.SurveyRepo
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo) *SurveyService {
	return &SurveyService{surveyRepo: surveyRepo}
}

// Create stores a new survey, assigning question keys when absent
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	for i := range survey.Questions {
		if survey.Questions[i].Key == "" {
			survey.Questions[i].Key = fmt.Sprintf("Q%d", i+1)
		}
	}
	return s.surveyRepo.Create(ctx, survey)
}

// GetByID fetches one survey
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	return s.surveyRepo.GetByID(ctx, id)
}

// GetByCompanyID lists a company's surveys
func (s *SurveyService) GetByCompanyID(ctx context.Context, companyID string) ([]*model.Survey, error) {
	return s.surveyRepo.GetByCompanyID(ctx, companyID)
}

// Update replaces a survey after verifying ownership
func (s *SurveyService) Update(ctx context.Context, companyID string, survey *model.Survey) error {
	existing, err := s.surveyRepo.GetByID(ctx, survey.ID)
	if err != nil {
		return err
	}
	if existing == nil || existing.CompanyID != companyID {
		return ErrNotSurveyOwner
	}
	survey.CompanyID = companyID
	return s.surveyRepo.Update(ctx, survey)
}

// Delete removes a survey after verifying ownership
func (s *SurveyService) Delete(ctx context.Context, companyID, surveyID string) error {
	existing, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return err
	}
	if existing == nil || existing.CompanyID != companyID {
		return ErrNotSurveyOwner
	}
	return s.surveyRepo.Delete(ctx, surveyID)
}

package service

import (
	"context"
	"time"

	"personalysis/internal/logger"
	"personalysis/internal/model"
	"personalysis/internal/repository"
	"personalysis/internal/stats"
)

// StatsService is the public boundary of the aggregation engine. Both entry
// points are fail-closed: an empty scope, a data-source failure, or an
// internal aggregation failure all yield the canonical zero-value report.
// Dashboards never see an error shape from this service.
type StatsService struct {
	responseRepo repository.ResponseRepo
	surveyRepo   repository.SurveyRepo
	log          *logger.Logger
	now          func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(responseRepo repository.ResponseRepo, surveyRepo repository.SurveyRepo, log *logger.Logger) *StatsService {
	return &StatsService{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
		log:          log.WithComponent("stats"),
		now:          time.Now,
	}
}

// GetCompanyStats computes the report over every response belonging to the
// company, across all of its surveys.
func (s *StatsService) GetCompanyStats(ctx context.Context, companyID string) *model.StatsReport {
	responses, err := s.responseRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		s.log.WithError(err).WithField("companyId", companyID).Error("company stats: response fetch failed")
		return stats.EmptyReport()
	}
	surveys, err := s.surveyRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		s.log.WithError(err).WithField("companyId", companyID).Error("company stats: survey fetch failed")
		return stats.EmptyReport()
	}
	return stats.Compute(responses, surveys, s.now(), stats.ScopeCompany)
}

// GetSurveyAnalytics computes the report over one survey's responses
func (s *StatsService) GetSurveyAnalytics(ctx context.Context, surveyID string) *model.StatsReport {
	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		s.log.WithError(err).WithField("surveyId", surveyID).Error("survey analytics: response fetch failed")
		return stats.EmptyReport()
	}
	var surveys []*model.Survey
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		s.log.WithError(err).WithField("surveyId", surveyID).Warn("survey analytics: survey fetch failed, industry fallback unavailable")
	} else if survey != nil {
		surveys = append(surveys, survey)
	}
	return stats.Compute(responses, surveys, s.now(), stats.ScopeSurvey)
}

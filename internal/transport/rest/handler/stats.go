package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"personalysis/internal/model"
	"personalysis/internal/service"
	"personalysis/internal/transport/rest/middleware"
)

// StatsHandler handles stats and response endpoints
type StatsHandler struct {
	statsSvc    *service.StatsService
	responseSvc *service.ResponseService
	insights    service.InsightGenerator
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsSvc *service.StatsService, responseSvc *service.ResponseService, insights service.InsightGenerator) *StatsHandler {
	return &StatsHandler{
		statsSvc:    statsSvc,
		responseSvc: responseSvc,
		insights:    insights,
	}
}

// CompanyStats handles GET /v1/companies/{companyId}/stats. The report is
// always a complete shape; there is no error path from the engine.
func (h *StatsHandler) CompanyStats(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["companyId"]
	if middleware.GetCompanyID(r.Context()) != companyID {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	report := h.statsSvc.GetCompanyStats(r.Context(), companyID)
	writeJSON(w, http.StatusOK, report)
}

// SurveyAnalytics handles GET /v1/surveys/{surveyId}/analytics
func (h *StatsHandler) SurveyAnalytics(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	report := h.statsSvc.GetSurveyAnalytics(r.Context(), surveyID)
	writeJSON(w, http.StatusOK, report)
}

// CompanyInsights handles POST /v1/companies/{companyId}/insights, asking
// the external text service to narrate the current report.
func (h *StatsHandler) CompanyInsights(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["companyId"]
	if middleware.GetCompanyID(r.Context()) != companyID {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	report := h.statsSvc.GetCompanyStats(r.Context(), companyID)
	result, err := h.insights.GenerateInsights(r.Context(), report)
	if err != nil {
		if errors.Is(err, service.ErrInsightsDisabled) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SubmitResponse handles POST /v1/surveys/{surveyId}/responses. Public:
// respondents are not authenticated.
func (h *StatsHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var response model.SurveyResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	response.SurveyID = surveyID
	response.UserAgent = r.UserAgent()
	response.IPAddress = r.RemoteAddr

	id, err := h.responseSvc.Submit(r.Context(), &response)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"responseId": id})
}

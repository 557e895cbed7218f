package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"personalysis/internal/service"
	"personalysis/internal/transport/rest/middleware"
)

// ExportHandler handles response export endpoints
type ExportHandler struct {
	exportSvc *service.ExportService
	surveySvc *service.SurveyService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportSvc *service.ExportService, surveySvc *service.SurveyService) *ExportHandler {
	return &ExportHandler{
		exportSvc: exportSvc,
		surveySvc: surveySvc,
	}
}

// Export handles GET /v1/surveys/{surveyId}/export?format=csv|xlsx&anonymize=true
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	if survey.CompanyID != companyID {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	format := service.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = service.FormatCSV
	}
	anonymize := r.URL.Query().Get("anonymize") == "true"

	data, contentType, err := h.exportSvc.Export(r.Context(), surveyID, format, anonymize)
	if err != nil {
		if errors.Is(err, service.ErrSurveyNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename := fmt.Sprintf("survey-%s-responses.%s", surveyID, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

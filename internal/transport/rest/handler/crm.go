package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"personalysis/internal/model"
	"personalysis/internal/service"
	"personalysis/internal/transport/rest/middleware"
)

// CRMHandler handles demo-request, notification, and newsletter endpoints
type CRMHandler struct {
	demoSvc         *service.DemoService
	notificationSvc *service.NotificationService
	newsletterSvc   *service.NewsletterService
}

// NewCRMHandler creates a new CRM handler
func NewCRMHandler(demoSvc *service.DemoService, notificationSvc *service.NotificationService, newsletterSvc *service.NewsletterService) *CRMHandler {
	return &CRMHandler{
		demoSvc:         demoSvc,
		notificationSvc: notificationSvc,
		newsletterSvc:   newsletterSvc,
	}
}

// SubmitDemoRequest handles POST /v1/demo-requests (public)
func (h *CRMHandler) SubmitDemoRequest(w http.ResponseWriter, r *http.Request) {
	var req model.DemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.demoSvc.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"requestId": id})
}

// ListDemoRequests handles GET /v1/demo-requests
func (h *CRMHandler) ListDemoRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.demoSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"demoRequests": requests})
}

// UpdateDemoRequestStatus handles PUT /v1/demo-requests/{requestId}/status
func (h *CRMHandler) UpdateDemoRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var body struct {
		Status model.DemoRequestStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.demoSvc.UpdateStatus(r.Context(), requestID, body.Status); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(body.Status)})
}

// ListNotifications handles GET /v1/notifications
func (h *CRMHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := int64(50)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.notificationSvc.List(r.Context(), companyID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unreadCount":   h.notificationSvc.UnreadCount(r.Context(), companyID),
	})
}

// MarkNotificationsRead handles POST /v1/notifications/read
func (h *CRMHandler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.notificationSvc.MarkAllRead(r.Context(), companyID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SubscribeNewsletter handles POST /v1/newsletter/subscribe (public)
func (h *CRMHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.newsletterSvc.Subscribe(r.Context(), body.Email); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

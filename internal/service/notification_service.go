package service

import (
	"context"

	"personalysis/internal/cache"
	"personalysis/internal/logger"
	"personalysis/internal/model"
	"personalysis/internal/repository"
)

// NotificationService manages the company notification center. Mongo is the
// source of truth; Redis carries the unread counter and a short recent feed.
type NotificationService struct {
	repo  repository.NotificationRepo
	cache cache.NotificationCache
	log   *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepo, c cache.NotificationCache, log *logger.Logger) *NotificationService {
	return &NotificationService{
		repo:  repo,
		cache: c,
		log:   log.WithComponent("notifications"),
	}
}

// Notify records a notification. Failures are logged, never propagated:
// notifications are advisory and must not break the operation that
// triggered them.
func (s *NotificationService) Notify(ctx context.Context, companyID, kind, title, body string) {
	n := &model.Notification{
		CompanyID: companyID,
		Type:      kind,
		Title:     title,
		Body:      body,
	}
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		s.log.WithError(err).WithField("companyId", companyID).Warn("notification write failed")
		return
	}
	n.ID = id
	if err := s.cache.PushRecent(ctx, companyID, n); err != nil {
		s.log.WithError(err).Warn("notification feed push failed")
	}
	if err := s.cache.IncrementUnread(ctx, companyID); err != nil {
		s.log.WithError(err).Warn("unread counter increment failed")
	}
}

// List returns the most recent notifications, preferring the cache feed
func (s *NotificationService) List(ctx context.Context, companyID string, limit int64) ([]*model.Notification, error) {
	if recent, err := s.cache.GetRecent(ctx, companyID); err == nil && len(recent) > 0 {
		out := make([]*model.Notification, 0, len(recent))
		for i := range recent {
			out = append(out, &recent[i])
		}
		return out, nil
	}
	return s.repo.GetByCompanyID(ctx, companyID, limit)
}

// UnreadCount returns the cached unread counter
func (s *NotificationService) UnreadCount(ctx context.Context, companyID string) int64 {
	count, err := s.cache.GetUnreadCount(ctx, companyID)
	if err != nil {
		s.log.WithError(err).Warn("unread counter read failed")
		return 0
	}
	return count
}

// MarkAllRead clears both the store flags and the cached counter
func (s *NotificationService) MarkAllRead(ctx context.Context, companyID string) error {
	if err := s.repo.MarkAllRead(ctx, companyID); err != nil {
		return err
	}
	return s.cache.ResetUnread(ctx, companyID)
}

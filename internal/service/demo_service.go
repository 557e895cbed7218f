package service

import (
	"context"
	"errors"
	"strings"

	"personalysis/internal/model"
	"personalysis/internal/repository"
)

var ErrInvalidEmail = errors.New("a valid email address is required")

// DemoService handles demo-request leads from the marketing site
type DemoService struct {
	repo repository.DemoRequestRepo
}

// NewDemoService creates a new demo service
func NewDemoService(repo repository.DemoRequestRepo) *DemoService {
	return &DemoService{repo: repo}
}

// Submit stores an inbound lead
func (s *DemoService) Submit(ctx context.Context, req *model.DemoRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if !strings.Contains(req.Email, "@") {
		return "", ErrInvalidEmail
	}
	return s.repo.Create(ctx, req)
}

// List returns all leads, newest first
func (s *DemoService) List(ctx context.Context) ([]*model.DemoRequest, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves a lead through the pipeline
func (s *DemoService) UpdateStatus(ctx context.Context, id string, status model.DemoRequestStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// NewsletterService handles newsletter signups
type NewsletterService struct {
	repo repository.NewsletterRepo
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(repo repository.NewsletterRepo) *NewsletterService {
	return &NewsletterService{repo: repo}
}

// Subscribe records a signup, idempotent per email
func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return s.repo.Subscribe(ctx, &model.NewsletterSubscriber{Email: email})
}

package model

import "time"

// DemoRequestStatus tracks where a demo request sits in the pipeline
type DemoRequestStatus string

const (
	DemoRequestNew       DemoRequestStatus = "new"
	DemoRequestContacted DemoRequestStatus = "contacted"
	DemoRequestScheduled DemoRequestStatus = "scheduled"
	DemoRequestClosed    DemoRequestStatus = "closed"
)

// DemoRequest is an inbound sales lead from the marketing site
type DemoRequest struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	Name        string            `json:"name" bson:"name"`
	Email       string            `json:"email" bson:"email"`
	CompanyName string            `json:"companyName" bson:"companyName"`
	Message     string            `json:"message,omitempty" bson:"message,omitempty"`
	Status      DemoRequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// Notification is one entry in a company's notification center
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	CompanyID string    `json:"companyId" bson:"companyId"`
	Type      string    `json:"type" bson:"type"` // "response", "demo", "system"
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body,omitempty" bson:"body,omitempty"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// NewsletterSubscriber is one newsletter signup, deduplicated by email
type NewsletterSubscriber struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribedAt" bson:"subscribedAt"`
}

package model

import "time"

// SurveyQuestion is a question template inside a survey
type SurveyQuestion struct {
	Key      string   `json:"key" bson:"key"` // e.g., "Q1", "Q2"
	Type     string   `json:"type" bson:"type"`
	Prompt   string   `json:"prompt" bson:"prompt"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`
	Required bool     `json:"required" bson:"required"`
}

// Survey is a persistent survey template owned by a company. Industry is used
// as a fallback business-context signal when responses carry none.
type Survey struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	CompanyID   string           `json:"companyId" bson:"companyId"`
	Title       string           `json:"title" bson:"title"`
	Description string           `json:"description,omitempty" bson:"description,omitempty"`
	Industry    string           `json:"industry,omitempty" bson:"industry,omitempty"`
	Questions   []SurveyQuestion `json:"questions" bson:"questions"`
	Active      bool             `json:"active" bson:"active"`
	CreatedAt   time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// Company is a tenant account
type Company struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Industry     string    `json:"industry,omitempty" bson:"industry,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

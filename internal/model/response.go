package model

import "time"

// SurveyResponse is one submitted response. The wizard has shipped several
// payload shapes over time, so the semi-structured fields are kept loosely
// typed; the stats normalizer coerces them at read time.
type SurveyResponse struct {
	ID                     string      `json:"id" bson:"_id,omitempty"`
	SurveyID               string      `json:"surveyId" bson:"surveyId"`
	CompanyID              string      `json:"companyId" bson:"companyId"`
	RespondentID           string      `json:"respondentId,omitempty" bson:"respondentId,omitempty"`
	RespondentEmail        string      `json:"respondentEmail,omitempty" bson:"respondentEmail,omitempty"`
	Responses              interface{} `json:"responses,omitempty" bson:"responses,omitempty"`
	Traits                 interface{} `json:"traits,omitempty" bson:"traits,omitempty"`
	Demographics           interface{} `json:"demographics,omitempty" bson:"demographics,omitempty"`
	GenderStereotypes      interface{} `json:"genderStereotypes,omitempty" bson:"genderStereotypes,omitempty"`
	ProductRecommendations interface{} `json:"productRecommendations,omitempty" bson:"productRecommendations,omitempty"`
	MarketSegment          interface{} `json:"marketSegment,omitempty" bson:"marketSegment,omitempty"`
	Completed              bool        `json:"completed" bson:"completed"`
	SatisfactionScore      int         `json:"satisfactionScore,omitempty" bson:"satisfactionScore,omitempty"`
	CompletionTimeSeconds  *int        `json:"completionTimeSeconds,omitempty" bson:"completionTimeSeconds,omitempty"`
	UserAgent              string      `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	IPAddress              string      `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	CreatedAt              time.Time   `json:"createdAt" bson:"createdAt"`
}

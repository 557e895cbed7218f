package export

import (
	"crypto/md5"
	"fmt"

	"personalysis/internal/model"
	"personalysis/internal/stats"
)

const (
	maxAnswerLength = 100
	redactedSuffix  = "... [redacted for privacy]"
	pseudonymDomain = "anonymized.local"
	pseudonymKeyLen = 16
)

// locationFields are stripped from demographics entirely; the coarse
// location label itself is kept for distribution reporting.
var locationFields = []string{"city", "postalCode", "address"}

// sensitiveFields are demographic keys nulled under privacy mode
var sensitiveFields = []string{
	"income",
	"education",
	"ethnicity",
	"religion",
	"politicalAffiliation",
	"healthStatus",
}

// PseudonymizeEmail deterministically maps an email to a stable pseudonymous
// address, so repeat respondents stay linkable across exports without
// exposing the real address.
func PseudonymizeEmail(email string) string {
	if email == "" {
		return ""
	}
	sum := md5.Sum([]byte(email))
	return fmt.Sprintf("%x", sum)[:pseudonymKeyLen] + "@" + pseudonymDomain
}

// AnonymizeResponse returns a privacy-safe copy of a response: pseudonymous
// email, no IP, age generalized into the reporting buckets, location and
// sensitive demographic detail removed, and long free-text answers
// truncated. The original is not modified.
func AnonymizeResponse(r *model.SurveyResponse) *model.SurveyResponse {
	if r == nil {
		return nil
	}
	out := *r
	out.RespondentEmail = PseudonymizeEmail(r.RespondentEmail)
	out.IPAddress = ""
	out.Demographics = anonymizeDemographics(r.Demographics)
	out.Responses = anonymizeAnswers(r.Responses)
	return &out
}

// AnonymizeResponses maps AnonymizeResponse over a row set
func AnonymizeResponses(responses []*model.SurveyResponse) []*model.SurveyResponse {
	out := make([]*model.SurveyResponse, len(responses))
	for i, r := range responses {
		out[i] = AnonymizeResponse(r)
	}
	return out
}

func anonymizeDemographics(v interface{}) interface{} {
	m, ok := stats.DecodeMap(v)
	if !ok {
		return v
	}
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		out[key] = value
	}
	if raw, present := out["age"]; present {
		if age, ok := stats.DecodeNumber(raw); ok {
			out["age"] = stats.AgeBucket(int(age))
		} else {
			out["age"] = nil
		}
	}
	for _, key := range locationFields {
		delete(out, key)
	}
	for _, key := range sensitiveFields {
		if _, present := out[key]; present {
			out[key] = nil
		}
	}
	return out
}

func anonymizeAnswers(v interface{}) interface{} {
	m, ok := stats.DecodeMap(v)
	if !ok {
		return v
	}
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		if s, isString := value.(string); isString && len(s) > maxAnswerLength {
			out[key] = s[:maxAnswerLength] + redactedSuffix
			continue
		}
		out[key] = value
	}
	return out
}

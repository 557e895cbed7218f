package export

import (
	"strings"
	"testing"

	"personalysis/internal/model"
)

func TestPseudonymizeEmailDeterministic(t *testing.T) {
	a := PseudonymizeEmail("jane@example.com")
	b := PseudonymizeEmail("jane@example.com")
	if a != b {
		t.Errorf("pseudonym not stable: %q vs %q", a, b)
	}
	if !strings.HasSuffix(a, "@anonymized.local") {
		t.Errorf("pseudonym domain: %q", a)
	}
	if local := strings.TrimSuffix(a, "@anonymized.local"); len(local) != 16 {
		t.Errorf("pseudonym key length: got %d, want 16", len(local))
	}
	if a == PseudonymizeEmail("john@example.com") {
		t.Error("different emails should map to different pseudonyms")
	}
	if PseudonymizeEmail("") != "" {
		t.Error("empty email should stay empty")
	}
}

func TestAnonymizeResponseStripsIdentifiers(t *testing.T) {
	r := &model.SurveyResponse{
		ID:              "a",
		RespondentEmail: "jane@example.com",
		IPAddress:       "203.0.113.7",
		Demographics: map[string]interface{}{
			"age":        29.0,
			"gender":     "Female",
			"city":       "Berlin",
			"postalCode": "10115",
			"address":    "Invalidenstr. 1",
			"income":     "50-75k",
			"education":  "Masters",
		},
	}
	out := AnonymizeResponse(r)

	if out.RespondentEmail == "jane@example.com" || out.RespondentEmail == "" {
		t.Errorf("email not pseudonymized: %q", out.RespondentEmail)
	}
	if out.IPAddress != "" {
		t.Errorf("ip not cleared: %q", out.IPAddress)
	}

	demo, ok := out.Demographics.(map[string]interface{})
	if !ok {
		t.Fatalf("demographics type: %T", out.Demographics)
	}
	if demo["age"] != "25-34" {
		t.Errorf("age not generalized: %v", demo["age"])
	}
	for _, key := range []string{"city", "postalCode", "address"} {
		if _, present := demo[key]; present {
			t.Errorf("location field %q not removed", key)
		}
	}
	for _, key := range []string{"income", "education"} {
		if v, present := demo[key]; !present || v != nil {
			t.Errorf("sensitive field %q: got %v, want present and nil", key, v)
		}
	}
	if demo["gender"] != "Female" {
		t.Errorf("gender should survive: %v", demo["gender"])
	}
}

func TestAnonymizeResponseUnparseableAge(t *testing.T) {
	r := &model.SurveyResponse{
		Demographics: map[string]interface{}{"age": "unknown"},
	}
	out := AnonymizeResponse(r)
	demo := out.Demographics.(map[string]interface{})
	if v, present := demo["age"]; !present || v != nil {
		t.Errorf("unparseable age: got %v, want present and nil", v)
	}
}

func TestAnonymizeResponseTruncatesLongAnswers(t *testing.T) {
	long := strings.Repeat("x", 150)
	short := strings.Repeat("y", 100)
	r := &model.SurveyResponse{
		Responses: map[string]interface{}{
			"Q1": long,
			"Q2": short,
			"Q3": 7.0,
		},
	}
	out := AnonymizeResponse(r)
	answers := out.Responses.(map[string]interface{})

	got, ok := answers["Q1"].(string)
	if !ok {
		t.Fatalf("Q1 type: %T", answers["Q1"])
	}
	if !strings.HasSuffix(got, "... [redacted for privacy]") {
		t.Errorf("long answer missing redaction suffix: %q", got)
	}
	if !strings.HasPrefix(got, strings.Repeat("x", 100)) || strings.HasPrefix(got, strings.Repeat("x", 101)) {
		t.Errorf("long answer not truncated at 100 chars: %q", got)
	}
	// exactly at the limit is left alone
	if answers["Q2"] != short {
		t.Errorf("100-char answer modified: %v", answers["Q2"])
	}
	if answers["Q3"] != 7.0 {
		t.Errorf("non-string answer modified: %v", answers["Q3"])
	}
}

func TestAnonymizeResponseLeavesOriginalUntouched(t *testing.T) {
	demo := map[string]interface{}{"age": 29.0, "city": "Berlin"}
	r := &model.SurveyResponse{
		RespondentEmail: "jane@example.com",
		IPAddress:       "203.0.113.7",
		Demographics:    demo,
	}
	_ = AnonymizeResponse(r)

	if r.RespondentEmail != "jane@example.com" || r.IPAddress != "203.0.113.7" {
		t.Errorf("original identifiers modified: %+v", r)
	}
	if demo["age"] != 29.0 || demo["city"] != "Berlin" {
		t.Errorf("original demographics modified: %v", demo)
	}
}

func TestAnonymizeResponses(t *testing.T) {
	out := AnonymizeResponses([]*model.SurveyResponse{
		{RespondentEmail: "a@example.com"},
		nil,
	})
	if len(out) != 2 {
		t.Fatalf("length: got %d, want 2", len(out))
	}
	if out[0].RespondentEmail == "a@example.com" {
		t.Error("email not pseudonymized")
	}
	if out[1] != nil {
		t.Error("nil row should stay nil")
	}
}

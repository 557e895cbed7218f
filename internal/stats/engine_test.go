package stats

import (
	"reflect"
	"testing"
	"time"

	"personalysis/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func fullResponse(id string) *model.SurveyResponse {
	seconds := 120
	return &model.SurveyResponse{
		ID:           id,
		SurveyID:     "s1",
		RespondentID: "u-" + id,
		Traits: []interface{}{
			map[string]interface{}{"name": "Analytical", "score": 80.0, "category": "thinking"},
		},
		Demographics: map[string]interface{}{
			"age":      30.0,
			"gender":   "Female",
			"location": "Berlin",
			"industry": "Technology",
			"role":     "Manager",
		},
		MarketSegment:         "Enterprise",
		Completed:             true,
		SatisfactionScore:     4,
		CompletionTimeSeconds: &seconds,
		UserAgent:             "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)",
		CreatedAt:             fixedNow().Add(-2 * time.Hour),
	}
}

func TestComputeEmptyInput(t *testing.T) {
	surveys := []*model.Survey{{ID: "s1"}, {ID: "s2"}}
	report := Compute(nil, surveys, fixedNow(), ScopeCompany)

	if report.ResponseCount != 0 || report.CompletedResponses != 0 || report.CompletionRate != 0 {
		t.Errorf("counts should be zero: %+v", report)
	}
	if report.SurveyCount != 2 {
		t.Errorf("surveyCount: got %d, want 2", report.SurveyCount)
	}
	if report.TopTraits == nil || len(report.TopTraits) != 0 {
		t.Errorf("topTraits should be an empty slice: %v", report.TopTraits)
	}
	if report.MarketSegments == nil || len(report.MarketSegments) != 0 {
		t.Errorf("marketSegments should be an empty slice: %v", report.MarketSegments)
	}
	if report.Demographics.AgeDistribution == nil {
		t.Error("ageDistribution should be an empty slice, not nil")
	}
	if report.GenderStereotypes != nil {
		t.Errorf("genderStereotypes should be nil: %+v", report.GenderStereotypes)
	}
	if report.ProductRecommendations != nil {
		t.Errorf("productRecommendations should be nil: %+v", report.ProductRecommendations)
	}
	if report.MonthOverMonthGrowth.Respondents != 0 {
		t.Errorf("growth should be zero: %+v", report.MonthOverMonthGrowth)
	}
}

func TestComputeSingleResponse(t *testing.T) {
	responses := []*model.SurveyResponse{fullResponse("a")}
	surveys := []*model.Survey{{ID: "s1", CompanyID: "c1"}}
	report := Compute(responses, surveys, fixedNow(), ScopeSurvey)

	if report.ResponseCount != 1 || report.CompletedResponses != 1 {
		t.Fatalf("counts: %+v", report)
	}
	if report.CompletionRate != 100 {
		t.Errorf("completionRate: got %d, want 100", report.CompletionRate)
	}
	if report.AverageSatisfactionScore != 4 {
		t.Errorf("averageSatisfactionScore: got %v, want 4", report.AverageSatisfactionScore)
	}
	if report.AverageCompletionTime != 120 {
		t.Errorf("averageCompletionTime: got %d, want 120", report.AverageCompletionTime)
	}
	if len(report.TopTraits) != 1 || report.TopTraits[0].Name != "Analytical" || report.TopTraits[0].Score != 80 {
		t.Errorf("topTraits: %+v", report.TopTraits)
	}
	wantAges := []model.RangeShare{{Range: "25-34", Percentage: 100}}
	if !reflect.DeepEqual(report.Demographics.AgeDistribution, wantAges) {
		t.Errorf("ageDistribution: got %+v, want %+v", report.Demographics.AgeDistribution, wantAges)
	}
	if len(report.MarketSegments) != 1 || report.MarketSegments[0].Segment != "Enterprise" || report.MarketSegments[0].Percentage != 100 {
		t.Errorf("marketSegments: %+v", report.MarketSegments)
	}
	if report.EngagementMetrics.ConversionRate != 100 {
		t.Errorf("conversionRate: got %d, want 100", report.EngagementMetrics.ConversionRate)
	}
	if len(report.BusinessContext.Industries) != 1 || report.BusinessContext.Industries[0].Name != "Technology" {
		t.Errorf("industries: %+v", report.BusinessContext.Industries)
	}
}

// Identical inputs must produce identical reports.
func TestComputeDeterministic(t *testing.T) {
	responses := []*model.SurveyResponse{fullResponse("a"), fullResponse("b"), fullResponse("c")}
	surveys := []*model.Survey{{ID: "s1"}}
	now := fixedNow()

	first := Compute(responses, surveys, now, ScopeCompany)
	second := Compute(responses, surveys, now, ScopeCompany)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ across runs:\n%+v\n%+v", first, second)
	}
}

// A poisoned row set must yield the zero-value report, never a panic.
func TestComputeRecoversToEmptyReport(t *testing.T) {
	responses := []*model.SurveyResponse{fullResponse("a"), nil}
	report := Compute(responses, nil, fixedNow(), ScopeCompany)
	if !reflect.DeepEqual(report, EmptyReport()) {
		t.Errorf("expected the zero-value report, got %+v", report)
	}
}

func TestComputeCompanyScopeIndustryDenominator(t *testing.T) {
	responses := make([]*model.SurveyResponse, 4)
	for i, id := range []string{"a", "b", "c", "d"} {
		responses[i] = fullResponse(id)
	}
	surveys := []*model.Survey{{ID: "s1"}, {ID: "s2"}}

	company := Compute(responses, surveys, fixedNow(), ScopeCompany)
	if len(company.BusinessContext.Industries) != 1 {
		t.Fatalf("industries: %+v", company.BusinessContext.Industries)
	}
	item := company.BusinessContext.Industries[0]
	if item.Count != 4 {
		t.Errorf("industry count: got %d, want 4", item.Count)
	}
	// 4 mentions over 2 surveys would read as 200%; capped at 100
	if item.Percentage != 100 {
		t.Errorf("industry percentage: got %d, want 100 (capped)", item.Percentage)
	}

	// At survey scope the denominator is the response count
	survey := Compute(responses, surveys, fixedNow(), ScopeSurvey)
	if got := survey.BusinessContext.Industries[0].Percentage; got != 100 {
		t.Errorf("survey-scope industry percentage: got %d, want 100", got)
	}
	if got := survey.BusinessContext.Roles[0].Percentage; got != 100 {
		t.Errorf("roles percentage: got %d, want 100", got)
	}
}

func TestComputeTopTraitsCapped(t *testing.T) {
	var traits []interface{}
	for _, name := range []string{
		"Analytical", "Bold", "Curious", "Driven", "Empathic", "Focused",
		"Grounded", "Honest", "Inventive", "Judicious", "Keen", "Loyal",
	} {
		traits = append(traits, map[string]interface{}{"name": name, "score": 70.0})
	}
	responses := []*model.SurveyResponse{{
		ID:        "a",
		Traits:    traits,
		CreatedAt: fixedNow().Add(-time.Hour),
	}}
	report := Compute(responses, nil, fixedNow(), ScopeSurvey)
	if len(report.TopTraits) != 10 {
		t.Errorf("topTraits length: got %d, want 10", len(report.TopTraits))
	}
}

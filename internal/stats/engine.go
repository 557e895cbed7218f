package stats

import (
	"math"
	"time"

	"personalysis/internal/model"
)

// Scope selects the denominator source for the industry and company-size
// business-context fields; everything else aggregates identically.
type Scope int

const (
	ScopeCompany Scope = iota
	ScopeSurvey
)

// Compute reduces a response row set into one StatsReport. It is a pure
// function of its arguments: now is injected once and threaded into every
// time-windowed calculation, so identical inputs produce identical reports.
// Any internal panic is converted to the zero-value report; dashboards never
// see a failure from this path.
func Compute(responses []*model.SurveyResponse, surveys []*model.Survey, now time.Time, scope Scope) (report *model.StatsReport) {
	defer func() {
		if r := recover(); r != nil {
			report = EmptyReport()
		}
	}()

	if len(responses) == 0 {
		report = EmptyReport()
		report.SurveyCount = len(surveys)
		return report
	}

	normalized := make([]NormalizedResponse, len(responses))
	for i, r := range responses {
		normalized[i] = Normalize(r)
	}

	total := len(responses)
	growth := CalculateGrowth(responses, now)

	report = EmptyReport()
	report.SurveyCount = len(surveys)
	report.ResponseCount = total

	var satSum float64
	var satCount int
	var completionSum, completionCount int
	for _, r := range responses {
		if r.Completed {
			report.CompletedResponses++
		}
		if r.SatisfactionScore > 0 {
			satSum += float64(r.SatisfactionScore)
			satCount++
		}
		if r.CompletionTimeSeconds != nil {
			completionSum += *r.CompletionTimeSeconds
			completionCount++
		}
	}
	report.CompletionRate = percentOf(report.CompletedResponses, total)
	if satCount > 0 {
		report.AverageSatisfactionScore = round1(satSum / float64(satCount))
	}
	if completionCount > 0 {
		report.AverageCompletionTime = int(math.Round(float64(completionSum) / float64(completionCount)))
	}

	report.MonthOverMonthGrowth = growth
	report.TopTraits = AggregateTraits(normalized)
	report.Demographics = AggregateDemographics(normalized, total)
	report.MarketSegments = AggregateSegments(normalized, total)
	report.GenderStereotypes = AggregateStereotypes(normalized)
	report.ProductRecommendations = AggregateProducts(normalized)
	report.EngagementMetrics = CalculateEngagement(responses, now, growth.Respondents)
	report.BusinessContext = AggregateBusinessContext(normalized, surveys, total, scope)
	return report
}

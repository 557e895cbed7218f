package stats

import "personalysis/internal/model"

// EmptyReport returns the canonical zero-value report: every slice present
// and empty, both nullable signal blocks nil, all counters zero. This is the
// shape returned for empty scopes and on aggregation failure.
func EmptyReport() *model.StatsReport {
	return &model.StatsReport{
		TopTraits: []model.TraitScore{},
		Demographics: model.DemographicBreakdown{
			GenderDistribution:   []model.LabelValue{},
			AgeDistribution:      []model.RangeShare{},
			LocationDistribution: []model.LabelValue{},
		},
		MarketSegments: []model.SegmentShare{},
		EngagementMetrics: model.EngagementMetrics{
			DeviceUsage:    []model.LabelValue{},
			PeakUsageTimes: []model.LabelValue{},
		},
		BusinessContext: model.BusinessContext{
			Industries:          []model.ContextItem{},
			CompanySizes:        []model.ContextItem{},
			Departments:         []model.ContextItem{},
			Roles:               []model.ContextItem{},
			DecisionStyles:      []model.ContextItem{},
			DecisionTimeframes:  []model.ContextItem{},
			GrowthStages:        []model.ContextItem{},
			LearningPreferences: []model.ContextItem{},
			Skills:              []model.ContextItem{},
			Challenges:          []model.ContextItem{},
		},
	}
}

package model

// StatsReport is the derived statistical summary for one company or one
// survey. Every field is always populated: absent data yields an explicit
// empty slice, zero, or nil for the two nullable signal blocks. Dashboards
// render it without further null checks.
type StatsReport struct {
	SurveyCount              int     `json:"surveyCount"`
	ResponseCount            int     `json:"responseCount"`
	CompletedResponses       int     `json:"completedResponses"`
	CompletionRate           int     `json:"completionRate"`           // percent
	AverageSatisfactionScore float64 `json:"averageSatisfactionScore"` // one decimal
	AverageCompletionTime    int     `json:"averageCompletionTime"`    // seconds

	MonthOverMonthGrowth GrowthMetrics `json:"monthOverMonthGrowth"`

	TopTraits    []TraitScore         `json:"topTraits"` // max 10
	Demographics DemographicBreakdown `json:"demographics"`

	MarketSegments         []SegmentShare          `json:"marketSegments"`
	GenderStereotypes      *GenderStereotypes      `json:"genderStereotypes"`      // nil when no signal
	ProductRecommendations *ProductRecommendations `json:"productRecommendations"` // nil when no signal

	EngagementMetrics EngagementMetrics `json:"engagementMetrics"`
	BusinessContext   BusinessContext   `json:"businessContext"`
}

// GrowthMetrics holds month-over-month percentage deltas, one decimal place
type GrowthMetrics struct {
	Respondents  float64 `json:"respondents"`
	Completion   float64 `json:"completion"`
	Satisfaction float64 `json:"satisfaction"`
}

// TraitScore is one ranked personality trait with its averaged score
type TraitScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Category string `json:"category"`
}

// LabelValue is a generic distribution entry (value is a percentage)
type LabelValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// RangeShare is an age-bucket distribution entry
type RangeShare struct {
	Range      string `json:"range"`
	Percentage int    `json:"percentage"`
}

// DemographicBreakdown groups the demographic distributions
type DemographicBreakdown struct {
	GenderDistribution   []LabelValue `json:"genderDistribution"`
	AgeDistribution      []RangeShare `json:"ageDistribution"`
	LocationDistribution []LabelValue `json:"locationDistribution"`
}

// SegmentShare is one market segment's share of responses
type SegmentShare struct {
	Segment    string `json:"segment"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// StereotypeTrait is one trait/score association within a stereotype category
type StereotypeTrait struct {
	Trait       string  `json:"trait"`
	Score       float64 `json:"score"`
	Description string  `json:"description,omitempty"`
}

// GenderStereotypes groups trait associations by category
type GenderStereotypes struct {
	MaleAssociated    []StereotypeTrait `json:"maleAssociated"`
	FemaleAssociated  []StereotypeTrait `json:"femaleAssociated"`
	NeutralAssociated []StereotypeTrait `json:"neutralAssociated"`
}

// Product is one recommended product with its model confidence
type Product struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description,omitempty"`
	Attributes  []string `json:"attributes,omitempty"`
}

// ProductRecommendations aggregates category counts and top products
type ProductRecommendations struct {
	Categories  map[string]int `json:"categories"`
	TopProducts []Product      `json:"topProducts"` // max 10, by confidence
}

// EngagementMetrics holds usage-derived metrics, percentages of the total
// response set unless noted
type EngagementMetrics struct {
	DailyActiveUsers       int          `json:"dailyActiveUsers"`
	MonthlyActiveUsers     int          `json:"monthlyActiveUsers"`     // distinct respondents, 30 days
	AverageSessionDuration int          `json:"averageSessionDuration"` // minutes
	RetentionRate          int          `json:"retentionRate"`
	DeviceUsage            []LabelValue `json:"deviceUsage"`
	PeakUsageTimes         []LabelValue `json:"peakUsageTimes"`
	BounceRate             int          `json:"bounceRate"`
	ConversionRate         int          `json:"conversionRate"`
	GrowthRate             float64      `json:"growthRate"`
}

// ContextItem is one ranked organizational-attribute bucket
type ContextItem struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// BusinessContext holds ranked organizational-attribute breakdowns
type BusinessContext struct {
	Industries          []ContextItem `json:"industries"`
	CompanySizes        []ContextItem `json:"companySizes"`
	Departments         []ContextItem `json:"departments"`
	Roles               []ContextItem `json:"roles"`
	DecisionStyles      []ContextItem `json:"decisionStyles"`
	DecisionTimeframes  []ContextItem `json:"decisionTimeframes"`
	GrowthStages        []ContextItem `json:"growthStages"`
	LearningPreferences []ContextItem `json:"learningPreferences"`
	Skills              []ContextItem `json:"skills"`     // max 10
	Challenges          []ContextItem `json:"challenges"` // max 10
}

package stats

import (
	"strings"

	"personalysis/internal/model"
)

const maxContextItems = 10

// AggregateBusinessContext tallies organizational attributes into ranked
// breakdowns. Industries and company sizes are special-cased: at company
// scope they are measured against the survey count, with survey industry
// labels filling in when responses carry no industry signal. Every other
// field uses the response count as denominator.
func AggregateBusinessContext(responses []NormalizedResponse, surveys []*model.Survey, total int, scope Scope) model.BusinessContext {
	industries := newCounter()
	companySizes := newCounter()
	departments := newCounter()
	roles := newCounter()
	decisionStyles := newCounter()
	decisionTimeframes := newCounter()
	growthStages := newCounter()
	learningPreferences := newCounter()
	skills := newCounter()
	challenges := newCounter()

	for _, r := range responses {
		d := r.Demographics
		if d == nil {
			continue
		}
		addIfSet(industries, d.Industry)
		addIfSet(companySizes, d.CompanySize)
		addIfSet(departments, d.Department)
		addIfSet(roles, d.Role)
		addIfSet(decisionStyles, d.DecisionStyle)
		addIfSet(decisionTimeframes, d.DecisionTimeframe)
		addIfSet(growthStages, d.GrowthStage)
		addIfSet(learningPreferences, d.LearningPreference)
		for _, s := range d.Skills {
			skills.add(s)
		}
		for _, c := range d.Challenges {
			challenges.add(c)
		}
	}

	// Survey industry is the fallback signal when responses carry none
	if industries.len() == 0 {
		for _, s := range surveys {
			addIfSet(industries, strings.TrimSpace(s.Industry))
		}
	}

	orgDenominator := total
	if scope == ScopeCompany && len(surveys) > 0 {
		orgDenominator = len(surveys)
	}

	return model.BusinessContext{
		Industries:          contextItems(industries, orgDenominator, 0),
		CompanySizes:        contextItems(companySizes, orgDenominator, 0),
		Departments:         contextItems(departments, total, 0),
		Roles:               contextItems(roles, total, 0),
		DecisionStyles:      contextItems(decisionStyles, total, 0),
		DecisionTimeframes:  contextItems(decisionTimeframes, total, 0),
		GrowthStages:        contextItems(growthStages, total, 0),
		LearningPreferences: contextItems(learningPreferences, total, 0),
		Skills:              contextItems(skills, total, maxContextItems),
		Challenges:          contextItems(challenges, total, maxContextItems),
	}
}

func addIfSet(c *counter, value string) {
	if value != "" {
		c.add(value)
	}
}

// contextItems converts a counter to ranked items. Percentages are capped at
// 100 because the survey-count denominator can undercount relative to
// response-sourced tallies. A limit of 0 means unbounded.
func contextItems(c *counter, denominator, limit int) []model.ContextItem {
	out := []model.ContextItem{}
	for _, key := range c.ranked() {
		pct := percentOf(c.counts[key], denominator)
		if pct > 100 {
			pct = 100
		}
		out = append(out, model.ContextItem{
			Name:       key,
			Count:      c.counts[key],
			Percentage: pct,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

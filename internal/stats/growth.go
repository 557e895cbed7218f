package stats

import (
	"math"
	"time"

	"personalysis/internal/model"
)

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// growthPercent computes the relative change between two window values. A
// zero previous window yields zero growth, never a division error.
func growthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// CalculateGrowth compares the trailing calendar month against the month
// before it. Windows use calendar-month arithmetic, not fixed 30-day blocks.
func CalculateGrowth(responses []*model.SurveyResponse, now time.Time) model.GrowthMetrics {
	oneMonthAgo := now.AddDate(0, -1, 0)
	twoMonthsAgo := now.AddDate(0, -2, 0)

	var thisCount, lastCount int
	var thisCompleted, lastCompleted int
	var thisSatSum, lastSatSum float64
	var thisSatCount, lastSatCount int

	for _, r := range responses {
		switch {
		case !r.CreatedAt.Before(oneMonthAgo):
			thisCount++
			if r.Completed {
				thisCompleted++
			}
			if r.SatisfactionScore > 0 {
				thisSatSum += float64(r.SatisfactionScore)
				thisSatCount++
			}
		case !r.CreatedAt.Before(twoMonthsAgo):
			lastCount++
			if r.Completed {
				lastCompleted++
			}
			if r.SatisfactionScore > 0 {
				lastSatSum += float64(r.SatisfactionScore)
				lastSatCount++
			}
		}
	}

	var thisSatMean, lastSatMean float64
	if thisSatCount > 0 {
		thisSatMean = thisSatSum / float64(thisSatCount)
	}
	if lastSatCount > 0 {
		lastSatMean = lastSatSum / float64(lastSatCount)
	}

	return model.GrowthMetrics{
		Respondents:  growthPercent(float64(thisCount), float64(lastCount)),
		Completion:   growthPercent(float64(thisCompleted), float64(lastCompleted)),
		Satisfaction: growthPercent(thisSatMean, lastSatMean),
	}
}

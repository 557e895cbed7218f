package stats

import (
	"math"
	"strings"
	"time"

	"personalysis/internal/model"
)

// bounceThresholdSeconds marks a session as a bounce
const bounceThresholdSeconds = 30

// classifyDevice maps a user-agent string to a device class. Unknown or
// empty agents count as Desktop.
func classifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "Mobile"
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "Tablet"
	default:
		return "Desktop"
	}
}

// classifyHour maps an hour-of-day to a usage bucket
func classifyHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 17:
		return "Afternoon"
	case hour >= 17 && hour < 21:
		return "Evening"
	default:
		return "Night"
	}
}

// CalculateEngagement derives usage metrics relative to the supplied now.
// The retention rate is a proxy (recent share of all-time volume), not a
// cohort calculation; its definition is part of the dashboard contract.
// growthRate is the already-computed respondent month-over-month delta.
func CalculateEngagement(responses []*model.SurveyResponse, now time.Time, growthRate float64) model.EngagementMetrics {
	m := model.EngagementMetrics{
		DeviceUsage:    []model.LabelValue{},
		PeakUsageTimes: []model.LabelValue{},
		GrowthRate:     growthRate,
	}
	total := len(responses)
	if total == 0 {
		return m
	}

	dayAgo := now.Add(-24 * time.Hour)
	monthAgo := now.AddDate(0, 0, -30)

	devices := newCounter()
	usageTimes := newCounter()
	recentRespondents := map[string]struct{}{}

	var recent, completed, bounced int
	var completionSum, completionCount int

	for _, r := range responses {
		if r.CreatedAt.After(dayAgo) {
			m.DailyActiveUsers++
		}
		if r.CreatedAt.After(monthAgo) {
			recent++
			key := r.RespondentID
			if key == "" {
				key = r.ID
			}
			recentRespondents[key] = struct{}{}
		}
		if r.Completed {
			completed++
		}
		if r.CompletionTimeSeconds != nil {
			completionSum += *r.CompletionTimeSeconds
			completionCount++
			if *r.CompletionTimeSeconds < bounceThresholdSeconds {
				bounced++
			}
		}
		devices.add(classifyDevice(r.UserAgent))
		usageTimes.add(classifyHour(r.CreatedAt.Hour()))
	}

	m.MonthlyActiveUsers = len(recentRespondents)
	if completionCount > 0 {
		avgSeconds := float64(completionSum) / float64(completionCount)
		m.AverageSessionDuration = int(math.Round(avgSeconds / 60))
	}
	m.RetentionRate = percentOf(recent, total)
	m.DeviceUsage = devices.distribution(total)
	m.PeakUsageTimes = usageTimes.distribution(total)
	m.BounceRate = percentOf(bounced, total)
	m.ConversionRate = percentOf(completed, total)
	return m
}

package stats

import (
	"testing"
	"time"

	"personalysis/internal/model"
)

func TestClassifyDevice(t *testing.T) {
	cases := []struct {
		userAgent string
		want      string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "Mobile"},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", "Mobile"},
		{"Mozilla/5.0 (X11; Linux) Mobile Safari", "Mobile"},
		{"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", "Tablet"},
		{"SomeBrowser Tablet Edition", "Tablet"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", "Desktop"},
		{"", "Desktop"},
	}
	for _, c := range cases {
		if got := classifyDevice(c.userAgent); got != c.want {
			t.Errorf("classifyDevice(%q): got %q, want %q", c.userAgent, got, c.want)
		}
	}
}

func TestClassifyHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, "Night"},
		{6, "Morning"},
		{11, "Morning"},
		{12, "Afternoon"},
		{16, "Afternoon"},
		{17, "Evening"},
		{20, "Evening"},
		{21, "Night"},
		{0, "Night"},
		{23, "Night"},
	}
	for _, c := range cases {
		if got := classifyHour(c.hour); got != c.want {
			t.Errorf("classifyHour(%d): got %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestCalculateEngagementBounce(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	responses := []*model.SurveyResponse{
		{ID: "a", CreatedAt: now.Add(-time.Hour), CompletionTimeSeconds: intPtr(15)},
		{ID: "b", CreatedAt: now.Add(-time.Hour), CompletionTimeSeconds: intPtr(45), Completed: true},
	}
	m := CalculateEngagement(responses, now, 0)
	if m.BounceRate != 50 {
		t.Errorf("bounceRate: got %d, want 50", m.BounceRate)
	}
	if m.ConversionRate != 50 {
		t.Errorf("conversionRate: got %d, want 50", m.ConversionRate)
	}
	// (15+45)/2 = 30s rounds to 1 minute
	if m.AverageSessionDuration != 1 {
		t.Errorf("averageSessionDuration: got %d, want 1", m.AverageSessionDuration)
	}
}

func TestCalculateEngagementActiveUsers(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	responses := []*model.SurveyResponse{
		{ID: "a", RespondentID: "u1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "b", RespondentID: "u1", CreatedAt: now.AddDate(0, 0, -10)},
		{ID: "c", RespondentID: "u2", CreatedAt: now.AddDate(0, 0, -10)},
		{ID: "d", RespondentID: "u3", CreatedAt: now.AddDate(0, 0, -40)},
	}
	m := CalculateEngagement(responses, now, 0)
	if m.DailyActiveUsers != 1 {
		t.Errorf("dailyActiveUsers: got %d, want 1", m.DailyActiveUsers)
	}
	// u1 appears twice in the window and counts once
	if m.MonthlyActiveUsers != 2 {
		t.Errorf("monthlyActiveUsers: got %d, want 2", m.MonthlyActiveUsers)
	}
	// 3 of 4 responses fall in the trailing 30 days
	if m.RetentionRate != 75 {
		t.Errorf("retentionRate: got %d, want 75", m.RetentionRate)
	}
}

func TestCalculateEngagementFallsBackToResponseID(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	responses := []*model.SurveyResponse{
		{ID: "a", CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "b", CreatedAt: now.AddDate(0, 0, -5)},
	}
	m := CalculateEngagement(responses, now, 0)
	if m.MonthlyActiveUsers != 2 {
		t.Errorf("monthlyActiveUsers: got %d, want 2", m.MonthlyActiveUsers)
	}
}

func TestCalculateEngagementDeviceUsage(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	responses := []*model.SurveyResponse{
		{ID: "a", CreatedAt: now, UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)"},
		{ID: "b", CreatedAt: now, UserAgent: "Mozilla/5.0 (iPad; CPU OS 17_0)"},
		{ID: "c", CreatedAt: now, UserAgent: ""},
		{ID: "d", CreatedAt: now, UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0)"},
	}
	m := CalculateEngagement(responses, now, 0)
	got := map[string]int{}
	for _, d := range m.DeviceUsage {
		got[d.Label] = d.Value
	}
	if got["Mobile"] != 50 || got["Tablet"] != 25 || got["Desktop"] != 25 {
		t.Errorf("deviceUsage: got %v, want Mobile=50 Tablet=25 Desktop=25", got)
	}
	if m.DeviceUsage[0].Label != "Mobile" {
		t.Errorf("top device: got %q, want Mobile", m.DeviceUsage[0].Label)
	}
}

func TestCalculateEngagementPeakUsageTimes(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	responses := []*model.SurveyResponse{
		{ID: "a", CreatedAt: day.Add(8 * time.Hour)},
		{ID: "b", CreatedAt: day.Add(9 * time.Hour)},
		{ID: "c", CreatedAt: day.Add(14 * time.Hour)},
		{ID: "d", CreatedAt: day.Add(19 * time.Hour)},
	}
	m := CalculateEngagement(responses, now, 0)
	got := map[string]int{}
	for _, p := range m.PeakUsageTimes {
		got[p.Label] = p.Value
	}
	if got["Morning"] != 50 || got["Afternoon"] != 25 || got["Evening"] != 25 {
		t.Errorf("peakUsageTimes: got %v", got)
	}
}

func TestCalculateEngagementEmpty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	m := CalculateEngagement(nil, now, 4.2)
	if m.DailyActiveUsers != 0 || m.MonthlyActiveUsers != 0 {
		t.Errorf("active users should be zero: %+v", m)
	}
	if m.DeviceUsage == nil || len(m.DeviceUsage) != 0 {
		t.Errorf("deviceUsage should be an empty slice: %v", m.DeviceUsage)
	}
	if m.PeakUsageTimes == nil || len(m.PeakUsageTimes) != 0 {
		t.Errorf("peakUsageTimes should be an empty slice: %v", m.PeakUsageTimes)
	}
	if m.GrowthRate != 4.2 {
		t.Errorf("growthRate: got %v, want 4.2", m.GrowthRate)
	}
}

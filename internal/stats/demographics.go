package stats

import (
	"math"
	"sort"

	"personalysis/internal/model"
)

// ageBuckets in reporting order. Lower bound inclusive, upper exclusive.
var ageBuckets = []struct {
	label string
	min   int
	max   int
}{
	{"Under 18", 0, 18},
	{"18-24", 18, 25},
	{"25-34", 25, 35},
	{"35-44", 35, 45},
	{"45-54", 45, 55},
	{"55-64", 55, 65},
	{"65+", 65, math.MaxInt32},
}

// AgeBucket maps an age to its reporting bucket label. Shared with the
// anonymizer, which generalizes exact ages into the same buckets.
func AgeBucket(age int) string {
	for _, b := range ageBuckets {
		if age >= b.min && age < b.max {
			return b.label
		}
	}
	return ageBuckets[0].label
}

// percentOf rounds count/total to an integer percentage, treating a zero
// total as zero rather than dividing.
func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// AggregateDemographics buckets age into fixed ranges and tallies gender and
// location verbatim. Percentages are rounded independently per bucket and may
// not sum to exactly 100.
func AggregateDemographics(responses []NormalizedResponse, total int) model.DemographicBreakdown {
	ageCounts := map[string]int{}
	genders := newCounter()
	locations := newCounter()

	for _, r := range responses {
		d := r.Demographics
		if d == nil {
			continue
		}
		if d.Age != nil {
			ageCounts[AgeBucket(*d.Age)]++
		}
		if d.Gender != "" {
			genders.add(d.Gender)
		}
		if d.Location != "" {
			locations.add(d.Location)
		}
	}

	ages := []model.RangeShare{}
	for _, b := range ageBuckets {
		if c := ageCounts[b.label]; c > 0 {
			ages = append(ages, model.RangeShare{Range: b.label, Percentage: percentOf(c, total)})
		}
	}

	return model.DemographicBreakdown{
		GenderDistribution:   genders.distribution(total),
		AgeDistribution:      ages,
		LocationDistribution: locations.distribution(total),
	}
}

// counter tallies string keys preserving first-encounter order, so that
// equal-count entries sort stably.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) len() int {
	return len(c.order)
}

// ranked returns keys sorted descending by count, stable on ties
func (c *counter) ranked() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

func (c *counter) distribution(total int) []model.LabelValue {
	out := []model.LabelValue{}
	for _, key := range c.ranked() {
		out = append(out, model.LabelValue{Label: key, Value: percentOf(c.counts[key], total)})
	}
	return out
}

package stats

import (
	"math"
	"sort"

	"personalysis/internal/model"
)

const maxTopTraits = 10

type traitAccumulator struct {
	name     string
	category string
	total    float64
	count    int
}

// AggregateTraits folds normalized trait lists into per-trait averages,
// ranked descending by score and capped at 10. Ties keep first-encounter
// order.
func AggregateTraits(responses []NormalizedResponse) []model.TraitScore {
	accs := map[string]*traitAccumulator{}
	var order []string

	for _, r := range responses {
		for _, t := range r.Traits {
			acc, ok := accs[t.Name]
			if !ok {
				acc = &traitAccumulator{name: t.Name, category: t.Category}
				accs[t.Name] = acc
				order = append(order, t.Name)
			}
			acc.total += t.Score
			acc.count++
		}
	}

	ranked := make([]model.TraitScore, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		ranked = append(ranked, model.TraitScore{
			Name:     acc.name,
			Score:    int(math.Round(acc.total / float64(acc.count))),
			Category: acc.category,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > maxTopTraits {
		ranked = ranked[:maxTopTraits]
	}
	return ranked
}

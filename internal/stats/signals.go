package stats

import (
	"sort"

	"personalysis/internal/model"
)

const maxTopProducts = 10

// AggregateStereotypes merges gender-stereotype association lists across
// responses by trait key within each category. On collision the score becomes
// the average of existing and incoming; this decaying merge is the
// established dashboard behavior and is kept as-is. Returns nil when all
// three categories end up empty.
func AggregateStereotypes(responses []NormalizedResponse) *model.GenderStereotypes {
	male := newStereotypeMerger()
	female := newStereotypeMerger()
	neutral := newStereotypeMerger()

	for _, r := range responses {
		if r.Stereotypes == nil {
			continue
		}
		male.merge(r.Stereotypes.MaleAssociated)
		female.merge(r.Stereotypes.FemaleAssociated)
		neutral.merge(r.Stereotypes.NeutralAssociated)
	}

	if male.empty() && female.empty() && neutral.empty() {
		return nil
	}
	return &model.GenderStereotypes{
		MaleAssociated:    male.list(),
		FemaleAssociated:  female.list(),
		NeutralAssociated: neutral.list(),
	}
}

type stereotypeMerger struct {
	byTrait map[string]*model.StereotypeTrait
	order   []string
}

func newStereotypeMerger() *stereotypeMerger {
	return &stereotypeMerger{byTrait: map[string]*model.StereotypeTrait{}}
}

func (m *stereotypeMerger) merge(traits []model.StereotypeTrait) {
	for _, t := range traits {
		existing, ok := m.byTrait[t.Trait]
		if !ok {
			copied := t
			m.byTrait[t.Trait] = &copied
			m.order = append(m.order, t.Trait)
			continue
		}
		existing.Score = (existing.Score + t.Score) / 2
		if existing.Description == "" {
			existing.Description = t.Description
		}
	}
}

func (m *stereotypeMerger) empty() bool {
	return len(m.order) == 0
}

func (m *stereotypeMerger) list() []model.StereotypeTrait {
	out := []model.StereotypeTrait{}
	for _, key := range m.order {
		out = append(out, *m.byTrait[key])
	}
	return out
}

// AggregateProducts sums category counts and collects top products across
// responses, ranked descending by confidence and capped at 10. Returns nil
// when neither categories nor products carry any signal.
func AggregateProducts(responses []NormalizedResponse) *model.ProductRecommendations {
	categories := map[string]int{}
	var products []model.Product

	for _, r := range responses {
		if r.Products == nil {
			continue
		}
		for cat, count := range r.Products.Categories {
			categories[cat] += count
		}
		products = append(products, r.Products.TopProducts...)
	}

	if len(categories) == 0 && len(products) == 0 {
		return nil
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Confidence > products[j].Confidence
	})
	if len(products) > maxTopProducts {
		products = products[:maxTopProducts]
	}
	if products == nil {
		products = []model.Product{}
	}
	return &model.ProductRecommendations{Categories: categories, TopProducts: products}
}

// AggregateSegments counts trimmed market-segment labels per response and
// converts to percentage of total, sorted descending by count.
func AggregateSegments(responses []NormalizedResponse, total int) []model.SegmentShare {
	segments := newCounter()
	for _, r := range responses {
		if r.MarketSegment != "" {
			segments.add(r.MarketSegment)
		}
	}

	out := []model.SegmentShare{}
	for _, key := range segments.ranked() {
		out = append(out, model.SegmentShare{
			Segment:    key,
			Count:      segments.counts[key],
			Percentage: percentOf(segments.counts[key], total),
		})
	}
	return out
}

package stats

import (
	"fmt"
	"testing"

	"personalysis/internal/model"
)

func TestAggregateStereotypesMergeAveragesOnCollision(t *testing.T) {
	responses := []NormalizedResponse{
		{Stereotypes: &StereotypeSignal{
			MaleAssociated: []model.StereotypeTrait{{Trait: "Assertive", Score: 0.8, Description: "kept"}},
		}},
		{Stereotypes: &StereotypeSignal{
			MaleAssociated: []model.StereotypeTrait{{Trait: "Assertive", Score: 0.2}},
		}},
	}
	s := AggregateStereotypes(responses)
	if s == nil {
		t.Fatal("expected a stereotype block")
	}
	if len(s.MaleAssociated) != 1 {
		t.Fatalf("maleAssociated len: got %d, want 1", len(s.MaleAssociated))
	}
	// Collision averages existing and incoming: (0.8+0.2)/2
	if got := s.MaleAssociated[0].Score; got != 0.5 {
		t.Errorf("merged score: got %v, want 0.5", got)
	}
	if s.MaleAssociated[0].Description != "kept" {
		t.Errorf("description: got %q, want first-seen value", s.MaleAssociated[0].Description)
	}
}

// The merge is a pairwise average, not a true running mean: three
// contributions of 1.0, 0.0, 0.0 yield 0.25, not 0.333. This matches the
// dashboard's established numbers and must not be "fixed".
func TestAggregateStereotypesDecayingAverage(t *testing.T) {
	mk := func(score float64) NormalizedResponse {
		return NormalizedResponse{Stereotypes: &StereotypeSignal{
			NeutralAssociated: []model.StereotypeTrait{{Trait: "Adaptable", Score: score}},
		}}
	}
	s := AggregateStereotypes([]NormalizedResponse{mk(1.0), mk(0.0), mk(0.0)})
	if got := s.NeutralAssociated[0].Score; got != 0.25 {
		t.Errorf("decaying average: got %v, want 0.25", got)
	}
}

func TestAggregateStereotypesNilWhenEmpty(t *testing.T) {
	if s := AggregateStereotypes(nil); s != nil {
		t.Errorf("got %+v, want nil", s)
	}
	if s := AggregateStereotypes([]NormalizedResponse{{}}); s != nil {
		t.Errorf("got %+v, want nil for responses without stereotype signal", s)
	}
}

func TestAggregateProductsSumsCategories(t *testing.T) {
	responses := []NormalizedResponse{
		{Products: &ProductSignal{Categories: map[string]int{"books": 2, "apps": 1}}},
		{Products: &ProductSignal{Categories: map[string]int{"books": 3}}},
	}
	p := AggregateProducts(responses)
	if p == nil {
		t.Fatal("expected a product block")
	}
	if p.Categories["books"] != 5 || p.Categories["apps"] != 1 {
		t.Errorf("categories: got %v", p.Categories)
	}
	if len(p.TopProducts) != 0 {
		t.Errorf("topProducts should be empty, got %v", p.TopProducts)
	}
}

func TestAggregateProductsRankedByConfidenceCappedAtTen(t *testing.T) {
	var products []model.Product
	for i := 0; i < 15; i++ {
		products = append(products, model.Product{
			Name:       fmt.Sprintf("P%02d", i),
			Confidence: float64(i) / 100,
		})
	}
	responses := []NormalizedResponse{{Products: &ProductSignal{TopProducts: products}}}
	p := AggregateProducts(responses)
	if len(p.TopProducts) != 10 {
		t.Fatalf("topProducts len: got %d, want 10", len(p.TopProducts))
	}
	if p.TopProducts[0].Name != "P14" {
		t.Errorf("top product: got %q, want P14", p.TopProducts[0].Name)
	}
	for i := 1; i < len(p.TopProducts); i++ {
		if p.TopProducts[i].Confidence > p.TopProducts[i-1].Confidence {
			t.Errorf("not sorted descending at %d", i)
		}
	}
}

func TestAggregateProductsNilWhenEmpty(t *testing.T) {
	if p := AggregateProducts([]NormalizedResponse{{}}); p != nil {
		t.Errorf("got %+v, want nil", p)
	}
}

func TestAggregateSegments(t *testing.T) {
	responses := []NormalizedResponse{
		{MarketSegment: "SMB"},
		{MarketSegment: "Enterprise"},
		{MarketSegment: "Enterprise"},
		{MarketSegment: ""},
	}
	segments := AggregateSegments(responses, 4)
	if len(segments) != 2 {
		t.Fatalf("segments len: got %d, want 2", len(segments))
	}
	if segments[0].Segment != "Enterprise" || segments[0].Count != 2 || segments[0].Percentage != 50 {
		t.Errorf("top segment: got %+v", segments[0])
	}
	if segments[1].Segment != "SMB" || segments[1].Percentage != 25 {
		t.Errorf("second segment: got %+v", segments[1])
	}
}

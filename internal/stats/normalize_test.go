package stats

import (
	"testing"

	"personalysis/internal/model"
)

func TestNormalizeArrayTraits(t *testing.T) {
	r := &model.SurveyResponse{
		Traits: []interface{}{
			map[string]interface{}{"name": "Optimism", "score": 80.0, "category": "dispositional"},
			map[string]interface{}{"name": "Curiosity", "score": 65},
			map[string]interface{}{"score": 90.0},          // no name, dropped
			map[string]interface{}{"name": "Drive"},        // no score, dropped
			"not an object",                                // dropped
		},
	}
	n := Normalize(r)
	if len(n.Traits) != 2 {
		t.Fatalf("traits len: got %d, want 2", len(n.Traits))
	}
	if n.Traits[0].Name != "Optimism" || n.Traits[0].Score != 80 || n.Traits[0].Category != "dispositional" {
		t.Errorf("first trait: got %+v", n.Traits[0])
	}
	if n.Traits[1].Category != "personality" {
		t.Errorf("default category: got %q, want personality", n.Traits[1].Category)
	}
}

func TestNormalizeLegacyPersonalityText(t *testing.T) {
	r := &model.SurveyResponse{
		Traits: map[string]interface{}{"personality": "Practical, detail-oriented thinker"},
	}
	n := Normalize(r)
	want := []string{"Practical", "Detail-oriented", "Thinker"}
	if len(n.Traits) != len(want) {
		t.Fatalf("traits len: got %d, want %d", len(n.Traits), len(want))
	}
	for i, name := range want {
		tr := n.Traits[i]
		if tr.Name != name {
			t.Errorf("trait %d: got %q, want %q", i, tr.Name, name)
		}
		if tr.Score != 50 {
			t.Errorf("trait %d score: got %v, want 50", i, tr.Score)
		}
		if tr.Category != "personality" {
			t.Errorf("trait %d category: got %q", i, tr.Category)
		}
	}
}

func TestNormalizeLegacyTextSkipsShortWords(t *testing.T) {
	r := &model.SurveyResponse{
		Traits: map[string]interface{}{"personality": "a big bold visionary"},
	}
	n := Normalize(r)
	if len(n.Traits) != 2 {
		t.Fatalf("traits len: got %d, want 2 (words longer than 3 chars)", len(n.Traits))
	}
	if n.Traits[0].Name != "Bold" || n.Traits[1].Name != "Visionary" {
		t.Errorf("got %v, %v", n.Traits[0].Name, n.Traits[1].Name)
	}
}

func TestNormalizeJSONStringFields(t *testing.T) {
	r := &model.SurveyResponse{
		Traits:       `[{"name":"Focus","score":70}]`,
		Demographics: `{"age":"29","gender":" Female "}`,
	}
	n := Normalize(r)
	if len(n.Traits) != 1 || n.Traits[0].Name != "Focus" {
		t.Fatalf("traits from JSON string: got %+v", n.Traits)
	}
	if n.Demographics == nil {
		t.Fatal("demographics should decode from JSON string")
	}
	if n.Demographics.Age == nil || *n.Demographics.Age != 29 {
		t.Errorf("age: got %v, want 29", n.Demographics.Age)
	}
	if n.Demographics.Gender != "Female" {
		t.Errorf("gender: got %q, want Female (trimmed)", n.Demographics.Gender)
	}
}

func TestNormalizeMalformedFields(t *testing.T) {
	r := &model.SurveyResponse{
		Traits:                 42,
		Demographics:           "not json {",
		GenderStereotypes:      []interface{}{"wrong shape"},
		ProductRecommendations: true,
		MarketSegment:          7,
	}
	n := Normalize(r)
	if n.Traits != nil {
		t.Errorf("traits: got %+v, want nil", n.Traits)
	}
	if n.Demographics != nil {
		t.Errorf("demographics: got %+v, want nil", n.Demographics)
	}
	if n.Stereotypes != nil {
		t.Errorf("stereotypes: got %+v, want nil", n.Stereotypes)
	}
	if n.Products != nil {
		t.Errorf("products: got %+v, want nil", n.Products)
	}
	if n.MarketSegment != "" {
		t.Errorf("marketSegment: got %q, want empty", n.MarketSegment)
	}
}

func TestNormalizeUnparseableAgeDiscarded(t *testing.T) {
	r := &model.SurveyResponse{
		Demographics: map[string]interface{}{"age": "unknown", "gender": "Male"},
	}
	n := Normalize(r)
	if n.Demographics == nil {
		t.Fatal("demographics should survive a bad age")
	}
	if n.Demographics.Age != nil {
		t.Errorf("age: got %v, want nil", *n.Demographics.Age)
	}
	if n.Demographics.Gender != "Male" {
		t.Errorf("gender: got %q", n.Demographics.Gender)
	}
}

func TestNormalizeSkillsAcceptSingleString(t *testing.T) {
	r := &model.SurveyResponse{
		Demographics: map[string]interface{}{
			"skills":     "negotiation",
			"challenges": []interface{}{"hiring", " retention ", 3},
		},
	}
	n := Normalize(r)
	if len(n.Demographics.Skills) != 1 || n.Demographics.Skills[0] != "negotiation" {
		t.Errorf("skills: got %v", n.Demographics.Skills)
	}
	if len(n.Demographics.Challenges) != 2 || n.Demographics.Challenges[1] != "retention" {
		t.Errorf("challenges: got %v", n.Demographics.Challenges)
	}
}

func TestNormalizeMarketSegment(t *testing.T) {
	n := Normalize(&model.SurveyResponse{MarketSegment: "  Enterprise  "})
	if n.MarketSegment != "Enterprise" {
		t.Errorf("got %q, want Enterprise", n.MarketSegment)
	}
	n = Normalize(&model.SurveyResponse{MarketSegment: "   "})
	if n.MarketSegment != "" {
		t.Errorf("whitespace-only segment should normalize to empty, got %q", n.MarketSegment)
	}
}

func TestNormalizeStereotypes(t *testing.T) {
	r := &model.SurveyResponse{
		GenderStereotypes: map[string]interface{}{
			"maleAssociated": []interface{}{
				map[string]interface{}{"trait": "Assertive", "score": 0.8, "description": "d"},
				map[string]interface{}{"score": 0.9}, // no trait, dropped
			},
			"femaleAssociated":  "not a list",
			"neutralAssociated": []interface{}{},
		},
	}
	n := Normalize(r)
	if n.Stereotypes == nil {
		t.Fatal("stereotypes should be extracted")
	}
	if len(n.Stereotypes.MaleAssociated) != 1 {
		t.Fatalf("maleAssociated: got %d, want 1", len(n.Stereotypes.MaleAssociated))
	}
	if n.Stereotypes.MaleAssociated[0].Trait != "Assertive" {
		t.Errorf("trait: got %q", n.Stereotypes.MaleAssociated[0].Trait)
	}
	if len(n.Stereotypes.FemaleAssociated) != 0 {
		t.Errorf("femaleAssociated should be empty for malformed input")
	}
}

func TestNormalizeProducts(t *testing.T) {
	r := &model.SurveyResponse{
		ProductRecommendations: map[string]interface{}{
			"categories": map[string]interface{}{"books": 3.0, "apps": 1},
			"topProducts": []interface{}{
				map[string]interface{}{"name": "Planner Pro", "category": "apps", "confidence": 0.9},
			},
		},
	}
	n := Normalize(r)
	if n.Products == nil {
		t.Fatal("products should be extracted")
	}
	if n.Products.Categories["books"] != 3 {
		t.Errorf("books count: got %d", n.Products.Categories["books"])
	}
	if len(n.Products.TopProducts) != 1 || n.Products.TopProducts[0].Confidence != 0.9 {
		t.Errorf("topProducts: got %+v", n.Products.TopProducts)
	}
}

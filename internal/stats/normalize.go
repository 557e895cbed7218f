package stats

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"

	"personalysis/internal/model"
)

// legacyTraitScore is assigned to traits synthesized from free-text
// personality descriptions, which carry no numeric signal of their own.
const legacyTraitScore = 50

const defaultTraitCategory = "personality"

// Trait is one normalized personality trait from a response
type Trait struct {
	Name     string
	Score    float64
	Category string
}

// Demographics is the normalized demographic view of one response. Pointer
// and empty-string fields mean "absent"; absent fields are skipped by the
// aggregators, never defaulted.
type Demographics struct {
	Age                *int
	Gender             string
	Location           string
	Education          string
	Income             string
	Industry           string
	CompanySize        string
	Department         string
	Role               string
	DecisionStyle      string
	DecisionTimeframe  string
	GrowthStage        string
	LearningPreference string
	Skills             []string
	Challenges         []string
}

// StereotypeSignal is the normalized gender-stereotype block of one response
type StereotypeSignal struct {
	MaleAssociated    []model.StereotypeTrait
	FemaleAssociated  []model.StereotypeTrait
	NeutralAssociated []model.StereotypeTrait
}

// ProductSignal is the normalized product-recommendation block of one response
type ProductSignal struct {
	Categories  map[string]int
	TopProducts []model.Product
}

// NormalizedResponse is the canonical in-memory view of one response's
// semi-structured fields. All downstream aggregators consume only this shape.
type NormalizedResponse struct {
	Traits        []Trait
	Demographics  *Demographics // nil when the field was absent or malformed
	Stereotypes   *StereotypeSignal
	Products      *ProductSignal
	MarketSegment string
}

// Normalize coerces one raw response's loosely typed fields into the
// canonical shape. Malformed fields are excluded from the result; Normalize
// never fails, it returns as much valid signal as it could extract.
func Normalize(r *model.SurveyResponse) NormalizedResponse {
	var n NormalizedResponse
	if r == nil {
		return n
	}
	n.Traits = normalizeTraits(r.Traits)
	n.Demographics = normalizeDemographics(r.Demographics)
	n.Stereotypes = normalizeStereotypes(r.GenderStereotypes)
	n.Products = normalizeProducts(r.ProductRecommendations)
	if s, ok := asString(r.MarketSegment); ok {
		n.MarketSegment = strings.TrimSpace(s)
	}
	return n
}

// normalizeTraits handles the two supported trait shapes: a list of
// {name, score, category} entries, or a legacy object carrying a free-text
// "personality" description. The legacy path tokenizes the description into
// synthetic traits at a fixed score; it is a deliberately lossy fallback.
func normalizeTraits(v interface{}) []Trait {
	if list, ok := asSlice(v); ok {
		var traits []Trait
		for _, item := range list {
			m, ok := asMap(item)
			if !ok {
				continue
			}
			name, ok := asString(m["name"])
			if !ok || strings.TrimSpace(name) == "" {
				continue
			}
			score, ok := asFloat(m["score"])
			if !ok {
				continue
			}
			category, _ := asString(m["category"])
			if category == "" {
				category = defaultTraitCategory
			}
			traits = append(traits, Trait{Name: name, Score: score, Category: category})
		}
		return traits
	}

	m, ok := asMap(v)
	if !ok {
		return nil
	}
	text, ok := asString(m["personality"])
	if !ok {
		return nil
	}
	var traits []Trait
	for _, word := range tokenizeDescription(text) {
		traits = append(traits, Trait{
			Name:     titleCase(word),
			Score:    legacyTraitScore,
			Category: defaultTraitCategory,
		})
	}
	return traits
}

// tokenizeDescription splits a personality description on whitespace and
// commas, keeping words longer than 3 characters.
func tokenizeDescription(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	var words []string
	for _, f := range fields {
		f = strings.Trim(f, ".;:!?\"'()")
		if len(f) > 3 {
			words = append(words, f)
		}
	}
	return words
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func normalizeDemographics(v interface{}) *Demographics {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	d := &Demographics{
		Gender:             trimmedString(m, "gender"),
		Location:           trimmedString(m, "location"),
		Education:          trimmedString(m, "education"),
		Income:             trimmedString(m, "income"),
		Industry:           trimmedString(m, "industry"),
		CompanySize:        trimmedString(m, "companySize"),
		Department:         trimmedString(m, "department"),
		Role:               trimmedString(m, "role"),
		DecisionStyle:      trimmedString(m, "decisionStyle"),
		DecisionTimeframe:  trimmedString(m, "decisionTimeframe"),
		GrowthStage:        trimmedString(m, "growthStage"),
		LearningPreference: trimmedString(m, "learningPreference"),
		Skills:             stringList(m["skills"]),
		Challenges:         stringList(m["challenges"]),
	}
	if f, ok := asFloat(m["age"]); ok {
		age := int(f)
		d.Age = &age
	}
	return d
}

func normalizeStereotypes(v interface{}) *StereotypeSignal {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	s := &StereotypeSignal{
		MaleAssociated:    stereotypeList(m["maleAssociated"]),
		FemaleAssociated:  stereotypeList(m["femaleAssociated"]),
		NeutralAssociated: stereotypeList(m["neutralAssociated"]),
	}
	if len(s.MaleAssociated) == 0 && len(s.FemaleAssociated) == 0 && len(s.NeutralAssociated) == 0 {
		return nil
	}
	return s
}

func stereotypeList(v interface{}) []model.StereotypeTrait {
	list, ok := asSlice(v)
	if !ok {
		return nil
	}
	var out []model.StereotypeTrait
	for _, item := range list {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		trait, ok := asString(m["trait"])
		if !ok || strings.TrimSpace(trait) == "" {
			continue
		}
		score, _ := asFloat(m["score"])
		desc, _ := asString(m["description"])
		out = append(out, model.StereotypeTrait{Trait: trait, Score: score, Description: desc})
	}
	return out
}

func normalizeProducts(v interface{}) *ProductSignal {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	p := &ProductSignal{Categories: map[string]int{}}
	if cats, ok := asMap(m["categories"]); ok {
		for k, cv := range cats {
			if f, ok := asFloat(cv); ok {
				p.Categories[k] = int(f)
			}
		}
	}
	if list, ok := asSlice(m["topProducts"]); ok {
		for _, item := range list {
			pm, ok := asMap(item)
			if !ok {
				continue
			}
			name, ok := asString(pm["name"])
			if !ok || strings.TrimSpace(name) == "" {
				continue
			}
			category, _ := asString(pm["category"])
			confidence, _ := asFloat(pm["confidence"])
			desc, _ := asString(pm["description"])
			p.TopProducts = append(p.TopProducts, model.Product{
				Name:        name,
				Category:    category,
				Confidence:  confidence,
				Description: desc,
				Attributes:  stringList(pm["attributes"]),
			})
		}
	}
	if len(p.Categories) == 0 && len(p.TopProducts) == 0 {
		return nil
	}
	return p
}

func trimmedString(m map[string]interface{}, key string) string {
	s, _ := asString(m[key])
	return strings.TrimSpace(s)
}

// stringList accepts an array of strings or a single string
func stringList(v interface{}) []string {
	if s, ok := asString(v); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return []string{s}
	}
	list, ok := asSlice(v)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := asString(item); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// DecodeMap exposes the normalizer's object coercion for the exporters,
// which flatten the same loosely typed fields into columns.
func DecodeMap(v interface{}) (map[string]interface{}, bool) {
	return asMap(v)
}

// DecodeNumber exposes the normalizer's numeric coercion
func DecodeNumber(v interface{}) (float64, bool) {
	return asFloat(v)
}

// asMap coerces JSON objects, bson documents, and JSON-encoded strings into
// a plain map. Anything else is rejected.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]interface{}:
		return t, true
	case bson.M:
		return t, true
	case bson.D:
		return t.Map(), true
	case string:
		trimmed := strings.TrimSpace(t)
		if !strings.HasPrefix(trimmed, "{") {
			return nil, false
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &m); err != nil {
			return nil, false
		}
		return m, true
	default:
		return nil, false
	}
}

// asSlice coerces JSON arrays, bson arrays, and JSON-encoded strings into a
// plain slice.
func asSlice(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return t, true
	case bson.A:
		return t, true
	case string:
		trimmed := strings.TrimSpace(t)
		if !strings.HasPrefix(trimmed, "[") {
			return nil, false
		}
		var list []interface{}
		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil, false
		}
		return list, true
	default:
		return nil, false
	}
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asFloat coerces the numeric types produced by the json and bson decoders,
// plus numeric strings.
func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

// BuildPredicate translates the generic query into one family's structured
// filter. It is pure: malformed inputs (unparseable price range, facet
// values for fields the family lacks) degrade to "no additional term"
// instead of failing.
func BuildPredicate(query models.CatalogQuery, family models.Family) models.Predicate {
	schema := familySchemas[family]
	var pred models.Predicate

	addMandatoryTerms(&pred, family)

	if family == models.FamilyGeneral && query.Category != "" {
		if value, ok := generalCategoryValues[squash(query.Category)]; ok {
			pred.And("category", models.OpEqFold, value)
		}
	}
	if query.SubCategory != "" {
		pred.And(schema.subCategoryField, models.OpEqFold, query.SubCategory)
	}
	if query.SubSubCategory != "" {
		pred.And(schema.subSubCategoryField, models.OpEqFold, query.SubSubCategory)
	}
	if query.Search != "" {
		pred.And(schema.titleField, models.OpContainsFold, query.Search)
	}
	if query.Gender != "" && schema.genderField != "" {
		pred.And(schema.genderField, models.OpEqFold, query.Gender)
	}
	if query.Color != "" && schema.colorField != "" {
		pred.And(schema.colorField, models.OpEqFold, query.Color)
	}
	if query.Brand != "" && schema.brandField != "" {
		pred.And(schema.brandField, models.OpEqFold, query.Brand)
	}
	if query.PriceRange != "" {
		if bounds, ok := ParsePriceRange(query.PriceRange); ok {
			pred.Terms = append(pred.Terms, priceTerm(schema, bounds))
		}
	}

	// Extra keys are either hierarchical facet keys or direct attribute
	// paths. Keys are visited in sorted order so the predicate is stable
	// for identical queries.
	keys := make([]string, 0, len(query.Extra))
	for key := range query.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := query.Extra[key]
		if value == "" {
			continue
		}
		if attrName, ok := hierarchicalFacets[key]; ok {
			// Legacy rows encode the facet as subCategory/subSubCategory,
			// newer rows as an attribute. Match either encoding.
			pred.AndAny(
				models.Match{Clauses: []models.Clause{
					{Field: schema.subCategoryField, Op: models.OpEqFold, Value: key},
					{Field: schema.subSubCategoryField, Op: models.OpEqFold, Value: value},
				}},
				models.Match{Clauses: []models.Clause{
					{Field: schema.attrPath(attrName), Op: models.OpEqFold, Value: value},
				}},
			)
			continue
		}
		field := key
		if !strings.Contains(key, ".") {
			field = schema.attrPath(key)
		}
		pred.And(field, models.OpEqFold, value)
	}

	return pred
}

// addMandatoryTerms injects the conditions a family predicate always
// carries, independent of the query.
func addMandatoryTerms(pred *models.Predicate, family models.Family) {
	if family == models.FamilyAccessory {
		pred.And("category", models.OpEqFold, "Accessories")
	}
}

// PriceBounds is a parsed priceRange parameter.
type PriceBounds struct {
	Min    float64
	Max    float64
	HasMax bool
}

// Contains reports whether a price falls inside the bounds (inclusive).
func (b PriceBounds) Contains(price float64) bool {
	if price < b.Min {
		return false
	}
	return !b.HasMax || price <= b.Max
}

// ParsePriceRange accepts "<min>-<max>" (inclusive) or "<min>+" (lower bound
// only). Anything else reports false and adds no predicate.
func ParsePriceRange(raw string) (PriceBounds, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PriceBounds{}, false
	}

	if strings.HasSuffix(raw, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(raw, "+"), 64)
		if err != nil {
			return PriceBounds{}, false
		}
		return PriceBounds{Min: min}, true
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return PriceBounds{}, false
	}
	min, errMin := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, errMax := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errMin != nil || errMax != nil || max < min {
		return PriceBounds{}, false
	}
	return PriceBounds{Min: min, Max: max, HasMax: true}, true
}

// priceTerm builds the price constraint for a family, OR-ing across every
// price field the family exposes.
func priceTerm(schema familySchema, bounds PriceBounds) models.Term {
	var term models.Term
	for _, field := range schema.priceFields {
		clauses := []models.Clause{{Field: field, Op: models.OpGte, Value: bounds.Min}}
		if bounds.HasMax {
			clauses = append(clauses, models.Clause{Field: field, Op: models.OpLte, Value: bounds.Max})
		}
		term.Any = append(term.Any, models.Match{Clauses: clauses})
	}
	return term
}

func squash(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	return strings.Join(strings.Fields(s), "")
}

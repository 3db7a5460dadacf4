package services

import (
	"context"
	"fmt"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

// PriceBucket is one rung of the price facet ladder. HasMax=false marks the
// open-ended top bucket.
type PriceBucket struct {
	Label  string
	Min    float64
	Max    float64
	HasMax bool
}

// PriceBucketLadder is the fixed bucket configuration, ordered ascending.
// A price is counted into the first matching bucket only: the open top
// bucket is queried with a strict lower bound so its boundary price stays
// in the rung below.
var PriceBucketLadder = []PriceBucket{
	{Label: "300-1000", Min: 300, Max: 1000, HasMax: true},
	{Label: "1001-2000", Min: 1001, Max: 2000, HasMax: true},
	{Label: "2001-3000", Min: 2001, Max: 3000, HasMax: true},
	{Label: "3001-4000", Min: 3001, Max: 4000, HasMax: true},
	{Label: "4001-5000", Min: 4001, Max: 5000, HasMax: true},
	{Label: "5000+", Min: 5000, HasMax: false},
}

// GetFacets computes grouped match counts under the same predicate context
// the listing uses, so every count reflects the current filter selection.
// With no targeted family it spans the primary-family union.
func (s *CatalogService) GetFacets(ctx context.Context, query models.CatalogQuery) (*models.Facets, error) {
	query.Normalize()

	families := models.PrimaryFamilies
	if query.Category != "" {
		if family, ok := models.ParseFamily(query.Category); ok {
			families = []models.Family{family}
		}
	}

	facets := &models.Facets{
		PriceBuckets:  make(map[string]int64, len(PriceBucketLadder)),
		Genders:       map[string]int64{},
		Colors:        map[string]int64{},
		SubCategories: map[string]int64{},
	}

	for _, family := range families {
		schema := familySchemas[family]
		pred := BuildPredicate(query, family)

		if schema.genderField != "" {
			if err := s.mergeGroupCounts(ctx, facets.Genders, family, pred, schema.genderField); err != nil {
				return nil, err
			}
		}
		if schema.colorField != "" {
			if err := s.mergeGroupCounts(ctx, facets.Colors, family, pred, schema.colorField); err != nil {
				return nil, err
			}
		}
		if err := s.mergeGroupCounts(ctx, facets.SubCategories, family, pred, schema.subCategoryField); err != nil {
			return nil, err
		}

		for _, bucket := range PriceBucketLadder {
			count, err := s.store.Count(ctx, family, withTerm(pred, bucketTerm(schema, bucket)))
			if err != nil {
				return nil, fmt.Errorf("price bucket %s for %s: %w", bucket.Label, family, err)
			}
			facets.PriceBuckets[bucket.Label] += count
		}
	}

	return facets, nil
}

// mergeGroupCounts adds one family's grouped counts into the shared facet
// map. Empty group keys mean the document lacked the field; those never
// appear in the result.
func (s *CatalogService) mergeGroupCounts(ctx context.Context, into map[string]int64, family models.Family, pred models.Predicate, field string) error {
	counts, err := s.store.GroupCount(ctx, family, pred, field)
	if err != nil {
		return fmt.Errorf("group count %s by %s: %w", family, field, err)
	}
	for key, count := range counts {
		if key == "" {
			continue
		}
		into[key] += count
	}
	return nil
}

// bucketTerm constrains the derived selling price, not the raw price
// fields. A dual-price record whose price and finalPrice straddle a rung
// boundary would otherwise count in two rungs at once.
func bucketTerm(schema familySchema, bucket PriceBucket) models.Term {
	var clauses []models.Clause
	if bucket.HasMax {
		clauses = []models.Clause{
			sellingPriceClause(schema, models.OpGte, bucket.Min),
			sellingPriceClause(schema, models.OpLte, bucket.Max),
		}
	} else {
		clauses = []models.Clause{sellingPriceClause(schema, models.OpGt, bucket.Min)}
	}
	return models.Term{Any: []models.Match{{Clauses: clauses}}}
}

// sellingPriceClause targets the price a customer actually pays: the last
// price field (finalPrice) when the document carries one, falling back
// through the earlier fields. Single-price families keep a plain clause.
func sellingPriceClause(schema familySchema, op models.Op, value float64) models.Clause {
	fields := schema.priceFields
	if len(fields) == 1 {
		return models.Clause{Field: fields[0], Op: op, Value: value}
	}
	return models.Clause{
		Field:    fields[len(fields)-1],
		Coalesce: fields[:len(fields)-1],
		Op:       op,
		Value:    value,
	}
}

// withTerm returns a copy of pred with one extra term; the original predicate
// keeps serving the listing queries untouched.
func withTerm(pred models.Predicate, term models.Term) models.Predicate {
	terms := make([]models.Term, 0, len(pred.Terms)+1)
	terms = append(terms, pred.Terms...)
	terms = append(terms, term)
	return models.Predicate{Terms: terms}
}

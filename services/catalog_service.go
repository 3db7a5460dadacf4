package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/repository"
)

// searchFetchFactor bounds each family's fan-out fetch at limit*3 so the
// merged pool is large enough to re-rank and paginate without pulling whole
// collections.
const searchFetchFactor = 3

// CatalogService is the query engine over the seven family collections.
type CatalogService struct {
	store         repository.FamilyStore
	fanoutTimeout time.Duration
	logger        *zap.Logger
}

func NewCatalogService(store repository.FamilyStore, fanoutTimeout time.Duration, logger *zap.Logger) *CatalogService {
	if fanoutTimeout <= 0 {
		fanoutTimeout = 5 * time.Second
	}
	return &CatalogService{store: store, fanoutTimeout: fanoutTimeout, logger: logger}
}

// ListProducts routes a request to one of the three listing paths:
// a single-family query when the category names a known family, a
// cross-family search fan-out when only a search term is given, and the
// two-family unscoped browse otherwise.
func (s *CatalogService) ListProducts(ctx context.Context, query models.CatalogQuery) (*ProductPage, error) {
	query.Normalize()

	if query.Category != "" {
		if family, ok := models.ParseFamily(query.Category); ok {
			return s.listFamily(ctx, query, family)
		}
		// Unknown categories degrade to the family-less paths rather
		// than rejecting the request.
		s.logger.Warn("unknown category, falling through", zap.String("category", query.Category))
	}

	if query.Search != "" {
		return s.searchAllFamilies(ctx, query)
	}
	return s.listPrimaryUnion(ctx, query)
}

// GetProductByID probes the families in the fixed AllFamilies order and
// returns the first match. IDs are only unique per family, so this order is
// part of the public contract; the probe stays sequential because the first
// hit short-circuits the walk.
func (s *CatalogService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	for _, family := range models.AllFamilies {
		rec, err := s.store.FindByID(ctx, family, id)
		if err == repository.ErrRecordNotFound {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", family, err)
		}
		product := Normalize(rec)
		return &product, nil
	}
	return nil, ErrProductNotFound
}

func (s *CatalogService) listFamily(ctx context.Context, query models.CatalogQuery, family models.Family) (*ProductPage, error) {
	pred := BuildPredicate(query, family)

	total, err := s.store.Count(ctx, family, pred)
	if err != nil {
		s.logger.Error("count failed", zap.String("family", string(family)), zap.Error(err))
		return emptyPage(), fmt.Errorf("count %s: %w", family, err)
	}

	skip := int64((query.Page - 1) * query.Limit)
	records, err := s.store.Find(ctx, family, pred, buildSort(query, family), skip, int64(query.Limit))
	if err != nil {
		s.logger.Error("find failed", zap.String("family", string(family)), zap.Error(err))
		return emptyPage(), fmt.Errorf("find %s: %w", family, err)
	}

	return &ProductPage{
		Products:   NormalizeAll(records),
		Pagination: buildPagination(query.Page, query.Limit, total),
	}, nil
}

// searchAllFamilies fans out a bounded query to every family concurrently.
// A failed or timed-out family contributes zero records and a warning; only
// the sibling results are returned.
func (s *CatalogService) searchAllFamilies(ctx context.Context, query models.CatalogQuery) (*ProductPage, error) {
	// The price filter runs after normalization, on the derived price, so
	// the per-family predicates must not carry it.
	fanoutQuery := query
	fanoutQuery.PriceRange = ""

	fetchLimit := int64(query.Limit * searchFetchFactor)
	recordsByFamily := make([][]models.Record, len(models.AllFamilies))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)
	for i, family := range models.AllFamilies {
		wg.Add(1)
		go func(i int, family models.Family) {
			defer wg.Done()
			famCtx, cancel := context.WithTimeout(ctx, s.fanoutTimeout)
			defer cancel()

			pred := BuildPredicate(fanoutQuery, family)
			records, err := s.store.Find(famCtx, family, pred, nil, 0, fetchLimit)
			if err != nil {
				s.logger.Warn("search fan-out family failed",
					zap.String("family", string(family)), zap.Error(err))
				mu.Lock()
				failures = append(failures, string(family))
				mu.Unlock()
				return
			}
			recordsByFamily[i] = records
		}(i, family)
	}
	wg.Wait()

	// Merge in enumeration order so ties sort deterministically. The slice
	// starts non-nil so a fruitless search still serializes as [].
	merged := []models.Product{}
	for _, records := range recordsByFamily {
		merged = append(merged, NormalizeAll(records)...)
	}

	if bounds, ok := ParsePriceRange(query.PriceRange); ok {
		filtered := merged[:0]
		for _, p := range merged {
			if bounds.Contains(p.Price) {
				filtered = append(filtered, p)
			}
		}
		merged = filtered
	}

	term := query.Search
	sort.SliceStable(merged, func(i, j int) bool {
		return relevanceRank(merged[i].Title, term) < relevanceRank(merged[j].Title, term)
	})

	total := int64(len(merged))
	skip := (query.Page - 1) * query.Limit
	if skip > len(merged) {
		skip = len(merged)
	}
	end := skip + query.Limit
	if end > len(merged) {
		end = len(merged)
	}

	page := &ProductPage{
		Products:   merged[skip:end],
		Pagination: buildPagination(query.Page, query.Limit, total),
	}
	if len(failures) > 0 {
		sort.Strings(failures)
		page.Warning = fmt.Sprintf("partial results: %s unavailable", strings.Join(failures, ", "))
	}
	return page, nil
}

// listPrimaryUnion serves the unscoped browse path over the two primary
// families only, sorted by ID. The union window is composed from per-family
// finds: each family contributes its first skip+limit IDs and the merged,
// ID-ordered slice is cut to the requested window.
func (s *CatalogService) listPrimaryUnion(ctx context.Context, query models.CatalogQuery) (*ProductPage, error) {
	skip := int64((query.Page - 1) * query.Limit)
	fetch := skip + int64(query.Limit)
	idSort := []repository.SortField{{Field: "_id"}}

	var total int64
	var merged []models.Record
	for _, family := range models.PrimaryFamilies {
		pred := BuildPredicate(query, family)

		count, err := s.store.Count(ctx, family, pred)
		if err != nil {
			s.logger.Error("union count failed", zap.String("family", string(family)), zap.Error(err))
			return emptyPage(), fmt.Errorf("count %s: %w", family, err)
		}
		total += count

		records, err := s.store.Find(ctx, family, pred, idSort, 0, fetch)
		if err != nil {
			s.logger.Error("union find failed", zap.String("family", string(family)), zap.Error(err))
			return emptyPage(), fmt.Errorf("find %s: %w", family, err)
		}
		merged = append(merged, records...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RecordID() < merged[j].RecordID()
	})

	start := int(skip)
	if start > len(merged) {
		start = len(merged)
	}
	end := start + query.Limit
	if end > len(merged) {
		end = len(merged)
	}

	return &ProductPage{
		Products:   NormalizeAll(merged[start:end]),
		Pagination: buildPagination(query.Page, query.Limit, total),
	}, nil
}

// relevanceRank orders search hits: exact prefix match first, substring
// match second, everything else last. Comparison is case-insensitive.
func relevanceRank(title, term string) int {
	t := strings.ToLower(title)
	q := strings.ToLower(term)
	switch {
	case strings.HasPrefix(t, q):
		return 0
	case strings.Contains(t, q):
		return 1
	default:
		return 2
	}
}

// buildSort maps the generic sort parameter onto the family's fields. The
// default listing order is sub-category then ID.
func buildSort(query models.CatalogQuery, family models.Family) []repository.SortField {
	schema := familySchemas[family]
	desc := query.Order == "desc"

	switch query.Sort {
	case "price":
		return []repository.SortField{{Field: schema.priceFields[0], Desc: desc}}
	case "rating":
		return []repository.SortField{{Field: "rating", Desc: desc}}
	case "title", "name":
		return []repository.SortField{{Field: schema.titleField, Desc: desc}}
	case "id":
		return []repository.SortField{{Field: "_id", Desc: desc}}
	}
	return []repository.SortField{
		{Field: schema.subCategoryField},
		{Field: "_id"},
	}
}

func buildPagination(page, limit int, total int64) models.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return models.Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalProducts:   total,
		ProductsPerPage: limit,
		HasNextPage:     page < totalPages,
		HasPrevPage:     page > 1 && total > 0,
	}
}

// emptyPage is the safe payload returned alongside backend failures so
// callers can always render an empty state.
func emptyPage() *ProductPage {
	return &ProductPage{
		Products:   []models.Product{},
		Pagination: models.Pagination{},
	}
}

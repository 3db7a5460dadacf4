package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/repository"
)

// mockFamilyStore lets each test script the persistence layer through
// function fields; unset fields behave as an empty store.
type mockFamilyStore struct {
	findFn       func(ctx context.Context, family models.Family, pred models.Predicate, sort []repository.SortField, skip, limit int64) ([]models.Record, error)
	countFn      func(ctx context.Context, family models.Family, pred models.Predicate) (int64, error)
	findByIDFn   func(ctx context.Context, family models.Family, id string) (models.Record, error)
	groupCountFn func(ctx context.Context, family models.Family, pred models.Predicate, field string) (map[string]int64, error)
}

func (m *mockFamilyStore) Find(ctx context.Context, family models.Family, pred models.Predicate, sort []repository.SortField, skip, limit int64) ([]models.Record, error) {
	if m.findFn == nil {
		return nil, nil
	}
	return m.findFn(ctx, family, pred, sort, skip, limit)
}

func (m *mockFamilyStore) Count(ctx context.Context, family models.Family, pred models.Predicate) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx, family, pred)
}

func (m *mockFamilyStore) FindByID(ctx context.Context, family models.Family, id string) (models.Record, error) {
	if m.findByIDFn == nil {
		return nil, repository.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, family, id)
}

func (m *mockFamilyStore) GroupCount(ctx context.Context, family models.Family, pred models.Predicate, field string) (map[string]int64, error) {
	if m.groupCountFn == nil {
		return map[string]int64{}, nil
	}
	return m.groupCountFn(ctx, family, pred, field)
}

func newTestService(store repository.FamilyStore) *CatalogService {
	return NewCatalogService(store, time.Second, zap.NewNop())
}

func mustOID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func TestListProductsExplicitFamily(t *testing.T) {
	var gotFamily models.Family
	var gotSkip, gotLimit int64
	store := &mockFamilyStore{
		countFn: func(_ context.Context, _ models.Family, _ models.Predicate) (int64, error) {
			return 45, nil
		},
		findFn: func(_ context.Context, family models.Family, _ models.Predicate, _ []repository.SortField, skip, limit int64) ([]models.Record, error) {
			gotFamily, gotSkip, gotLimit = family, skip, limit
			return []models.Record{
				models.MenShoe{ID: primitive.NewObjectID(), Title: "Derby", Price: 3400},
			}, nil
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{
		Category: "Men's Shoes",
		Page:     2,
		Limit:    18,
	})
	require.NoError(t, err)

	assert.Equal(t, models.FamilyMenShoe, gotFamily)
	assert.Equal(t, int64(18), gotSkip)
	assert.Equal(t, int64(18), gotLimit)

	require.Len(t, page.Products, 1)
	assert.Equal(t, models.FamilyMenShoe, page.Products[0].Family)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(45), page.Pagination.TotalProducts)
	assert.True(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestListProductsBackendFailureReturnsEmptyPage(t *testing.T) {
	store := &mockFamilyStore{
		countFn: func(_ context.Context, _ models.Family, _ models.Predicate) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{Category: "Bags"})

	require.Error(t, err)
	require.NotNil(t, page)
	assert.Empty(t, page.Products)
	assert.NotNil(t, page.Products)
	assert.Zero(t, page.Pagination.TotalProducts)
}

func TestSearchFansOutToAllFamilies(t *testing.T) {
	seen := make(chan models.Family, len(models.AllFamilies))
	store := &mockFamilyStore{
		findFn: func(_ context.Context, family models.Family, _ models.Predicate, _ []repository.SortField, _, limit int64) ([]models.Record, error) {
			seen <- family
			assert.Equal(t, int64(18*searchFetchFactor), limit)
			return nil, nil
		},
	}

	_, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{Search: "aviator"})
	require.NoError(t, err)

	close(seen)
	families := map[models.Family]bool{}
	for f := range seen {
		families[f] = true
	}
	assert.Len(t, families, len(models.AllFamilies))
}

func TestSearchPartialFailureYieldsWarningNotError(t *testing.T) {
	store := &mockFamilyStore{
		findFn: func(_ context.Context, family models.Family, _ models.Predicate, _ []repository.SortField, _, _ int64) ([]models.Record, error) {
			switch family {
			case models.FamilyContactLens:
				return nil, errors.New("timeout")
			case models.FamilyGeneral:
				return []models.Record{
					models.GeneralProduct{ID: primitive.NewObjectID(), Name: "Aviator Classic", Price: 1200},
				}, nil
			default:
				return nil, nil
			}
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{Search: "aviator"})

	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "partial results: contactlens unavailable", page.Warning)
}

func TestSearchOrdersByRelevance(t *testing.T) {
	store := &mockFamilyStore{
		findFn: func(_ context.Context, family models.Family, _ models.Predicate, _ []repository.SortField, _, _ int64) ([]models.Record, error) {
			if family != models.FamilyGeneral {
				return nil, nil
			}
			return []models.Record{
				models.GeneralProduct{ID: primitive.NewObjectID(), Name: "Classic Aviator", Price: 900},
				models.GeneralProduct{ID: primitive.NewObjectID(), Name: "Round Frame", Price: 700},
				models.GeneralProduct{ID: primitive.NewObjectID(), Name: "Aviator Pro", Price: 1100},
			}, nil
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{Search: "aviator"})
	require.NoError(t, err)
	require.Len(t, page.Products, 3)

	assert.Equal(t, "Aviator Pro", page.Products[0].Title)
	assert.Equal(t, "Classic Aviator", page.Products[1].Title)
	assert.Equal(t, "Round Frame", page.Products[2].Title)
	assert.Empty(t, page.Warning)
}

func TestSearchWithNoResultsSerializesEmptyProducts(t *testing.T) {
	// Every family answers with zero records.
	store := &mockFamilyStore{}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{Search: "nothing"})
	require.NoError(t, err)

	require.NotNil(t, page.Products)
	assert.Empty(t, page.Products)

	payload, err := json.Marshal(page)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"products":[]`)
}

func TestSearchKeepsFamiliesWithoutFilteredField(t *testing.T) {
	store := &mockFamilyStore{
		findFn: func(_ context.Context, family models.Family, pred models.Predicate, _ []repository.SortField, _, _ int64) ([]models.Record, error) {
			if family != models.FamilyContactLens {
				return nil, nil
			}
			// Lenses define no gender field, so only the search term binds;
			// the family still participates instead of being excluded.
			assert.Len(t, pred.Terms, 1)
			return []models.Record{
				models.ContactLens{ID: primitive.NewObjectID(), Name: "Aqua Monthly", Price: 700},
			}, nil
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{
		Search: "aqua",
		Gender: "Men",
	})
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, models.FamilyContactLens, page.Products[0].Family)
}

func TestSearchFiltersPriceAfterNormalization(t *testing.T) {
	store := &mockFamilyStore{
		findFn: func(_ context.Context, family models.Family, pred models.Predicate, _ []repository.SortField, _, _ int64) ([]models.Record, error) {
			// The fan-out predicate carries the search term but never the
			// price range; prices are filtered on the derived value.
			for _, term := range pred.Terms {
				for _, match := range term.Any {
					for _, clause := range match.Clauses {
						assert.NotEqual(t, models.OpGte, clause.Op)
						assert.NotEqual(t, models.OpLte, clause.Op)
					}
				}
			}
			if family != models.FamilyMenShoe {
				return nil, nil
			}
			return []models.Record{
				models.MenShoe{ID: primitive.NewObjectID(), Title: "Runner Cheap", Price: 2000, FinalPrice: 500},
				models.MenShoe{ID: primitive.NewObjectID(), Title: "Runner Mid", Price: 1500},
			}, nil
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{
		Search:     "runner",
		PriceRange: "1000-2000",
	})
	require.NoError(t, err)

	// The first shoe sells at its finalPrice of 500, outside the range.
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Runner Mid", page.Products[0].Title)
	assert.Equal(t, int64(1), page.Pagination.TotalProducts)
}

func TestUnscopedBrowseUnionsPrimaryFamilies(t *testing.T) {
	// IDs chosen so the merged order interleaves the two families.
	general := models.GeneralProduct{ID: mustOID(t, "000000000000000000000002"), Name: "Frame", Price: 800}
	lens := models.ContactLens{ID: mustOID(t, "000000000000000000000001"), Name: "Monthly", Price: 600}

	var queried []models.Family
	store := &mockFamilyStore{
		countFn: func(_ context.Context, family models.Family, _ models.Predicate) (int64, error) {
			if family == models.FamilyGeneral {
				return 2, nil
			}
			return 1, nil
		},
		findFn: func(_ context.Context, family models.Family, _ models.Predicate, sort []repository.SortField, _, _ int64) ([]models.Record, error) {
			queried = append(queried, family)
			require.Len(t, sort, 1)
			assert.Equal(t, "_id", sort[0].Field)
			switch family {
			case models.FamilyGeneral:
				return []models.Record{general}, nil
			case models.FamilyContactLens:
				return []models.Record{lens}, nil
			}
			t.Fatalf("unexpected family %s", family)
			return nil, nil
		},
	}

	page, err := newTestService(store).ListProducts(context.Background(), models.CatalogQuery{})
	require.NoError(t, err)

	assert.Equal(t, []models.Family{models.FamilyGeneral, models.FamilyContactLens}, queried)
	require.Len(t, page.Products, 2)
	assert.Equal(t, models.FamilyContactLens, page.Products[0].Family)
	assert.Equal(t, models.FamilyGeneral, page.Products[1].Family)
	assert.Equal(t, int64(3), page.Pagination.TotalProducts)
}

func TestGetProductByIDProbesInEnumerationOrder(t *testing.T) {
	id := primitive.NewObjectID()
	var probed []models.Family
	store := &mockFamilyStore{
		findByIDFn: func(_ context.Context, family models.Family, _ string) (models.Record, error) {
			probed = append(probed, family)
			// The same ID exists in two families; the earlier one wins.
			switch family {
			case models.FamilyAccessory:
				return models.Accessory{ID: id, Name: "Case", Price: 400}, nil
			case models.FamilyBag:
				return models.Bag{ID: id, Name: "Tote", Price: 1500}, nil
			}
			return nil, repository.ErrRecordNotFound
		},
	}

	product, err := newTestService(store).GetProductByID(context.Background(), id.Hex())
	require.NoError(t, err)

	assert.Equal(t, models.FamilyAccessory, product.Family)
	// The probe stops at the first hit; bags are never consulted.
	assert.Equal(t, []models.Family{models.FamilyGeneral, models.FamilyContactLens, models.FamilyAccessory}, probed)
}

func TestGetProductByIDNotFound(t *testing.T) {
	store := &mockFamilyStore{}

	product, err := newTestService(store).GetProductByID(context.Background(), primitive.NewObjectID().Hex())

	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProductByIDBackendErrorPropagates(t *testing.T) {
	store := &mockFamilyStore{
		findByIDFn: func(_ context.Context, family models.Family, _ string) (models.Record, error) {
			if family == models.FamilyContactLens {
				return nil, errors.New("cursor error")
			}
			return nil, repository.ErrRecordNotFound
		},
	}

	_, err := newTestService(store).GetProductByID(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), "contactlens")
}

func TestBuildPaginationEdges(t *testing.T) {
	empty := buildPagination(1, 18, 0)
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPrevPage)

	exact := buildPagination(2, 18, 36)
	assert.Equal(t, 2, exact.TotalPages)
	assert.False(t, exact.HasNextPage)
	assert.True(t, exact.HasPrevPage)

	partial := buildPagination(1, 18, 19)
	assert.Equal(t, 2, partial.TotalPages)
	assert.True(t, partial.HasNextPage)
}

func TestBuildSortMapsFamilyFields(t *testing.T) {
	priceSort := buildSort(models.CatalogQuery{Sort: "price", Order: "desc"}, models.FamilyGeneral)
	require.Len(t, priceSort, 1)
	assert.Equal(t, "price", priceSort[0].Field)
	assert.True(t, priceSort[0].Desc)

	titleSort := buildSort(models.CatalogQuery{Sort: "title"}, models.FamilySkincare)
	require.Len(t, titleSort, 1)
	assert.Equal(t, "productName", titleSort[0].Field)

	defaultSort := buildSort(models.CatalogQuery{}, models.FamilyBag)
	require.Len(t, defaultSort, 2)
	assert.Equal(t, "subCategory", defaultSort[0].Field)
	assert.Equal(t, "_id", defaultSort[1].Field)
}

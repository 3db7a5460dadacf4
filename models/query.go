package models

// Reserved query keys handled explicitly by the predicate builder. Anything
// else in a request's query string lands in CatalogQuery.Extra and is
// interpreted as either a hierarchical facet key or a direct attribute path.
var ReservedQueryKeys = map[string]bool{
	"category":       true,
	"subCategory":    true,
	"subSubCategory": true,
	"search":         true,
	"priceRange":     true,
	"gender":         true,
	"color":          true,
	"brand":          true,
	"page":           true,
	"limit":          true,
	"sort":           true,
	"order":          true,
}

// CatalogQuery is the generic, family-agnostic query every listing, search
// and facet request is expressed in.
type CatalogQuery struct {
	Category       string `form:"category"`
	SubCategory    string `form:"subCategory"`
	SubSubCategory string `form:"subSubCategory"`
	Search         string `form:"search"`
	PriceRange     string `form:"priceRange"`
	Gender         string `form:"gender"`
	Color          string `form:"color"`
	Brand          string `form:"brand"`
	Sort           string `form:"sort"`
	Order          string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	Limit          int    `form:"limit" binding:"omitempty,min=1,max=100"`

	// Extra carries the non-reserved query keys. Map iteration order is
	// not defined; consumers that need determinism must sort the keys.
	Extra map[string]string `form:"-"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 18
)

// Normalize applies the pagination defaults in place.
func (q *CatalogQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

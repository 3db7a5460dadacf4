package models

// Attributes is the closed set of descriptive keys a canonical product may
// carry. Each family projects only the subset it defines; Gender and Color
// are always serialized because the facet UI reads them unconditionally.
type Attributes struct {
	Brand         string `json:"brand,omitempty"`
	Gender        string `json:"gender"`
	Color         string `json:"color"`
	FrameShape    string `json:"frameShape,omitempty"`
	FrameStyle    string `json:"frameStyle,omitempty"`
	Collection    string `json:"collection,omitempty"`
	Usage         string `json:"usage,omitempty"`
	Material      string `json:"material,omitempty"`
	Size          string `json:"size,omitempty"`
	Disposability string `json:"disposability,omitempty"`
	Power         string `json:"power,omitempty"`
	ColorOptions  string `json:"colorOptions,omitempty"`
	Solution      string `json:"solution,omitempty"`
	OuterMaterial string `json:"outerMaterial,omitempty"`
	SoleMaterial  string `json:"soleMaterial,omitempty"`
	ClosureType   string `json:"closureType,omitempty"`
	Warranty      string `json:"warranty,omitempty"`
}

// Product is the canonical representation every family record is projected
// into for listing, search and detail responses. It is built fresh on every
// request and never persisted.
//
// Invariants: OriginalPrice >= Price whenever DiscountPercent > 0, Images
// holds only non-empty strings, and Family is always set.
type Product struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Price           float64    `json:"price"`
	OriginalPrice   float64    `json:"originalPrice"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category,omitempty"`
	SubCategory     string     `json:"subCategory,omitempty"`
	SubSubCategory  string     `json:"subSubCategory,omitempty"`
	Attributes      Attributes `json:"attributes"`
	Images          []string   `json:"images"`
	Rating          float64    `json:"rating"`
	DiscountPercent float64    `json:"discountPercent"`
	Family          Family     `json:"family"`
}

// Pagination is the metadata block returned with every product listing.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalProducts   int64 `json:"totalProducts"`
	ProductsPerPage int   `json:"productsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPrevPage     bool  `json:"hasPrevPage"`
}

// Facets holds grouped match counts for the filter UI, scoped to the same
// predicate context as the listing they accompany.
type Facets struct {
	PriceBuckets  map[string]int64 `json:"priceBuckets"`
	Genders       map[string]int64 `json:"genders"`
	Colors        map[string]int64 `json:"colors"`
	SubCategories map[string]int64 `json:"subCategories"`
}

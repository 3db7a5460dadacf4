package services

import "github.com/digitalbuddiesspune/stylishtouches-sub001/models"

// familySchema records where each family keeps the fields the generic query
// layer cares about. Empty means the family does not define the field and
// the corresponding filter or facet is skipped for it.
type familySchema struct {
	titleField          string
	priceFields         []string // ordered; multiple entries are OR-ed in predicates
	genderField         string
	colorField          string
	brandField          string
	subCategoryField    string
	subSubCategoryField string
	// attrContainer prefixes bare attribute names ("gender" ->
	// "attributes.gender") for the nested-document families.
	attrContainer string
}

var familySchemas = map[models.Family]familySchema{
	models.FamilyGeneral: {
		titleField:          "name",
		priceFields:         []string{"price", "finalPrice"},
		genderField:         "attributes.gender",
		colorField:          "attributes.color",
		brandField:          "attributes.brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
		attrContainer:       "attributes",
	},
	models.FamilyContactLens: {
		titleField:          "name",
		priceFields:         []string{"price", "finalPrice"},
		colorField:          "attributes.colorOptions",
		brandField:          "attributes.brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
		attrContainer:       "attributes",
	},
	models.FamilyAccessory: {
		titleField:          "name",
		priceFields:         []string{"price"},
		genderField:         "gender",
		brandField:          "brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
	},
	models.FamilySkincare: {
		titleField:          "productName",
		priceFields:         []string{"price"},
		genderField:         "gender",
		brandField:          "brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
	},
	models.FamilyBag: {
		titleField:          "name",
		priceFields:         []string{"price"},
		genderField:         "gender",
		brandField:          "brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
	},
	models.FamilyMenShoe: {
		titleField:          "title",
		priceFields:         []string{"price", "finalPrice"},
		genderField:         "gender",
		colorField:          "color",
		brandField:          "brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
	},
	models.FamilyWomenShoe: {
		titleField:          "title",
		priceFields:         []string{"price", "finalPrice"},
		genderField:         "gender",
		colorField:          "color",
		brandField:          "brand",
		subCategoryField:    "subCategory",
		subSubCategoryField: "subSubCategory",
	},
}

// generalCategoryValues maps squashed general-family aliases to the stored
// category value, for aliases that name a concrete category rather than the
// whole family.
var generalCategoryValues = map[string]string{
	"eyeglasses":      "Eyeglasses",
	"sunglasses":      "Sunglasses",
	"computerglasses": "Computer Glasses",
}

// hierarchicalFacets is the closed set of facet keys that may arrive as
// plain query parameters. Each maps to the bare attribute name the value is
// matched against (resolved per family through attrPath).
var hierarchicalFacets = map[string]string{
	"Gender":        "gender",
	"Collection":    "collection",
	"Shape":         "frameShape",
	"Style":         "frameStyle",
	"Brands":        "brand",
	"Usage":         "usage",
	"Disposability": "disposability",
	"Power":         "power",
	"Colors":        "colorOptions",
	"Solution":      "solution",
}

func (s familySchema) attrPath(name string) string {
	if s.attrContainer == "" {
		return name
	}
	return s.attrContainer + "." + name
}

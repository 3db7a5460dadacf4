package models

import "strings"

// Family identifies which of the seven product collections a record came
// from. Record IDs are only unique within a family, so lookups always carry
// the family tag alongside the ID.
type Family string

const (
	FamilyGeneral     Family = "general"
	FamilyContactLens Family = "contactlens"
	FamilyAccessory   Family = "accessory"
	FamilySkincare    Family = "skincare"
	FamilyBag         Family = "bag"
	FamilyMenShoe     Family = "menshoe"
	FamilyWomenShoe   Family = "womenshoe"
)

// AllFamilies is the fixed enumeration order used everywhere a cross-family
// walk needs to be deterministic: the ID probe sequence, the search fan-out
// merge, and facet unions. Changing this order changes the public contract
// of GetProductByID for colliding IDs.
var AllFamilies = []Family{
	FamilyGeneral,
	FamilyContactLens,
	FamilyAccessory,
	FamilySkincare,
	FamilyBag,
	FamilyMenShoe,
	FamilyWomenShoe,
}

// PrimaryFamilies are the only families included in the unscoped browse path
// (no category, no search term). The five auxiliary families are reachable
// through their category or through search.
var PrimaryFamilies = []Family{FamilyGeneral, FamilyContactLens}

// categoryAliases maps a squashed category string (lower-cased, apostrophes
// and whitespace removed) to its family. Shoe entries carry the plural,
// singular and apostrophe variants seen in real storefront URLs.
var categoryAliases = map[string]Family{
	"products":        FamilyGeneral,
	"glasses":         FamilyGeneral,
	"eyeglasses":      FamilyGeneral,
	"sunglasses":      FamilyGeneral,
	"computerglasses": FamilyGeneral,
	"contactlenses":   FamilyContactLens,
	"contactlens":     FamilyContactLens,
	"accessories":     FamilyAccessory,
	"accessory":       FamilyAccessory,
	"skincare":        FamilySkincare,
	"bags":            FamilyBag,
	"bag":             FamilyBag,
	"mensshoes":       FamilyMenShoe,
	"menshoes":        FamilyMenShoe,
	"mensshoe":        FamilyMenShoe,
	"menshoe":         FamilyMenShoe,
	"womensshoes":     FamilyWomenShoe,
	"womenshoes":      FamilyWomenShoe,
	"womensshoe":      FamilyWomenShoe,
	"womenshoe":       FamilyWomenShoe,
}

// ParseFamily resolves a category string to a family. Matching is
// case-insensitive and tolerant of pluralization and apostrophe variants
// ("Men's Shoes", "mens shoes" and "menshoe" all resolve to FamilyMenShoe).
// An unknown category reports false rather than an error so callers can fall
// through to the cross-family paths.
func ParseFamily(category string) (Family, bool) {
	key := strings.ToLower(category)
	key = strings.ReplaceAll(key, "'", "")
	key = strings.ReplaceAll(key, "’", "")
	key = strings.Join(strings.Fields(key), "")
	fam, ok := categoryAliases[key]
	return fam, ok
}

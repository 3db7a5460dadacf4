package services

import (
	"math"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

// Normalize projects a raw family record into the canonical product shape.
// It is pure and total: missing optional fields become defaults, never
// errors. Dispatch is by the record's concrete type, so each family keeps
// its own typed mapping.
func Normalize(rec models.Record) models.Product {
	switch r := rec.(type) {
	case models.GeneralProduct:
		return normalizeGeneral(r)
	case models.ContactLens:
		return normalizeContactLens(r)
	case models.Accessory:
		return normalizeAccessory(r)
	case models.Skincare:
		return normalizeSkincare(r)
	case models.Bag:
		return normalizeBag(r)
	case models.MenShoe:
		return normalizeMenShoe(r)
	case models.WomenShoe:
		return normalizeWomenShoe(r)
	}
	return models.Product{Family: rec.RecordFamily(), ID: rec.RecordID()}
}

// NormalizeAll maps a slice of records, preserving order.
func NormalizeAll(records []models.Record) []models.Product {
	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, Normalize(rec))
	}
	return products
}

func normalizeGeneral(r models.GeneralProduct) models.Product {
	price, original := derivePrices(r.Price, r.FinalPrice, r.Discount)
	return models.Product{
		ID:             r.ID.Hex(),
		Title:          r.Name,
		Price:          price,
		OriginalPrice:  original,
		Description:    r.Description,
		Category:       r.Category,
		SubCategory:    r.SubCategory,
		SubSubCategory: r.SubSubCategory,
		Attributes: models.Attributes{
			Brand:      r.Attributes.Brand,
			Gender:     r.Attributes.Gender,
			Color:      r.Attributes.Color,
			FrameShape: r.Attributes.FrameShape,
			FrameStyle: r.Attributes.FrameStyle,
			Collection: r.Attributes.Collection,
			Usage:      r.Attributes.Usage,
			Material:   r.Attributes.Material,
			Size:       r.Attributes.Size,
		},
		Images:          resolveImages(r.Images, r.Image1, r.Image2, r.AdditionalImages, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilyGeneral,
	}
}

func normalizeContactLens(r models.ContactLens) models.Product {
	price, original := derivePrices(r.Price, r.FinalPrice, r.Discount)
	return models.Product{
		ID:             r.ID.Hex(),
		Title:          r.Name,
		Price:          price,
		OriginalPrice:  original,
		Description:    r.Description,
		Category:       "Contact Lenses",
		SubCategory:    r.SubCategory,
		SubSubCategory: r.SubSubCategory,
		Attributes: models.Attributes{
			Brand:         r.Attributes.Brand,
			Disposability: r.Attributes.Disposability,
			Power:         r.Attributes.Power,
			ColorOptions:  r.Attributes.ColorOptions,
			Solution:      r.Attributes.Solution,
		},
		Images:          resolveImages(r.Images, "", "", nil, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilyContactLens,
	}
}

func normalizeAccessory(r models.Accessory) models.Product {
	price, original := derivePrices(r.Price, 0, r.Discount)
	category := r.Category
	if category == "" {
		category = "Accessories"
	}
	return models.Product{
		ID:            r.ID.Hex(),
		Title:         r.Name,
		Price:         price,
		OriginalPrice: original,
		Description:   r.Description,
		Category:      category,
		SubCategory:   r.SubCategory,
		Attributes: models.Attributes{
			Brand:  r.Brand,
			Gender: r.Gender,
		},
		Images:          resolveImages(r.Images, "", "", nil, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilyAccessory,
	}
}

func normalizeSkincare(r models.Skincare) models.Product {
	price, original := derivePrices(r.Price, 0, r.Discount)
	title := r.ProductName
	if title == "" {
		title = r.Name
	}
	return models.Product{
		ID:            r.ID.Hex(),
		Title:         title,
		Price:         price,
		OriginalPrice: original,
		Description:   r.Description,
		Category:      "Skincare",
		SubCategory:   r.SubCategory,
		Attributes: models.Attributes{
			Brand:  r.Brand,
			Gender: r.Gender,
		},
		Images:          resolveImages(r.Images, "", "", nil, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilySkincare,
	}
}

func normalizeBag(r models.Bag) models.Product {
	price, original := derivePrices(r.Price, 0, r.Discount)
	return models.Product{
		ID:            r.ID.Hex(),
		Title:         r.Name,
		Price:         price,
		OriginalPrice: original,
		Description:   r.Description,
		Category:      "Bags",
		SubCategory:   r.SubCategory,
		Attributes: models.Attributes{
			Brand:  r.Brand,
			Gender: r.Gender,
		},
		Images:          resolveImages(r.Images, "", "", nil, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilyBag,
	}
}

func normalizeMenShoe(r models.MenShoe) models.Product {
	price, original := derivePrices(r.Price, r.FinalPrice, r.Discount)
	return models.Product{
		ID:              r.ID.Hex(),
		Title:           r.Title,
		Price:           price,
		OriginalPrice:   original,
		Description:     r.Description,
		Category:        "Men's Shoes",
		SubCategory:     r.SubCategory,
		SubSubCategory:  r.SubSubCategory,
		Attributes:      shoeAttributes(r.Brand, r.Gender, r.Color, r.OuterMaterial, r.SoleMaterial, r.ClosureType, r.Warranty),
		Images:          resolveImages(r.Images, "", "", nil, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilyMenShoe,
	}
}

func normalizeWomenShoe(r models.WomenShoe) models.Product {
	price, original := derivePrices(r.Price, r.FinalPrice, r.Discount)
	return models.Product{
		ID:              r.ID.Hex(),
		Title:           r.Title,
		Price:           price,
		OriginalPrice:   original,
		Description:     r.Description,
		Category:        "Women's Shoes",
		SubCategory:     r.SubCategory,
		SubSubCategory:  r.SubSubCategory,
		Attributes:      shoeAttributes(r.Brand, r.Gender, r.Color, r.OuterMaterial, r.SoleMaterial, r.ClosureType, r.Warranty),
		Images:          resolveImages(r.Images, "", "", nil, r.Thumbnail, r.ImageURL),
		Rating:          clampRating(r.Rating),
		DiscountPercent: clampDiscount(r.Discount),
		Family:          models.FamilyWomenShoe,
	}
}

func shoeAttributes(brand, gender, color, outer, sole, closure, warranty string) models.Attributes {
	return models.Attributes{
		Brand:         brand,
		Gender:        gender,
		Color:         color,
		OuterMaterial: outer,
		SoleMaterial:  sole,
		ClosureType:   closure,
		Warranty:      warranty,
	}
}

// derivePrices resolves the customer-facing price and the MRP. The stored
// price is already discounted, so when no MRP is stored it is
// back-calculated from the discount percentage.
func derivePrices(price, finalPrice, discount float64) (final, original float64) {
	final = finalPrice
	if final == 0 {
		final = price
	}
	if final < 0 {
		final = 0
	}

	original = final
	if discount > 0 && discount < 100 {
		original = math.Round(final / (1 - discount/100))
	}
	return final, original
}

// resolveImages walks the image sources in precedence order and returns the
// first non-empty one; later sources are never merged in.
func resolveImages(images []string, image1, image2 string, additional []string, thumbnail, imageURL string) []string {
	if list := nonEmpty(images); len(list) > 0 {
		return list
	}

	legacy := make([]string, 0, 2+len(additional))
	legacy = append(legacy, image1, image2)
	legacy = append(legacy, additional...)
	if list := nonEmpty(legacy); len(list) > 0 {
		return list
	}

	if thumbnail != "" {
		return []string{thumbnail}
	}
	if imageURL != "" {
		return []string{imageURL}
	}
	return []string{}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func clampDiscount(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}

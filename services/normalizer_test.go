package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

func TestNormalizeBackCalculatesOriginalPrice(t *testing.T) {
	rec := models.Accessory{
		ID:       primitive.NewObjectID(),
		Name:     "Leather Case",
		Price:    1000,
		Discount: 20,
	}

	product := Normalize(rec)

	assert.Equal(t, float64(1000), product.Price)
	assert.Equal(t, float64(1250), product.OriginalPrice)
	assert.Equal(t, float64(20), product.DiscountPercent)
}

func TestNormalizeOriginalPriceNeverBelowPrice(t *testing.T) {
	records := []models.Record{
		models.GeneralProduct{ID: primitive.NewObjectID(), Name: "Aviator", Price: 2400, Discount: 35},
		models.ContactLens{ID: primitive.NewObjectID(), Name: "Monthly Clear", Price: 900, FinalPrice: 850, Discount: 10},
		models.Bag{ID: primitive.NewObjectID(), Name: "Tote", Price: 1500, Discount: 5},
		models.MenShoe{ID: primitive.NewObjectID(), Title: "Runner", Price: 3200, FinalPrice: 2999, Discount: 40},
	}

	for _, rec := range records {
		product := Normalize(rec)
		assert.GreaterOrEqual(t, product.OriginalPrice, product.Price,
			"family %s", product.Family)
	}
}

func TestNormalizeWithoutDiscountKeepsPrice(t *testing.T) {
	rec := models.Bag{ID: primitive.NewObjectID(), Name: "Duffel", Price: 2200}

	product := Normalize(rec)

	assert.Equal(t, float64(2200), product.Price)
	assert.Equal(t, float64(2200), product.OriginalPrice)
	assert.Zero(t, product.DiscountPercent)
}

func TestNormalizePrefersFinalPrice(t *testing.T) {
	rec := models.GeneralProduct{
		ID:         primitive.NewObjectID(),
		Name:       "Round Frame",
		Price:      1800,
		FinalPrice: 1500,
	}

	assert.Equal(t, float64(1500), Normalize(rec).Price)
}

func TestNormalizeImagePrecedence(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name string
		rec  models.GeneralProduct
		want []string
	}{
		{
			name: "images list wins and is filtered",
			rec: models.GeneralProduct{
				ID:     id,
				Images: []string{"a.jpg", "", "b.jpg"},
				Image1: "legacy1.jpg", Thumbnail: "thumb.jpg", ImageURL: "single.jpg",
			},
			want: []string{"a.jpg", "b.jpg"},
		},
		{
			name: "legacy dual-image structure is second",
			rec: models.GeneralProduct{
				ID:     id,
				Image1: "legacy1.jpg", Image2: "legacy2.jpg",
				AdditionalImages: []string{"extra.jpg"},
				Thumbnail:        "thumb.jpg",
			},
			want: []string{"legacy1.jpg", "legacy2.jpg", "extra.jpg"},
		},
		{
			name: "thumbnail before single image url",
			rec:  models.GeneralProduct{ID: id, Thumbnail: "thumb.jpg", ImageURL: "single.jpg"},
			want: []string{"thumb.jpg"},
		},
		{
			name: "single image url is the last fallback",
			rec:  models.GeneralProduct{ID: id, ImageURL: "single.jpg"},
			want: []string{"single.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.rec).Images)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	rec := models.WomenShoe{
		ID:          primitive.NewObjectID(),
		Title:       "Block Heel",
		Price:       2600,
		Discount:    15,
		SubCategory: "Heels",
		Color:       "Black",
		Gender:      "Women",
	}

	first := Normalize(rec)
	second := Normalize(rec)

	assert.Equal(t, first, second)
}

func TestNormalizeSkincareTitlePrecedence(t *testing.T) {
	withProductName := models.Skincare{
		ID:          primitive.NewObjectID(),
		ProductName: "Vitamin C Serum",
		Name:        "serum-001",
		Price:       700,
	}
	assert.Equal(t, "Vitamin C Serum", Normalize(withProductName).Title)

	nameOnly := models.Skincare{ID: primitive.NewObjectID(), Name: "Night Cream", Price: 550}
	assert.Equal(t, "Night Cream", Normalize(nameOnly).Title)
}

func TestNormalizeProjectsOnlyFamilyAttributes(t *testing.T) {
	shoe := Normalize(models.MenShoe{
		ID:            primitive.NewObjectID(),
		Title:         "Derby",
		Price:         3400,
		Color:         "Brown",
		OuterMaterial: "Leather",
		SoleMaterial:  "Rubber",
		ClosureType:   "Lace-Up",
		Warranty:      "6 months",
		Gender:        "Men",
	})

	assert.Equal(t, "Brown", shoe.Attributes.Color)
	assert.Equal(t, "Leather", shoe.Attributes.OuterMaterial)
	assert.Empty(t, shoe.Attributes.FrameShape)
	assert.Empty(t, shoe.Attributes.Disposability)

	bag := Normalize(models.Bag{ID: primitive.NewObjectID(), Name: "Satchel", Price: 1200, Brand: "Urban", Gender: "Women"})
	assert.Equal(t, "Urban", bag.Attributes.Brand)
	assert.Empty(t, bag.Attributes.Color)
	assert.Empty(t, bag.Attributes.OuterMaterial)
}

func TestNormalizeAlwaysSetsFamily(t *testing.T) {
	records := []models.Record{
		models.GeneralProduct{ID: primitive.NewObjectID()},
		models.ContactLens{ID: primitive.NewObjectID()},
		models.Accessory{ID: primitive.NewObjectID()},
		models.Skincare{ID: primitive.NewObjectID()},
		models.Bag{ID: primitive.NewObjectID()},
		models.MenShoe{ID: primitive.NewObjectID()},
		models.WomenShoe{ID: primitive.NewObjectID()},
	}

	seen := map[models.Family]bool{}
	for _, rec := range records {
		product := Normalize(rec)
		assert.NotEmpty(t, product.Family)
		assert.NotNil(t, product.Images)
		seen[product.Family] = true
	}
	assert.Len(t, seen, len(models.AllFamilies))
}

func TestNormalizeRatingAndDiscountClamped(t *testing.T) {
	product := Normalize(models.GeneralProduct{
		ID:       primitive.NewObjectID(),
		Name:     "Wayfarer",
		Price:    1000,
		Rating:   9.5,
		Discount: 140,
	})

	assert.Equal(t, float64(5), product.Rating)
	assert.Equal(t, float64(100), product.DiscountPercent)
	// A nonsense discount must not produce an MRP below the price.
	assert.GreaterOrEqual(t, product.OriginalPrice, product.Price)
}

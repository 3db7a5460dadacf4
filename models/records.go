package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Record is the tagged-variant interface over the seven raw collection
// shapes. The shapes share no common schema; everything downstream goes
// through the normalizers in the services package.
type Record interface {
	RecordFamily() Family
	RecordID() string
}

// GeneralAttributes is the descriptive block carried by eyewear documents.
type GeneralAttributes struct {
	Brand      string `json:"brand,omitempty" bson:"brand,omitempty"`
	Gender     string `json:"gender,omitempty" bson:"gender,omitempty"`
	Color      string `json:"color,omitempty" bson:"color,omitempty"`
	FrameShape string `json:"frameShape,omitempty" bson:"frameShape,omitempty"`
	FrameStyle string `json:"frameStyle,omitempty" bson:"frameStyle,omitempty"`
	Collection string `json:"collection,omitempty" bson:"collection,omitempty"`
	Usage      string `json:"usage,omitempty" bson:"usage,omitempty"`
	Material   string `json:"material,omitempty" bson:"material,omitempty"`
	Size       string `json:"size,omitempty" bson:"size,omitempty"`
}

// GeneralProduct is the richest shape: eyeglasses, sunglasses and the other
// general optical products. It still carries the legacy dual-image fields
// (image1/image2/additionalImages) next to the newer images array.
type GeneralProduct struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Price            float64            `json:"price" bson:"price"`
	FinalPrice       float64            `json:"finalPrice,omitempty" bson:"finalPrice,omitempty"`
	Discount         float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating           float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Category         string             `json:"category,omitempty" bson:"category,omitempty"`
	SubCategory      string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	SubSubCategory   string             `json:"subSubCategory,omitempty" bson:"subSubCategory,omitempty"`
	Attributes       GeneralAttributes  `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Images           []string           `json:"images,omitempty" bson:"images,omitempty"`
	Image1           string             `json:"image1,omitempty" bson:"image1,omitempty"`
	Image2           string             `json:"image2,omitempty" bson:"image2,omitempty"`
	AdditionalImages []string           `json:"additionalImages,omitempty" bson:"additionalImages,omitempty"`
	Thumbnail        string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL         string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (p GeneralProduct) RecordFamily() Family { return FamilyGeneral }
func (p GeneralProduct) RecordID() string     { return p.ID.Hex() }

// LensAttributes describes a contact-lens document.
type LensAttributes struct {
	Brand         string `json:"brand,omitempty" bson:"brand,omitempty"`
	Disposability string `json:"disposability,omitempty" bson:"disposability,omitempty"`
	Power         string `json:"power,omitempty" bson:"power,omitempty"`
	ColorOptions  string `json:"colorOptions,omitempty" bson:"colorOptions,omitempty"`
	Solution      string `json:"solution,omitempty" bson:"solution,omitempty"`
}

type ContactLens struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64            `json:"price" bson:"price"`
	FinalPrice     float64            `json:"finalPrice,omitempty" bson:"finalPrice,omitempty"`
	Discount       float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating         float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	SubCategory    string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	SubSubCategory string             `json:"subSubCategory,omitempty" bson:"subSubCategory,omitempty"`
	Attributes     LensAttributes     `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Images         []string           `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnail      string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (l ContactLens) RecordFamily() Family { return FamilyContactLens }
func (l ContactLens) RecordID() string     { return l.ID.Hex() }

// Accessory documents are flat: brand and gender sit at the top level and
// the category field is always "Accessories".
type Accessory struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Discount    float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	SubCategory string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Brand       string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (a Accessory) RecordFamily() Family { return FamilyAccessory }
func (a Accessory) RecordID() string     { return a.ID.Hex() }

// Skincare documents name the product in productName; some older rows only
// filled name, so title derivation prefers productName and falls back.
type Skincare struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ProductName string             `json:"productName,omitempty" bson:"productName,omitempty"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Discount    float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	SubCategory string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Brand       string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (s Skincare) RecordFamily() Family { return FamilySkincare }
func (s Skincare) RecordID() string     { return s.ID.Hex() }

type Bag struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Discount    float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	SubCategory string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Brand       string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (b Bag) RecordFamily() Family { return FamilyBag }
func (b Bag) RecordID() string     { return b.ID.Hex() }

// MenShoe and WomenShoe share a shape but live in separate collections.
// Shoes are titled through the title field directly and expose the
// material/closure/warranty block the other families lack.
type MenShoe struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64            `json:"price" bson:"price"`
	FinalPrice     float64            `json:"finalPrice,omitempty" bson:"finalPrice,omitempty"`
	Discount       float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating         float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	SubCategory    string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	SubSubCategory string             `json:"subSubCategory,omitempty" bson:"subSubCategory,omitempty"`
	Brand          string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Gender         string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Color          string             `json:"color,omitempty" bson:"color,omitempty"`
	OuterMaterial  string             `json:"outerMaterial,omitempty" bson:"outerMaterial,omitempty"`
	SoleMaterial   string             `json:"soleMaterial,omitempty" bson:"soleMaterial,omitempty"`
	ClosureType    string             `json:"closureType,omitempty" bson:"closureType,omitempty"`
	Warranty       string             `json:"warranty,omitempty" bson:"warranty,omitempty"`
	Images         []string           `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnail      string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (m MenShoe) RecordFamily() Family { return FamilyMenShoe }
func (m MenShoe) RecordID() string     { return m.ID.Hex() }

type WomenShoe struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64            `json:"price" bson:"price"`
	FinalPrice     float64            `json:"finalPrice,omitempty" bson:"finalPrice,omitempty"`
	Discount       float64            `json:"discount,omitempty" bson:"discount,omitempty"`
	Rating         float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	SubCategory    string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	SubSubCategory string             `json:"subSubCategory,omitempty" bson:"subSubCategory,omitempty"`
	Brand          string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Gender         string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Color          string             `json:"color,omitempty" bson:"color,omitempty"`
	OuterMaterial  string             `json:"outerMaterial,omitempty" bson:"outerMaterial,omitempty"`
	SoleMaterial   string             `json:"soleMaterial,omitempty" bson:"soleMaterial,omitempty"`
	ClosureType    string             `json:"closureType,omitempty" bson:"closureType,omitempty"`
	Warranty       string             `json:"warranty,omitempty" bson:"warranty,omitempty"`
	Images         []string           `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnail      string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

func (w WomenShoe) RecordFamily() Family { return FamilyWomenShoe }
func (w WomenShoe) RecordID() string     { return w.ID.Hex() }

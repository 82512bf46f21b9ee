package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand owns its embedded products; products have no lifecycle outside the
// brand document. BrandID is assigned monotonically (max existing + 1) and the
// name is unique case-insensitively.
type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BrandID     int                `bson:"brandId" json:"brandId"`
	Name        string             `bson:"name" json:"name"`
	Logo        string             `bson:"logo" json:"logo"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Specialties StringList         `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Products    []Product          `bson:"products" json:"products"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Product is embedded in Brand. ProductID is unique across the catalog by
// convention only; nothing enforces it globally. RelatedProducts holds weak
// productId references resolved at read time against the same brand.
// AlternativeProducts are denormalized copies, not references.
type Product struct {
	ProductID           string               `bson:"productId" json:"productId"`
	Name                string               `bson:"name" json:"name"`
	Category            string               `bson:"category,omitempty" json:"category,omitempty"`
	Type                string               `bson:"type,omitempty" json:"type,omitempty"`
	Description         string               `bson:"description,omitempty" json:"description,omitempty"`
	Specifications      map[string]string    `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Price               float64              `bson:"price" json:"price"`
	Stock               int                  `bson:"stock" json:"stock"`
	Image               string               `bson:"image,omitempty" json:"image,omitempty"`
	Datasheet           string               `bson:"datasheet,omitempty" json:"datasheet,omitempty"`
	Applications        StringList           `bson:"applications,omitempty" json:"applications,omitempty"`
	RelatedProducts     []string             `bson:"relatedProducts,omitempty" json:"relatedProducts,omitempty"`
	AlternativeProducts []AlternativeProduct `bson:"alternativeProducts,omitempty" json:"alternativeProducts,omitempty"`
}

// AlternativeProduct is an inlined cross-brand summary. It does not require the
// other brand to exist or be queried.
type AlternativeProduct struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	BrandName string  `bson:"brandName,omitempty" json:"brandName,omitempty"`
	Category  string  `bson:"category,omitempty" json:"category,omitempty"`
	Price     float64 `bson:"price" json:"price"`
	Stock     int     `bson:"stock" json:"stock"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogProduct lives in the top-level products collection used by search and
// browse. It is a second, denormalized representation of products: nothing in
// this service keeps it in sync with the brand-embedded copies.
//
// Brand/BrandName and Manufacturer/ManufacturerName are parallel fields: a
// product may be identified by a raw code or a display name, and filters must
// match either.
type CatalogProduct struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Brand            string             `bson:"brand,omitempty" json:"brand,omitempty"`
	BrandName        string             `bson:"brandName,omitempty" json:"brandName,omitempty"`
	Manufacturer     string             `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	ManufacturerName string             `bson:"manufacturerName,omitempty" json:"manufacturerName,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	ParentCategory   string             `bson:"parentCategory,omitempty" json:"parentCategory,omitempty"`
	Type             string             `bson:"type,omitempty" json:"type,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	Features         StringList         `bson:"features,omitempty" json:"features,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

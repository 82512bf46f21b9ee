package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is an independent aggregate, not owned by Brand or Product.
type Category struct {
	ID               primitive.ObjectID    `bson:"_id,omitempty" json:"_id,omitempty"`
	CategoryID       int                   `bson:"id" json:"id"`
	Name             string                `bson:"name" json:"name"`
	Icon             string                `bson:"icon,omitempty" json:"icon,omitempty"`
	Link             string                `bson:"link,omitempty" json:"link,omitempty"`
	Subcategories    []Subcategory         `bson:"subcategories,omitempty" json:"subcategories,omitempty"`
	TopManufacturers []ManufacturerSummary `bson:"topManufacturers,omitempty" json:"topManufacturers,omitempty"`
	PopularParts     []PopularPart         `bson:"popularParts,omitempty" json:"popularParts,omitempty"`
	Details          CategoryDetails       `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt        time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time             `bson:"updatedAt" json:"updatedAt"`
}

type Subcategory struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`
}

type ManufacturerSummary struct {
	Name        string     `bson:"name" json:"name"`
	Logo        string     `bson:"logo,omitempty" json:"logo,omitempty"`
	Specialties StringList `bson:"specialties,omitempty" json:"specialties,omitempty"`
}

// PopularPart keeps price as the display string the storefront renders.
type PopularPart struct {
	PartNumber string `bson:"partNumber" json:"partNumber"`
	Popularity int    `bson:"popularity" json:"popularity"`
	Price      string `bson:"price,omitempty" json:"price,omitempty"`
	InStock    bool   `bson:"inStock" json:"inStock"`
	Image      string `bson:"image,omitempty" json:"image,omitempty"`
}

type CategoryDetails struct {
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	Applications StringList `bson:"applications,omitempty" json:"applications,omitempty"`
	KeyFeatures  StringList `bson:"keyFeatures,omitempty" json:"keyFeatures,omitempty"`
	MarketInfo   string     `bson:"marketInfo,omitempty" json:"marketInfo,omitempty"`
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zohir26/IC-sub001/internal/catalog"
	"github.com/zohir26/IC-sub001/internal/models"
)

type BrandRequest struct {
	Name        string           `json:"name" binding:"required"`
	Logo        string           `json:"logo" binding:"required"`
	Description string           `json:"description"`
	Website     string           `json:"website"`
	Specialties []string         `json:"specialties"`
	Products    []models.Product `json:"products"`
}

// validateBrandProducts checks the nested entries a whole-document write would
// persist. Runs before any store write so a rejected payload cannot leave a
// partial document behind.
func validateBrandProducts(products []models.Product) []string {
	details := make([]string, 0)
	for i, p := range products {
		if strings.TrimSpace(p.ProductID) == "" {
			details = append(details, fmt.Sprintf("products[%d].productId is required", i))
		}
		if strings.TrimSpace(p.Name) == "" {
			details = append(details, fmt.Sprintf("products[%d].name is required", i))
		}
		if p.Price < 0 {
			details = append(details, fmt.Sprintf("products[%d].price must be zero or greater", i))
		}
		if p.Stock < 0 {
			details = append(details, fmt.Sprintf("products[%d].stock must be zero or greater", i))
		}
		for j, alt := range p.AlternativeProducts {
			if strings.TrimSpace(alt.ProductID) == "" {
				details = append(details, fmt.Sprintf("products[%d].alternativeProducts[%d].productId is required", i, j))
			}
			if strings.TrimSpace(alt.Name) == "" {
				details = append(details, fmt.Sprintf("products[%d].alternativeProducts[%d].name is required", i, j))
			}
		}
	}
	return details
}

func caseInsensitiveNameFilter(name string) bson.M {
	pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(name)) + "$"
	return bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}}
}

// nextBrandID assigns brandId monotonically: max existing + 1, starting at 1.
func nextBrandID(ctx context.Context, brands *mongo.Collection) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "brandId", Value: -1}}).
		SetProjection(bson.M{"brandId": 1})

	var top struct {
		BrandID int `bson:"brandId"`
	}
	err := brands.FindOne(ctx, bson.M{}, opts).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return top.BrandID + 1, nil
}

func ListBrands(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/brands"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "brandId", Value: 1}})
		cursor, err := db.Collection("brands").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		brands := make([]models.Brand, 0)
		if err := cursor.All(ctx, &brands); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    brands,
			"count":   len(brands),
		})
	}
}

func CreateBrand(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/brands"
		defer handlePanic(c, route)

		var req BrandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}
		if details := validateBrandProducts(req.Products); len(details) > 0 {
			respondValidationError(c, route, nil, details)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		brands := db.Collection("brands")
		name := strings.TrimSpace(req.Name)

		// Proactive duplicate check; the collated unique index is the second
		// line of defense against a racing create.
		count, err := brands.CountDocuments(ctx, caseInsensitiveNameFilter(name))
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, http.StatusBadRequest, route, fmt.Sprintf("brand %q already exists", name))
			return
		}

		brandID, err := nextBrandID(ctx, brands)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		now := time.Now()
		products := req.Products
		if products == nil {
			products = []models.Product{}
		}

		brand := models.Brand{
			BrandID:     brandID,
			Name:        name,
			Logo:        strings.TrimSpace(req.Logo),
			Description: strings.TrimSpace(req.Description),
			Website:     strings.TrimSpace(req.Website),
			Specialties: models.StringList(req.Specialties),
			Products:    products,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		result, err := brands.InsertOne(ctx, brand)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, http.StatusBadRequest, route, fmt.Sprintf("brand %q already exists", name))
				return
			}
			respondInternalError(c, route, err)
			return
		}

		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			brand.ID = oid
		}
		respondData(c, http.StatusCreated, brand)
	}
}

func GetBrand(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/brands/:brandId"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		brand, err := catalog.ResolveBrand(ctx, db.Collection("brands"), c.Param("brandId"))
		if errors.Is(err, catalog.ErrBrandNotFound) {
			respondError(c, http.StatusNotFound, route, "brand not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    brand,
			"stats":   catalog.SummarizeProducts(brand.Products),
		})
	}
}

// UpdateBrand is a full replace: the request body supersedes every mutable
// field, including the whole products list.
func UpdateBrand(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/brands/:brandId"
		defer handlePanic(c, route)

		var req BrandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}
		if details := validateBrandProducts(req.Products); len(details) > 0 {
			respondValidationError(c, route, nil, details)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		brands := db.Collection("brands")
		brand, err := catalog.ResolveBrand(ctx, brands, c.Param("brandId"))
		if errors.Is(err, catalog.ErrBrandNotFound) {
			respondError(c, http.StatusNotFound, route, "brand not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		name := strings.TrimSpace(req.Name)
		if !strings.EqualFold(name, brand.Name) {
			filter := caseInsensitiveNameFilter(name)
			filter["_id"] = bson.M{"$ne": brand.ID}
			count, err := brands.CountDocuments(ctx, filter)
			if err != nil {
				respondInternalError(c, route, err)
				return
			}
			if count > 0 {
				respondError(c, http.StatusBadRequest, route, fmt.Sprintf("brand %q already exists", name))
				return
			}
		}

		products := req.Products
		if products == nil {
			products = []models.Product{}
		}

		update := bson.M{"$set": bson.M{
			"name":        name,
			"logo":        strings.TrimSpace(req.Logo),
			"description": strings.TrimSpace(req.Description),
			"website":     strings.TrimSpace(req.Website),
			"specialties": models.StringList(req.Specialties),
			"products":    products,
			"updatedAt":   time.Now(),
		}}

		var updated models.Brand
		err = brands.FindOneAndUpdate(
			ctx,
			bson.M{"_id": brand.ID},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, route, "brand not found")
			return
		}
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, http.StatusBadRequest, route, fmt.Sprintf("brand %q already exists", name))
				return
			}
			respondInternalError(c, route, err)
			return
		}

		respondData(c, http.StatusOK, updated)
	}
}

// DeleteBrand is unconditional: no cascade check against documents, which can
// leave orphaned attachment records behind.
func DeleteBrand(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/brands/:brandId"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		brands := db.Collection("brands")
		brand, err := catalog.ResolveBrand(ctx, brands, c.Param("brandId"))
		if errors.Is(err, catalog.ErrBrandNotFound) {
			respondError(c, http.StatusNotFound, route, "brand not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		if _, err := brands.DeleteOne(ctx, bson.M{"_id": brand.ID}); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("brand %q deleted", brand.Name),
		})
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zohir26/IC-sub001/internal/catalog"
	"github.com/zohir26/IC-sub001/internal/models"
)

// findProductIndex scans the brand's embedded products for a productId match.
func findProductIndex(brand models.Brand, productID string) int {
	for i, p := range brand.Products {
		if p.ProductID == productID {
			return i
		}
	}
	return -1
}

func resolveBrandAndProduct(c *gin.Context, db *mongo.Database, route string) (models.Brand, int, bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	brand, err := catalog.ResolveBrand(ctx, db.Collection("brands"), c.Param("brandId"))
	if errors.Is(err, catalog.ErrBrandNotFound) {
		respondError(c, http.StatusNotFound, route, "brand not found")
		return models.Brand{}, -1, false
	}
	if err != nil {
		respondInternalError(c, route, err)
		return models.Brand{}, -1, false
	}

	idx := findProductIndex(brand, c.Param("productId"))
	if idx < 0 {
		respondError(c, http.StatusNotFound, route, "product not found")
		return models.Brand{}, -1, false
	}
	return brand, idx, true
}

// GetBrandProduct returns the embedded product along with its resolved
// cross-sell lists. Related products fall back to same-category/type brand
// mates when no explicit references exist; alternatives never fall back.
func GetBrandProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/brands/:brandId/products/:productId"
		defer handlePanic(c, route)

		brand, idx, ok := resolveBrandAndProduct(c, db, route)
		if !ok {
			return
		}
		product := brand.Products[idx]

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"data":         product,
			"brandName":    brand.Name,
			"related":      catalog.RelatedInBrand(brand, product),
			"alternatives": catalog.AlternativesInBrand(product),
		})
	}
}

// UpdateBrandProduct rewrites one array element in place: linear scan for the
// productId, then a positional $set on that index. Concurrent edits to
// different products on the same brand race at this granularity; last writer
// wins.
func UpdateBrandProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/brands/:brandId/products/:productId"
		defer handlePanic(c, route)

		var req models.Product
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			req.ProductID = c.Param("productId")
		}
		if details := validateBrandProducts([]models.Product{req}); len(details) > 0 {
			respondValidationError(c, route, nil, details)
			return
		}

		brand, idx, ok := resolveBrandAndProduct(c, db, route)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		update := bson.M{"$set": bson.M{
			fmt.Sprintf("products.%d", idx): req,
			"updatedAt":                     time.Now(),
		}}

		result, err := db.Collection("brands").UpdateOne(ctx, bson.M{"_id": brand.ID}, update)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if result.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, route, "brand not found")
			return
		}

		respondData(c, http.StatusOK, req)
	}
}

// DeleteBrandProduct removes the element and replaces the whole products
// array on the brand document.
func DeleteBrandProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/brands/:brandId/products/:productId"
		defer handlePanic(c, route)

		brand, idx, ok := resolveBrandAndProduct(c, db, route)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		remaining := make([]models.Product, 0, len(brand.Products)-1)
		remaining = append(remaining, brand.Products[:idx]...)
		remaining = append(remaining, brand.Products[idx+1:]...)

		update := bson.M{"$set": bson.M{
			"products":  remaining,
			"updatedAt": time.Now(),
		}}

		result, err := db.Collection("brands").UpdateOne(ctx, bson.M{"_id": brand.ID}, update)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if result.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, route, "brand not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("product %q deleted", brand.Products[idx].ProductID),
		})
	}
}

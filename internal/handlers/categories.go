package handlers

import (
	"errors"
	"fmt"
	"net/http"
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

type CategoryRequest struct {
	CategoryID       int                          `json:"id" binding:"required"`
	Name             string                       `json:"name" binding:"required"`
	Icon             string                       `json:"icon"`
	Link             string                       `json:"link"`
	Subcategories    []models.Subcategory         `json:"subcategories"`
	TopManufacturers []models.ManufacturerSummary `json:"topManufacturers"`
	PopularParts     []models.PopularPart         `json:"popularParts"`
	Details          models.CategoryDetails       `json:"details"`
}

func validatePopularParts(parts []models.PopularPart) []string {
	details := make([]string, 0)
	for i, part := range parts {
		if strings.TrimSpace(part.PartNumber) == "" {
			details = append(details, fmt.Sprintf("popularParts[%d].partNumber is required", i))
		}
		if part.Popularity < 0 || part.Popularity > 100 {
			details = append(details, fmt.Sprintf("popularParts[%d].popularity must be between 0 and 100", i))
		}
	}
	return details
}

func ListCategories(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/categories"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
		cursor, err := db.Collection("categories").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		categories := make([]models.Category, 0)
		if err := cursor.All(ctx, &categories); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    categories,
			"count":   len(categories),
		})
	}
}

func CreateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/categories"
		defer handlePanic(c, route)

		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}
		if details := validatePopularParts(req.PopularParts); len(details) > 0 {
			respondValidationError(c, route, nil, details)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		categories := db.Collection("categories")
		name := strings.TrimSpace(req.Name)

		count, err := categories.CountDocuments(ctx, bson.M{"$or": []bson.M{
			{"id": req.CategoryID},
			caseInsensitiveNameFilter(name),
		}})
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, http.StatusBadRequest, route, fmt.Sprintf("category %d or %q already exists", req.CategoryID, name))
			return
		}

		now := time.Now()
		category := models.Category{
			CategoryID:       req.CategoryID,
			Name:             name,
			Icon:             strings.TrimSpace(req.Icon),
			Link:             strings.TrimSpace(req.Link),
			Subcategories:    req.Subcategories,
			TopManufacturers: req.TopManufacturers,
			PopularParts:     req.PopularParts,
			Details:          req.Details,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		result, err := categories.InsertOne(ctx, category)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, http.StatusBadRequest, route, fmt.Sprintf("category %d already exists", req.CategoryID))
				return
			}
			respondInternalError(c, route, err)
			return
		}

		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			category.ID = oid
		}
		respondData(c, http.StatusCreated, category)
	}
}

// GetCategory resolves the identifier with the two-strategy cascade: numeric
// custom id first, then a raw store identifier.
func GetCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/categories/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		category, err := catalog.ResolveCategory(ctx, db.Collection("categories"), c.Param("id"))
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, route, "category not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		respondData(c, http.StatusOK, category)
	}
}

func UpdateCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/categories/:id"
		defer handlePanic(c, route)

		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}
		if details := validatePopularParts(req.PopularParts); len(details) > 0 {
			respondValidationError(c, route, nil, details)
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		categories := db.Collection("categories")
		existing, err := catalog.ResolveCategory(ctx, categories, c.Param("id"))
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, route, "category not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		update := bson.M{"$set": bson.M{
			"id":               req.CategoryID,
			"name":             strings.TrimSpace(req.Name),
			"icon":             strings.TrimSpace(req.Icon),
			"link":             strings.TrimSpace(req.Link),
			"subcategories":    req.Subcategories,
			"topManufacturers": req.TopManufacturers,
			"popularParts":     req.PopularParts,
			"details":          req.Details,
			"updatedAt":        time.Now(),
		}}

		var updated models.Category
		err = categories.FindOneAndUpdate(
			ctx,
			bson.M{"_id": existing.ID},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, route, "category not found")
			return
		}
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, http.StatusBadRequest, route, fmt.Sprintf("category %d already exists", req.CategoryID))
				return
			}
			respondInternalError(c, route, err)
			return
		}

		respondData(c, http.StatusOK, updated)
	}
}

func DeleteCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/categories/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		categories := db.Collection("categories")
		existing, err := catalog.ResolveCategory(ctx, categories, c.Param("id"))
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, route, "category not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		if _, err := categories.DeleteOne(ctx, bson.M{"_id": existing.ID}); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("category %q deleted", existing.Name),
		})
	}
}

package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zohir26/IC-sub001/internal/catalog"
	"github.com/zohir26/IC-sub001/internal/models"
)

// splitMulti accepts both repeated query params (?brand=a&brand=b) and
// comma-separated values (?brand=a,b).
func splitMulti(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// parsePriceParam ignores non-numeric bounds instead of failing the request:
// absence of a bound simply omits that comparison.
func parsePriceParam(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseSearchParams(c *gin.Context) (catalog.SearchParams, error) {
	page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
	if err != nil {
		return catalog.SearchParams{}, err
	}

	return catalog.SearchParams{
		Type:           c.Query("type"),
		Category:       c.Query("category"),
		ParentCategory: c.Query("parentCategory"),
		Brands:         splitMulti(c.QueryArray("brand")),
		Manufacturers:  splitMulti(c.QueryArray("manufacturer")),
		MinPrice:       parsePriceParam(c.Query("minPrice")),
		MaxPrice:       parsePriceParam(c.Query("maxPrice")),
		Features:       splitMulti(c.QueryArray("feature")),
		Search:         c.Query("search"),
		ActiveOnly:     true,
		Page:           page,
		Limit:          limit,
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
	}, nil
}

// SearchProducts runs the filtered/paginated/sorted catalog query. The count
// and the page fetch run against the same filter snapshot so totals match the
// pages.
func SearchProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		params, err := parseSearchParams(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		products := db.Collection("products")
		filter := params.Filter()

		total, err := products.CountDocuments(ctx, filter)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		opts := options.Find().
			SetSort(params.Sort()).
			SetSkip(params.Skip()).
			SetLimit(params.PageSize())

		cursor, err := products.Find(ctx, filter, opts)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		results := make([]models.CatalogProduct, 0)
		if err := cursor.All(ctx, &results); err != nil {
			respondInternalError(c, route, err)
			return
		}

		totalPages := int64(0)
		if total > 0 {
			totalPages = int64(math.Ceil(float64(total) / float64(params.PageSize())))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    results,
			"pagination": gin.H{
				"page":       params.PageNumber(),
				"limit":      params.PageSize(),
				"total":      total,
				"totalPages": totalPages,
			},
		})
	}
}

// ProductSuggestions serves the flat-array related/alternative heuristics for
// one catalog product.
func ProductSuggestions(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/suggestions"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Query("id")))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		limit := catalog.DefaultSuggestionLimit
		if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondError(c, http.StatusBadRequest, route, "invalid limit")
				return
			}
			limit = parsed
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		products := db.Collection("products")

		var current models.CatalogProduct
		err = products.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		cursor, err := products.Find(ctx, bson.M{"isActive": bson.M{"$ne": false}})
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		pool := make([]models.CatalogProduct, 0)
		if err := cursor.All(ctx, &pool); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"related":      catalog.RelatedCatalogProducts(pool, current, limit),
			"alternatives": catalog.AlternativeCatalogProducts(pool, current, limit),
		})
	}
}

// CatalogStats summarizes the products matching the same filters the search
// endpoint accepts.
func CatalogStats(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/stats"
		defer handlePanic(c, route)

		params, err := parseSearchParams(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, params.Filter())
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		results := make([]models.CatalogProduct, 0)
		if err := cursor.All(ctx, &results); err != nil {
			respondInternalError(c, route, err)
			return
		}

		respondData(c, http.StatusOK, catalog.SummarizeCatalog(results))
	}
}

type facetValue struct {
	Value string `bson:"_id" json:"value"`
	Count int64  `bson:"count" json:"count"`
}

// facetHandler groups active products by one field and returns distinct values
// with counts, most frequent first.
func facetHandler(db *mongo.Database, route, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: bson.M{
				"isActive": bson.M{"$ne": false},
				field:      bson.M{"$nin": bson.A{nil, ""}},
			}}},
			{{Key: "$group", Value: bson.M{
				"_id":   "$" + field,
				"count": bson.M{"$sum": 1},
			}}},
			{{Key: "$sort", Value: bson.D{
				{Key: "count", Value: -1},
				{Key: "_id", Value: 1},
			}}},
		}

		cursor, err := db.Collection("products").Aggregate(ctx, pipeline)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		values := make([]facetValue, 0)
		if err := cursor.All(ctx, &values); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    values,
			"count":   len(values),
		})
	}
}

func ListCategoryFacets(db *mongo.Database) gin.HandlerFunc {
	return facetHandler(db, "GET /api/products/categories", "category")
}

func ListBrandFacets(db *mongo.Database) gin.HandlerFunc {
	return facetHandler(db, "GET /api/products/brands", "brandName")
}

func ListManufacturerFacets(db *mongo.Database) gin.HandlerFunc {
	return facetHandler(db, "GET /api/products/manufacturers", "manufacturerName")
}

package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zohir26/IC-sub001/internal/models"
)

type BlogPostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Slug    string   `json:"slug"`
	Summary string   `json:"summary"`
	Content string   `json:"content" binding:"required"`
	Author  string   `json:"author"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	return strings.Trim(slug, "-")
}

// slugConflictFilter matches any other post already holding the slug. The
// update path passes its own id so a post can keep its current slug.
func slugConflictFilter(slug string, exclude primitive.ObjectID) bson.M {
	filter := bson.M{"slug": slug}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	return filter
}

func ListBlogPosts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/blogs"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
		cursor, err := db.Collection("blogs").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		posts := make([]models.BlogPost, 0)
		if err := cursor.All(ctx, &posts); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    posts,
			"count":   len(posts),
		})
	}
}

// GetBlogPost accepts either a store identifier or a slug.
func GetBlogPost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/blogs/:id"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		identifier := c.Param("id")
		filters := make([]bson.M, 0, 2)
		if oid, err := primitive.ObjectIDFromHex(identifier); err == nil {
			filters = append(filters, bson.M{"_id": oid})
		}
		filters = append(filters, bson.M{"slug": identifier})

		var post models.BlogPost
		for _, filter := range filters {
			err := db.Collection("blogs").FindOne(ctx, filter).Decode(&post)
			if err == nil {
				respondData(c, http.StatusOK, post)
				return
			}
			if !errors.Is(err, mongo.ErrNoDocuments) {
				respondInternalError(c, route, err)
				return
			}
		}
		respondError(c, http.StatusNotFound, route, "blog post not found")
	}
}

func CreateBlogPost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/blogs"
		defer handlePanic(c, route)

		var req BlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}

		slug := strings.TrimSpace(req.Slug)
		if slug == "" {
			slug = slugify(req.Title)
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		blogs := db.Collection("blogs")
		// Proactive duplicate check; the unique slug index is the second line
		// of defense against a racing create.
		count, err := blogs.CountDocuments(ctx, slugConflictFilter(slug, primitive.NilObjectID))
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, http.StatusBadRequest, route, "a post with this slug already exists")
			return
		}

		now := time.Now()
		post := models.BlogPost{
			Title:       strings.TrimSpace(req.Title),
			Slug:        slug,
			Summary:     strings.TrimSpace(req.Summary),
			Content:     req.Content,
			Author:      strings.TrimSpace(req.Author),
			Image:       strings.TrimSpace(req.Image),
			Tags:        models.StringList(req.Tags),
			PublishedAt: now,
			UpdatedAt:   now,
		}

		result, err := blogs.InsertOne(ctx, post)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, http.StatusBadRequest, route, "a post with this slug already exists")
				return
			}
			respondInternalError(c, route, err)
			return
		}
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			post.ID = oid
		}
		respondData(c, http.StatusCreated, post)
	}
}

func UpdateBlogPost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/blogs/:id"
		defer handlePanic(c, route)

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "invalid blog post id")
			return
		}

		var req BlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err, nil)
			return
		}

		slug := strings.TrimSpace(req.Slug)
		if slug == "" {
			slug = slugify(req.Title)
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		blogs := db.Collection("blogs")
		count, err := blogs.CountDocuments(ctx, slugConflictFilter(slug, oid))
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, http.StatusBadRequest, route, "a post with this slug already exists")
			return
		}

		update := bson.M{"$set": bson.M{
			"title":     strings.TrimSpace(req.Title),
			"slug":      slug,
			"summary":   strings.TrimSpace(req.Summary),
			"content":   req.Content,
			"author":    strings.TrimSpace(req.Author),
			"image":     strings.TrimSpace(req.Image),
			"tags":      models.StringList(req.Tags),
			"updatedAt": time.Now(),
		}}

		var updated models.BlogPost
		err = blogs.FindOneAndUpdate(
			ctx,
			bson.M{"_id": oid},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, route, "blog post not found")
			return
		}
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondError(c, http.StatusBadRequest, route, "a post with this slug already exists")
				return
			}
			respondInternalError(c, route, err)
			return
		}

		respondData(c, http.StatusOK, updated)
	}
}

func DeleteBlogPost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/blogs/:id"
		defer handlePanic(c, route)

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "invalid blog post id")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := db.Collection("blogs").DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, http.StatusNotFound, route, "blog post not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "blog post deleted",
		})
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zohir26/IC-sub001/internal/models"
)

func ListProductDocuments(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/brands/:brandId/products/:productId/documents"
		defer handlePanic(c, route)

		_, _, ok := resolveBrandAndProduct(c, db, route)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
		cursor, err := db.Collection("documents").Find(
			ctx,
			bson.M{"productId": c.Param("productId")},
			opts,
		)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		documents := make([]models.Document, 0)
		if err := cursor.All(ctx, &documents); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    documents,
			"count":   len(documents),
		})
	}
}

// UploadProductDocument writes the binary to disk first, then inserts the
// metadata record. A crash between the two steps leaves an orphaned file on
// disk; that inconsistency is accepted, not reconciled.
func UploadProductDocument(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/brands/:brandId/products/:productId/documents"
		defer handlePanic(c, route)

		brand, idx, ok := resolveBrandAndProduct(c, db, route)
		if !ok {
			return
		}
		product := brand.Products[idx]

		file, err := c.FormFile("file")
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "file is required")
			return
		}

		displayName := strings.TrimSpace(c.PostForm("name"))
		if displayName == "" {
			displayName = file.Filename
		}

		filename, relPath, err := saveUpload(file, "documents")
		if err != nil {
			respondError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		document := models.Document{
			ID:         uuid.NewString(),
			ProductID:  product.ProductID,
			BrandName:  brand.Name,
			Name:       displayName,
			Filename:   filename,
			Size:       humanFileSize(file.Size),
			Mimetype:   file.Header.Get("Content-Type"),
			URL:        "/" + relPath,
			UploadedAt: time.Now(),
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if _, err := db.Collection("documents").InsertOne(ctx, document); err != nil {
			respondInternalError(c, route, err)
			return
		}

		respondData(c, http.StatusCreated, document)
	}
}

// DeleteProductDocument is best-effort on the file: an unlink failure is
// logged and swallowed, and the record delete proceeds regardless. A backing
// file already removed from storage must not block the record deletion.
func DeleteProductDocument(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/brands/:brandId/products/:productId/documents/:docId"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		documents := db.Collection("documents")
		docID := c.Param("docId")

		var document models.Document
		err := documents.FindOne(ctx, bson.M{"id": docID}).Decode(&document)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusNotFound, route, "document not found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		if err := safeDeleteUpload(strings.TrimPrefix(document.URL, "/")); err != nil {
			log.Printf("[%s] file delete failed for %s: %v", route, document.Filename, err)
		}

		if _, err := documents.DeleteOne(ctx, bson.M{"id": docID}); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "document deleted",
		})
	}
}

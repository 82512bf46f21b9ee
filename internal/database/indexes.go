package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureBrandIndexes creates the store-level uniqueness guards for brands. The
// name index uses collation strength 2 so "Texas Instruments" and
// "texas instruments" collide at the index even if the proactive handler check
// is raced past.
func EnsureBrandIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("brands").Indexes()

	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetName("name_unique_ci").
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	}
	brandIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "brandId", Value: 1}},
		Options: options.Index().
			SetName("brandId_unique").
			SetUnique(true),
	}

	log.Println("EnsureBrandIndexes: creating name_unique_ci and brandId_unique")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{nameIndex, brandIDIndex})
	if err != nil {
		log.Println("EnsureBrandIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureCategoryIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("categories").Indexes()

	idIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
		Options: options.Index().
			SetName("category_id_unique").
			SetUnique(true),
	}

	log.Println("EnsureCategoryIndexes: creating category_id_unique")
	_, err := indexes.CreateOne(ctx, idIndex)
	if err != nil {
		log.Println("EnsureCategoryIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureCatalogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("product_name"),
		},
		{
			Keys:    bson.D{{Key: "brand", Value: 1}, {Key: "manufacturer", Value: 1}},
			Options: options.Index().SetName("product_brand_manufacturer"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "price", Value: 1}},
			Options: options.Index().SetName("product_category_price"),
		},
	}

	log.Println("EnsureCatalogIndexes: creating product search indexes")
	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureCatalogIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureBlogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("blogs").Indexes()

	slugIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetName("blog_slug_unique").
			SetUnique(true),
	}

	log.Println("EnsureBlogIndexes: creating blog_slug_unique")
	_, err := indexes.CreateOne(ctx, slugIndex)
	if err != nil {
		log.Println("EnsureBlogIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureDocumentIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("documents").Indexes()

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("document_id_unique").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "productId", Value: 1}},
			Options: options.Index().SetName("document_productId"),
		},
	}

	log.Println("EnsureDocumentIndexes: creating document indexes")
	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureDocumentIndexes: index error:", err)
		return err
	}
	return nil
}

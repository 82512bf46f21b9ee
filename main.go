package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zohir26/IC-sub001/internal/config"
	"github.com/zohir26/IC-sub001/internal/database"
	"github.com/zohir26/IC-sub001/internal/handlers"
	"github.com/zohir26/IC-sub001/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureBrandIndexes(db); err != nil {
		log.Printf("brand index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}
	if err := database.EnsureCatalogIndexes(db); err != nil {
		log.Printf("catalog index warning: %v", err)
	}
	if err := database.EnsureDocumentIndexes(db); err != nil {
		log.Printf("document index warning: %v", err)
	}
	if err := database.EnsureBlogIndexes(db); err != nil {
		log.Printf("blog index warning: %v", err)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.AppEnv.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Static("/uploads", filepath.Join(config.AppEnv.UploadDir, "uploads"))

	r.GET("/health", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := r.Group("/api")
	api.POST("/admin/login", handlers.AdminLogin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	brands := api.Group("/brands")
	{
		brands.GET("", handlers.ListBrands(db))
		brands.GET("/:brandId", handlers.GetBrand(db))
		brands.GET("/:brandId/products/:productId", handlers.GetBrandProduct(db))
		brands.GET("/:brandId/products/:productId/documents", handlers.ListProductDocuments(db))
	}

	products := api.Group("/products")
	{
		products.GET("", handlers.SearchProducts(db))
		products.GET("/suggestions", handlers.ProductSuggestions(db))
		products.GET("/stats", handlers.CatalogStats(db))
		products.GET("/categories", handlers.ListCategoryFacets(db))
		products.GET("/brands", handlers.ListBrandFacets(db))
		products.GET("/manufacturers", handlers.ListManufacturerFacets(db))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", handlers.ListCategories(db))
		categories.GET("/:id", handlers.GetCategory(db))
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", handlers.ListBlogPosts(db))
		blogs.GET("/:id", handlers.GetBlogPost(db))
	}

	admin := api.Group("")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/brands", handlers.CreateBrand(db))
		admin.PUT("/brands/:brandId", handlers.UpdateBrand(db))
		admin.DELETE("/brands/:brandId", handlers.DeleteBrand(db))
		admin.PUT("/brands/:brandId/products/:productId", handlers.UpdateBrandProduct(db))
		admin.DELETE("/brands/:brandId/products/:productId", handlers.DeleteBrandProduct(db))
		admin.POST("/brands/:brandId/products/:productId/documents", handlers.UploadProductDocument(db))
		admin.DELETE("/brands/:brandId/products/:productId/documents/:docId", handlers.DeleteProductDocument(db))

		admin.POST("/categories", handlers.CreateCategory(db))
		admin.PUT("/categories/:id", handlers.UpdateCategory(db))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

		admin.POST("/blogs", handlers.CreateBlogPost(db))
		admin.PUT("/blogs/:id", handlers.UpdateBlogPost(db))
		admin.DELETE("/blogs/:id", handlers.DeleteBlogPost(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

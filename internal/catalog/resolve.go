package catalog

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zohir26/IC-sub001/internal/models"
)

var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ResolveStrategy turns a URL path segment into a lookup filter. The storefront
// reuses one path segment for a numeric brandId, a raw ObjectID, or a
// hyphenated name, so resolution runs through an ordered strategy list and the
// first strategy that both applies and matches a document wins.
type ResolveStrategy interface {
	Name() string
	// Filter reports whether the strategy applies to the identifier and, if
	// so, the filter to query with.
	Filter(identifier string) (bson.M, bool)
}

type byBrandID struct{}

func (byBrandID) Name() string { return "brandId" }

func (byBrandID) Filter(identifier string) (bson.M, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(identifier))
	if err != nil {
		return nil, false
	}
	return bson.M{"brandId": id}, true
}

type byObjectID struct{}

func (byObjectID) Name() string { return "objectId" }

func (byObjectID) Filter(identifier string) (bson.M, bool) {
	trimmed := strings.TrimSpace(identifier)
	if len(trimmed) != 24 {
		return nil, false
	}
	oid, err := primitive.ObjectIDFromHex(trimmed)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid}, true
}

type byHyphenatedName struct{}

func (byHyphenatedName) Name() string { return "name" }

func (byHyphenatedName) Filter(identifier string) (bson.M, bool) {
	name := strings.TrimSpace(strings.ReplaceAll(identifier, "-", " "))
	if name == "" {
		return nil, false
	}
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	return bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}}, true
}

// BrandResolvers returns the strategies in priority order. Numeric brandId must
// come before name: a brand whose name is all digits would otherwise shadow a
// brandId lookup.
func BrandResolvers() []ResolveStrategy {
	return []ResolveStrategy{byBrandID{}, byObjectID{}, byHyphenatedName{}}
}

// ResolveBrand tries each strategy against the brands collection, returning
// the first hit. Exhausting every strategy yields ErrBrandNotFound.
func ResolveBrand(ctx context.Context, brands *mongo.Collection, identifier string) (models.Brand, error) {
	for _, strategy := range BrandResolvers() {
		filter, ok := strategy.Filter(identifier)
		if !ok {
			continue
		}

		var brand models.Brand
		err := brands.FindOne(ctx, filter).Decode(&brand)
		if err == nil {
			return brand, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return models.Brand{}, err
		}
	}
	return models.Brand{}, ErrBrandNotFound
}

type byCategoryID struct{}

func (byCategoryID) Name() string { return "categoryId" }

func (byCategoryID) Filter(identifier string) (bson.M, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(identifier))
	if err != nil {
		return nil, false
	}
	return bson.M{"id": id}, true
}

// CategoryResolvers mirrors the brand cascade but with only two strategies:
// the numeric custom id, then the raw store identifier.
func CategoryResolvers() []ResolveStrategy {
	return []ResolveStrategy{byCategoryID{}, byObjectID{}}
}

func ResolveCategory(ctx context.Context, categories *mongo.Collection, identifier string) (models.Category, error) {
	for _, strategy := range CategoryResolvers() {
		filter, ok := strategy.Filter(identifier)
		if !ok {
			continue
		}

		var category models.Category
		err := categories.FindOne(ctx, filter).Decode(&category)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return models.Category{}, err
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

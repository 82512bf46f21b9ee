package catalog

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const DefaultPageSize = 20

// searchFields are the fields the free-text search matches, case-insensitive
// substring, OR'd together.
var searchFields = []string{
	"name",
	"brand",
	"brandName",
	"manufacturer",
	"manufacturerName",
	"category",
	"type",
}

// SearchParams carries the optional catalog filters. Every populated filter
// becomes its own group; groups are AND-combined. The brand and manufacturer
// lists each expand to an in-list OR across the raw-code and display-name
// fields, but the two groups stay ANDed with each other: a product must match
// brand-or-brandName AND manufacturer-or-manufacturerName.
type SearchParams struct {
	Type           string
	Category       string
	ParentCategory string
	Brands         []string
	Manufacturers  []string
	MinPrice       *float64
	MaxPrice       *float64
	Features       []string
	Search         string
	ActiveOnly     bool
	Page           int64
	Limit          int64
	SortBy         string
	SortOrder      string
}

// Filter builds the single store query for both the page fetch and the count,
// so pagination totals stay consistent with the fetched pages.
func (p SearchParams) Filter() bson.M {
	groups := make([]bson.M, 0, 8)

	if p.ActiveOnly {
		groups = append(groups, bson.M{"isActive": bson.M{"$ne": false}})
	}
	if t := strings.TrimSpace(p.Type); t != "" {
		groups = append(groups, bson.M{"type": t})
	}
	if category := strings.TrimSpace(p.Category); category != "" {
		groups = append(groups, bson.M{"category": category})
	}
	if parent := strings.TrimSpace(p.ParentCategory); parent != "" {
		groups = append(groups, bson.M{"parentCategory": parent})
	}

	if len(p.Brands) > 0 {
		groups = append(groups, bson.M{"$or": []bson.M{
			{"brand": bson.M{"$in": p.Brands}},
			{"brandName": bson.M{"$in": p.Brands}},
		}})
	}
	if len(p.Manufacturers) > 0 {
		groups = append(groups, bson.M{"$or": []bson.M{
			{"manufacturer": bson.M{"$in": p.Manufacturers}},
			{"manufacturerName": bson.M{"$in": p.Manufacturers}},
		}})
	}

	// Only the bounds actually supplied are applied; a missing bound omits
	// the comparison rather than defaulting to 0 or infinity.
	price := bson.M{}
	if p.MinPrice != nil {
		price["$gte"] = *p.MinPrice
	}
	if p.MaxPrice != nil {
		price["$lte"] = *p.MaxPrice
	}
	if len(price) > 0 {
		groups = append(groups, bson.M{"price": price})
	}

	if len(p.Features) > 0 {
		groups = append(groups, bson.M{"features": bson.M{"$all": p.Features}})
	}

	if search := strings.TrimSpace(p.Search); search != "" {
		pattern := regexp.QuoteMeta(search)
		or := make([]bson.M, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		groups = append(groups, bson.M{"$or": or})
	}

	switch len(groups) {
	case 0:
		return bson.M{}
	case 1:
		return groups[0]
	default:
		return bson.M{"$and": groups}
	}
}

// Sort is single-field; default ascending by name.
func (p SearchParams) Sort() bson.D {
	field := strings.TrimSpace(p.SortBy)
	if field == "" {
		field = "name"
	}
	direction := 1
	if strings.EqualFold(strings.TrimSpace(p.SortOrder), "desc") {
		direction = -1
	}
	return bson.D{{Key: field, Value: direction}}
}

// PageNumber normalizes to 1-indexed pages.
func (p SearchParams) PageNumber() int64 {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

func (p SearchParams) PageSize() int64 {
	if p.Limit < 1 {
		return DefaultPageSize
	}
	return p.Limit
}

func (p SearchParams) Skip() int64 {
	return (p.PageNumber() - 1) * p.PageSize()
}

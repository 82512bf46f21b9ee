package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Summary     string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Content     string             `bson:"content" json:"content"`
	Author      string             `bson:"author,omitempty" json:"author,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Tags        StringList         `bson:"tags,omitempty" json:"tags,omitempty"`
	PublishedAt time.Time          `bson:"publishedAt" json:"publishedAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

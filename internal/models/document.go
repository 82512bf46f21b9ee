package models

import "time"

// Document is a file attachment for an embedded product. ProductID and
// BrandName are foreign keys by value only; deleting a brand does not cascade
// here, so records can become orphaned.
type Document struct {
	ID         string    `bson:"id" json:"id"`
	ProductID  string    `bson:"productId" json:"productId"`
	BrandName  string    `bson:"brandName" json:"brandName"`
	Name       string    `bson:"name" json:"name"`
	Filename   string    `bson:"filename" json:"filename"`
	Size       string    `bson:"size" json:"size"`
	Mimetype   string    `bson:"mimetype" json:"mimetype"`
	URL        string    `bson:"url" json:"url"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

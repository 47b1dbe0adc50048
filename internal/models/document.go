package models

import "time"

// Document metadata is owned by the upload/extraction pipeline; this
// service only reads it for listings, dashboards and exports.
type Document struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Title      string    `bson:"title" json:"title"`
	FileType   string    `bson:"file_type" json:"file_type"`
	Processed  bool      `bson:"processed" json:"processed"`
	UploadDate time.Time `bson:"upload_date" json:"upload_date"`
}

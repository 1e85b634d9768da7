package model

import "frontdesk/shared/model"

const (
	TableName   = "gallery_images"
	EntityName  = "gallery_image"
	CachePrefix = "gallery:"

	// Directory is the object key prefix of every gallery upload.
	Directory = "gallery"

	FieldID          = "id"
	FieldImageURL    = "image_url"
	FieldObjectKey   = "object_key"
	FieldDescription = "description"
	FieldCreatedAt   = "created_at"
)

type Image struct {
	ID          string `db:"id"`
	ImageURL    string `db:"image_url"`
	ObjectKey   string `db:"object_key"`
	Description string `db:"description"`
	model.Metadata
}

package model

import "frontdesk/shared/model"

const (
	TableName   = "room_images"
	EntityName  = "room_image"
	CachePrefix = "room_image:"

	// Directory is the object key prefix of room uploads. Each room gets its own folder below it.
	Directory = "rooms"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldCreatedAt = "created_at"
)

type Image struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	ImageURL    string `db:"image_url"`
	ObjectKey   string `db:"object_key"`
	Description string `db:"description"`
	model.Metadata
}

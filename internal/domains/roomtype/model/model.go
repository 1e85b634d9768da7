package model

import "frontdesk/shared/model"

const (
	TableName   = "room_types"
	EntityName  = "room_type"
	CachePrefix = "room_type:"

	FieldID          = "id"
	FieldName        = "name"
	FieldBasePrice   = "base_price"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldCreatedAt   = "created_at"
)

type RoomType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	BasePrice   float64 `db:"base_price"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
	model.Metadata
}

// Fits reports whether the party size is within the type's capacity.
func (r RoomType) Fits(adults, children int) bool {
	return adults+children <= r.Capacity
}

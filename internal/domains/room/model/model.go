package model

import (
	"frontdesk/shared/model"
	"slices"
)

const (
	TableName   = "rooms"
	EntityName  = "room"
	CachePrefix = "room:"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldFloor        = "floor"
	FieldRoomTypeID   = "room_type_id"
	FieldStatus       = "status"
	FieldCreatedAt    = "created_at"
	FieldRoomTypeName = "name"

	RoomTypeTable = "room_types"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
	StatusDirty       Status = "dirty"
)

var Statuses = []Status{StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance, StatusDirty}

// lifecycleEdges are driven by booking operations only.
var lifecycleEdges = map[Status][]Status{
	StatusAvailable: {StatusReserved},
	StatusReserved:  {StatusOccupied, StatusAvailable},
	StatusOccupied:  {StatusDirty},
}

// manualEdges are housekeeping changes. None of them enter or leave
// reserved or occupied.
var manualEdges = map[Status][]Status{
	StatusAvailable:   {StatusMaintenance, StatusDirty},
	StatusDirty:       {StatusAvailable, StatusMaintenance},
	StatusMaintenance: {StatusAvailable, StatusDirty},
}

func ParseStatus(value string) (Status, bool) {
	status := Status(value)

	return status, status.Valid()
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(lifecycleEdges[s], next)
}

func (s Status) CanManuallyTransitionTo(next Status) bool {
	return slices.Contains(manualEdges[s], next)
}

type Room struct {
	ID           string  `db:"id"`
	RoomNumber   string  `db:"room_number"`
	Floor        int     `db:"floor"`
	RoomTypeID   string  `db:"room_type_id"`
	Status       Status  `db:"status"`
	RoomTypeName string  `column:"name"       db:"room_type_name" table:"room_types"`
	BasePrice    float64 `column:"base_price" db:"base_price"     table:"room_types"`
	Capacity     int     `column:"capacity"   db:"capacity"       table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN room_types ON room_types.id = rooms.room_type_id"
}

// StatusCount is one row of a GROUP BY status aggregate.
type StatusCount struct {
	Status Status `db:"status"`
	Total  int    `db:"total"`
}

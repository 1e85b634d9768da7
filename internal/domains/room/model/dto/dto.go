package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"required,max=10"`
	Floor      int    `json:"floor"        validate:"gte=0"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
}

// ToModel builds a room that starts available.
func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		Floor:      c.Floor,
		RoomTypeID: c.RoomTypeID,
		Status:     model.StatusAvailable,
		Metadata:   gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number"  json:"room_number"  validate:"omitempty,max=10"`
	Floor      *int   `db:"floor"        json:"floor"        validate:"omitempty,gte=0"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied reserved maintenance dirty"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	RoomNumber   string  `json:"room_number"`
	Floor        int     `json:"floor"`
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name,omitempty"`
	BasePrice    float64 `json:"base_price,omitempty"`
	Capacity     int     `json:"capacity,omitempty"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.RoomNumber = m.RoomNumber
	r.Floor = m.Floor
	r.RoomTypeID = m.RoomTypeID
	r.RoomTypeName = m.RoomTypeName
	r.BasePrice = m.BasePrice
	r.Capacity = m.Capacity
	r.Status = m.Status.String()
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Rooms = FromModels(models)
}

// SearchFilter matches the room number or the room type name.
func SearchFilter(search string) gDto.FilterGroup {
	if search == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "search_number", Field: model.FieldRoomNumber, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			gDto.Filter{ArgName: "search_type", Field: model.FieldRoomTypeName, Operator: gDto.FilterOperatorLike, Value: search, Table: model.RoomTypeTable},
		},
	}
}

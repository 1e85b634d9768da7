package dto

import (
	"frontdesk/internal/domains/roomtype/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/money"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name        string  `json:"name"        validate:"required,max=50"`
	BasePrice   float64 `json:"base_price"  validate:"gte=0"`
	Capacity    int     `json:"capacity"    validate:"required,gte=1"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		BasePrice:   money.Round(c.BasePrice),
		Capacity:    c.Capacity,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateRoomTypeRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=50"`
	BasePrice   *float64 `db:"base_price"  json:"base_price"  validate:"omitempty,gte=0"`
	Capacity    *int     `db:"capacity"    json:"capacity"    validate:"omitempty,gte=1"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=500"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description,omitempty"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(m model.RoomType) {
	r.ID = m.ID
	r.Name = m.Name
	r.BasePrice = m.BasePrice
	r.Capacity = m.Capacity
	r.Description = m.Description
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, m := range models {
		r.RoomTypes[i].FromModel(m)
	}
}

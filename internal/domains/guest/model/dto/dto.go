package dto

import (
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name          string `json:"name"            validate:"required,max=100"`
	Phone         string `json:"phone"           validate:"required,max=20"`
	Email         string `json:"email"           validate:"omitempty,email,max=100"`
	IDProofType   string `json:"id_proof_type"   validate:"omitempty,max=50"`
	IDProofNumber string `json:"id_proof_number" validate:"omitempty,max=50"`
	Address       string `json:"address"         validate:"omitempty,max=255"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		IDProofType:   c.IDProofType,
		IDProofNumber: c.IDProofNumber,
		Address:       c.Address,
		Metadata:      gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateGuestRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Phone         string `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	Email         string `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	IDProofType   string `db:"id_proof_type"   json:"id_proof_type"   validate:"omitempty,max=50"`
	IDProofNumber string `db:"id_proof_number" json:"id_proof_number" validate:"omitempty,max=50"`
	Address       string `db:"address"         json:"address"         validate:"omitempty,max=255"`
}

type GuestResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	IDProofType   string `json:"id_proof_type,omitempty"`
	IDProofNumber string `json:"id_proof_number,omitempty"`
	Address       string `json:"address,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(m model.Guest) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.Email = m.Email
	r.IDProofType = m.IDProofType
	r.IDProofNumber = m.IDProofNumber
	r.Address = m.Address
	r.Metadata.FromModel(m.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, m := range models {
		r.Guests[i].FromModel(m)
	}
}

// SearchFilter matches name, phone or email case-insensitively.
func SearchFilter(search string) gDto.FilterGroup {
	if search == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "search_name", Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			gDto.Filter{ArgName: "search_phone", Field: model.FieldPhone, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
		},
	}
}

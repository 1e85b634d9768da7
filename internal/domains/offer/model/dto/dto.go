package dto

import (
	"frontdesk/internal/domains/offer/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/money"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	Title        string  `json:"title"         validate:"required,max=100"`
	Description  string  `json:"description"   validate:"omitempty,max=500"`
	Discount     float64 `json:"discount"      validate:"gt=0"`
	DiscountType string  `json:"discount_type" validate:"required,oneof=percentage fixed"`
	ValidFrom    string  `json:"valid_from"    validate:"required,date"`
	ValidTo      string  `json:"valid_to"      validate:"required,date"`
	IsActive     *bool   `json:"is_active"`
}

// Active defaults to true when the flag is omitted.
func (c *CreateOfferRequest) Active() bool {
	return c.IsActive == nil || *c.IsActive
}

func (c *CreateOfferRequest) ToModel(validFrom, validTo gModel.Date, user string) model.Offer {
	return model.Offer{
		ID:           uuid.NewString(),
		Title:        c.Title,
		Description:  c.Description,
		Discount:     money.Round(c.Discount),
		DiscountType: model.DiscountType(c.DiscountType),
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		IsActive:     c.Active(),
		Metadata:     gModel.NewMetadata(timezone.Now(), user),
	}
}

type OfferResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discount_type"`
	ValidFrom    string  `json:"valid_from"`
	ValidTo      string  `json:"valid_to"`
	IsActive     bool    `json:"is_active"`
	UsageCount   int     `json:"usage_count"`
	gDto.Metadata
}

func (r *OfferResponse) FromModel(m model.Offer) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.Discount = m.Discount
	r.DiscountType = string(m.DiscountType)
	r.ValidFrom = m.ValidFrom.String()
	r.ValidTo = m.ValidTo.String()
	r.IsActive = m.IsActive
	r.UsageCount = m.UsageCount
	r.Metadata.FromModel(m.Metadata)
}

type GetOffersResponse struct {
	Offers    []OfferResponse `json:"offers"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOffersResponse) FromModels(models []model.Offer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Offers = make([]OfferResponse, len(models))
	for i, m := range models {
		r.Offers[i].FromModel(m)
	}
}

// ActiveFilter matches switched-on offers whose validity window contains day.
func ActiveFilter(day gModel.Date) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldIsActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "active_from", Field: model.FieldValidFrom, Value: day, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
			gDto.Filter{ArgName: "active_to", Field: model.FieldValidTo, Value: day, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		},
	}
}

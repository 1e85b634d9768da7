package model

import "frontdesk/shared/model"

const (
	TableName   = "offers"
	EntityName  = "offer"
	CachePrefix = "offer:"

	FieldID         = "id"
	FieldTitle      = "title"
	FieldDiscount   = "discount"
	FieldValidFrom  = "valid_from"
	FieldValidTo    = "valid_to"
	FieldIsActive   = "is_active"
	FieldUsageCount = "usage_count"
	FieldCreatedAt  = "created_at"

	MaxPercentage = 100
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Offer struct {
	ID           string       `db:"id"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	Discount     float64      `db:"discount"`
	DiscountType DiscountType `db:"discount_type"`
	ValidFrom    model.Date   `db:"valid_from"`
	ValidTo      model.Date   `db:"valid_to"`
	IsActive     bool         `db:"is_active"`
	UsageCount   int          `db:"usage_count"`
	model.Metadata
}

// AvailableOn reports whether the offer is switched on and day falls inside
// its validity window, both ends included.
func (o Offer) AvailableOn(day model.Date) bool {
	return o.IsActive && !day.Before(o.ValidFrom) && !o.ValidTo.Before(day)
}

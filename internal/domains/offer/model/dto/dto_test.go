package dto_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/offer/model"
	"frontdesk/internal/domains/offer/model/dto"
	gModel "frontdesk/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestActiveFilter(t *testing.T) {
	day := gModel.NewDate(2026, time.March, 15)

	filter := dto.ActiveFilter(day)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(offers.is_active = :is_active AND offers.valid_from <= :active_from AND offers.valid_to >= :active_to)", where)
	assert.Equal(t, true, args[model.FieldIsActive])
	assert.Equal(t, day, args["active_from"])
	assert.Equal(t, day, args["active_to"])
}

func TestCreateOfferRequest_ToModel(t *testing.T) {
	from := gModel.NewDate(2026, time.March, 1)
	to := gModel.NewDate(2026, time.March, 31)

	req := dto.CreateOfferRequest{Title: "Spring", Discount: 12.345, DiscountType: "percentage"}
	offer := req.ToModel(from, to, "admin-1")

	assert.NotEmpty(t, offer.ID)
	assert.True(t, offer.IsActive)
	assert.InDelta(t, 12.35, offer.Discount, 0.0001)
	assert.Equal(t, model.DiscountPercentage, offer.DiscountType)
	assert.Equal(t, "admin-1", offer.ModifiedBy)
	assert.True(t, offer.AvailableOn(gModel.NewDate(2026, time.March, 10)))
}

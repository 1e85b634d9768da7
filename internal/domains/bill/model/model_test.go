package model_test

import (
	"frontdesk/internal/domains/bill/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBill_Total(t *testing.T) {
	bill := model.Bill{RoomCharges: 4000, FoodCharges: 250.5, OtherCharges: 0.1, TaxAmount: 0.2}

	tests := []struct {
		name  string
		items []model.Item
		want  float64
	}{
		{name: "charges only", want: 4250.8},
		{
			name: "with items",
			items: []model.Item{
				{UnitPrice: 150, Quantity: 2},
				{UnitPrice: 0.1, Quantity: 3},
			},
			want: 4551.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, bill.Total(tt.items), 0.0001)
		})
	}
}

func TestParsePaymentStatus(t *testing.T) {
	status, ok := model.ParsePaymentStatus("partial")
	assert.True(t, ok)
	assert.Equal(t, model.PaymentPartial, status)

	_, ok = model.ParsePaymentStatus("refunded")
	assert.False(t, ok)
}

func TestParseItemType(t *testing.T) {
	itemType, ok := model.ParseItemType("")
	assert.True(t, ok)
	assert.Equal(t, model.ItemOther, itemType)

	_, ok = model.ParseItemType("minibar")
	assert.False(t, ok)
}

func TestNewNumber(t *testing.T) {
	now := time.UnixMilli(1717200000123)

	assert.Equal(t, "BILL1717200000123", model.NewNumber(now))
}

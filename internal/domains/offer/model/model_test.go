package model_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/offer/model"
	gModel "frontdesk/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestOffer_AvailableOn(t *testing.T) {
	offer := model.Offer{
		IsActive:  true,
		ValidFrom: gModel.NewDate(2026, time.March, 1),
		ValidTo:   gModel.NewDate(2026, time.March, 31),
	}

	tests := []struct {
		name   string
		offer  model.Offer
		day    gModel.Date
		wanted bool
	}{
		{name: "first day", offer: offer, day: gModel.NewDate(2026, time.March, 1), wanted: true},
		{name: "last day", offer: offer, day: gModel.NewDate(2026, time.March, 31), wanted: true},
		{name: "day before", offer: offer, day: gModel.NewDate(2026, time.February, 28), wanted: false},
		{name: "day after", offer: offer, day: gModel.NewDate(2026, time.April, 1), wanted: false},
		{
			name:   "switched off",
			offer:  model.Offer{ValidFrom: offer.ValidFrom, ValidTo: offer.ValidTo},
			day:    gModel.NewDate(2026, time.March, 15),
			wanted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wanted, tt.offer.AvailableOn(tt.day))
		})
	}
}

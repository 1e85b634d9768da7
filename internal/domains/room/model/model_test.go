package model_test

import (
	"frontdesk/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{model.StatusAvailable, model.StatusReserved, true},
		{model.StatusReserved, model.StatusOccupied, true},
		{model.StatusReserved, model.StatusAvailable, true},
		{model.StatusOccupied, model.StatusDirty, true},
		{model.StatusAvailable, model.StatusOccupied, false},
		{model.StatusOccupied, model.StatusAvailable, false},
		{model.StatusDirty, model.StatusReserved, false},
		{model.StatusMaintenance, model.StatusReserved, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_CanManuallyTransitionTo(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{model.StatusAvailable, model.StatusMaintenance, true},
		{model.StatusAvailable, model.StatusDirty, true},
		{model.StatusDirty, model.StatusAvailable, true},
		{model.StatusMaintenance, model.StatusAvailable, true},
		{model.StatusMaintenance, model.StatusDirty, true},
		{model.StatusAvailable, model.StatusReserved, false},
		{model.StatusOccupied, model.StatusDirty, false},
		{model.StatusReserved, model.StatusAvailable, false},
		{model.StatusDirty, model.StatusOccupied, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanManuallyTransitionTo(tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, ok := model.ParseStatus("dirty")
	assert.True(t, ok)
	assert.Equal(t, model.StatusDirty, status)

	_, ok = model.ParseStatus("cleaning")
	assert.False(t, ok)
}

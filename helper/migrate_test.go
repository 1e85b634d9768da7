package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/helper"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		value   string
		want    helper.Action
		wantErr bool
	}{
		{value: "up", want: helper.ActionUp},
		{value: "down", want: helper.ActionDown},
		{value: "step-up", want: helper.ActionStepUp},
		{value: "drop", want: helper.ActionDrop},
		{value: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			action, err := helper.ParseAction(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, action)
		})
	}
}

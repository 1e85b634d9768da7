package model_test

import (
	"encoding/json"
	"frontdesk/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := model.ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date.String())

	_, err = model.ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestDate_DaysUntil(t *testing.T) {
	checkIn := model.NewDate(2024, time.June, 1)

	assert.Equal(t, 2, checkIn.DaysUntil(model.NewDate(2024, time.June, 3)))
	assert.Equal(t, 0, checkIn.DaysUntil(checkIn))
	assert.Equal(t, -1, checkIn.DaysUntil(model.NewDate(2024, time.May, 31)))
	assert.Equal(t, 1, model.NewDate(2024, time.March, 9).DaysUntil(model.NewDate(2024, time.March, 10)))
}

func TestDate_Scan(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "time value keeps its calendar day", src: time.Date(2024, 6, 1, 0, 0, 0, 0, jakarta), want: "2024-06-01"},
		{name: "bytes", src: []byte("2024-06-03"), want: "2024-06-03"},
		{name: "timestamp string", src: "2024-06-03T00:00:00Z", want: "2024-06-03"},
		{name: "nil", src: nil, want: ""},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var date model.Date

			err := date.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, date.String())
		})
	}
}

func TestDate_Value(t *testing.T) {
	value, err := model.NewDate(2024, time.June, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", value)

	value, err = model.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		CheckIn model.Date `json:"check_in_date"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"check_in_date":"2024-06-01"}`), &p))
	assert.Equal(t, "2024-06-01", p.CheckIn.String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in_date":"2024-06-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"check_in_date":"June 1"}`), &p))
}

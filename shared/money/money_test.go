package money_test

import (
	"frontdesk/shared/money"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiply(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		times  int
		want   float64
	}{
		{name: "two nights of standard room", amount: 2000, times: 2, want: 4000},
		{name: "fractional price", amount: 19.99, times: 3, want: 59.97},
		{name: "zero quantity", amount: 150, times: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Multiply(tt.amount, tt.times))
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.3, money.Sum(0.1, 0.2))
	assert.Equal(t, 4690.5, money.Sum(4000, 350, 100, 240.5))
	assert.Equal(t, 0.0, money.Sum())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 10.01, money.Round(10.006))
	assert.Equal(t, 10.0, money.Round(9.999))
	assert.Equal(t, int64(1999), money.Cents(19.99))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceDisplayPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{name: "twenty percent off", price: 500, discount: 20, want: 400},
		{name: "no discount", price: 350, discount: 0, want: 350},
		{name: "full discount", price: 100, discount: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{Price: tt.price, Discount: tt.discount}
			assert.InDelta(t, tt.want, svc.DisplayPrice(), 0.001)
			assert.Equal(t, tt.discount > 0, svc.Discounted())
		})
	}
}

func TestStaffCanPerform(t *testing.T) {
	unrestricted := &Staff{}
	assert.True(t, unrestricted.CanPerform("svc-1"))

	specialist := &Staff{ServiceIDs: []string{"svc-1", "svc-2"}}
	assert.True(t, specialist.CanPerform("svc-2"))
	assert.False(t, specialist.CanPerform("svc-3"))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusNoShow.Terminal())
}

package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscountedPrice(t *testing.T) {
	p := &Product{Price: 999, DiscountPercent: 10}
	require.InDelta(t, 899.1, p.DiscountedPrice(), 0.0001)

	p = &Product{Price: 150}
	require.InDelta(t, 150, p.DiscountedPrice(), 0.0001)

	p = &Product{Price: 200, DiscountPercent: 100}
	require.Zero(t, p.DiscountedPrice())
}

func TestStatus(t *testing.T) {
	require.Equal(t, StatusActive, (&Product{IsActive: true}).Status())
	require.Equal(t, StatusInactive, (&Product{}).Status())
}

package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSatAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"zero plus zero", 0, 0, 0},
		{"plain sum", 100, 23, 123},
		{"at boundary", MaxAmount - 1, 1, MaxAmount},
		{"clamped", MaxAmount, 1, MaxAmount},
		{"clamped both big", MaxAmount / 2, MaxAmount/2 + 2, MaxAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SatAdd(tc.a, tc.b))
		})
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"zero minus zero", 0, 0, 0},
		{"plain difference", 123, 23, 100},
		{"to zero", 55, 55, 0},
		{"floored", 55, 56, 0},
		{"floored big", 0, MaxAmount, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SatSub(tc.a, tc.b))
		})
	}
}

func TestSatMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"zero left", 0, 10, 0},
		{"zero right", 10, 0, 0},
		{"plain product", 5000, 10000, 50_000_000},
		{"identity", MaxAmount, 1, MaxAmount},
		{"clamped", MaxAmount/2 + 1, 2, MaxAmount},
		{"clamped big", MaxAmount, MaxAmount, MaxAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SatMul(tc.a, tc.b))
		})
	}
}

// Basis-point stake formula used by the report contract: the clamp must keep
// cost + cost*multiplier/divisor monotonic even for absurd quotes.
func TestStakeFormulaClamping(t *testing.T) {
	const divisor = 10000

	cost := MaxAmount - 10
	total := SatAdd(cost, SatMul(cost, 5000)/divisor)
	require.Equal(t, MaxAmount, total)

	cost = 1_0000_0000
	total = SatAdd(cost, SatMul(cost, 5000)/divisor)
	require.Equal(t, 1_5000_0000, total)
}

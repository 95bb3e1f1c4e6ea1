package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierWatts(t *testing.T) {
	tests := []struct {
		name string
		tier string
		want float64
	}{
		{"basic small", "B1", 35.0},
		{"standard medium", "S2", 85.0},
		{"premium v3 large", "P3V3", 340.0},
		{"consumption", "Y1", 18.0},
		{"generic family label", "Premium", 175.0},
		{"lowercase input", "b1", 35.0},
		{"padded input", "  S1 ", 45.0},
		{"empty", "", DefaultTierWatts},
		{"unknown with 8 cores", "EP8", 320.0},
		{"unknown with 4 cores", "WS4", 170.0},
		{"unknown with 2 cores", "X2", 120.0},
		{"unknown with 1 core", "Z1", 60.0},
		{"unknown without digits", "CUSTOM", DefaultTierWatts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierWatts(tt.tier))
		})
	}
}

func TestDatabaseTierWatts(t *testing.T) {
	tests := []struct {
		name string
		tier string
		want float64
	}{
		{"basic", "Basic", 30.0},
		{"standard", "Standard", 75.0},
		{"premium", "Premium", 150.0},
		{"sku style premium", "P2", 150.0},
		{"sku style standard", "S0", 75.0},
		{"sku style basic", "B", 30.0},
		{"empty defaults", "", DefaultDatabaseWatts},
		{"unresolvable defaults", "GeneralPurpose", DefaultDatabaseWatts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatabaseTierWatts(tt.tier))
		})
	}
}

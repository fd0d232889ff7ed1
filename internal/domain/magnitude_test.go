package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMagnitude(t *testing.T) {
	tests := []struct {
		name        string
		coefficient float64
		code        string
		expected    float64
		recognized  bool
	}{
		{"hundreds", 2.5, "H", 250, true},
		{"thousands", 10, "K", 10_000, true},
		{"millions", 1, "M", 1_000_000, true},
		{"billions", 1.5, "B", 1_500_000_000, true},
		{"lowercase thousands", 3, "k", 3000, true},
		{"lowercase billions", 2, "b", 2_000_000_000, true},
		{"plus", 4, "+", 40, true},
		{"question mark", 7, "?", 7, true},
		{"dash", 7, "-", 7, true},
		{"blank code", 7, " ", 7, true},
		{"absent code", 7, "", 7, true},
		{"digit zero", 5, "0", 5, true},
		{"digit exponent", 5, "3", 5000, true},
		{"digit nine", 1, "9", 1_000_000_000, true},
		{"stray punctuation", 6, "%", 6, false},
		{"unknown letter", 6, "z", 6, false},
		{"multi character code", 6, "KM", 6, false},
		{"zero coefficient", 0, "B", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeMagnitude(tt.coefficient, tt.code)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.Equal(t, tt.recognized, ok)
		})
	}
}

// Decoding must be linear in the coefficient for any fixed code.
func TestDecodeMagnitude_Linear(t *testing.T) {
	for _, code := range []string{"", "H", "K", "M", "B", "+", "?", "3", "%"} {
		single, _ := DecodeMagnitude(1.25, code)
		double, _ := DecodeMagnitude(2.5, code)
		assert.InDelta(t, 2*single, double, 1e-9, "code %q", code)
	}
}

func TestTotalDamage(t *testing.T) {
	t.Run("property and crop combined", func(t *testing.T) {
		rec := RawRecord{
			PropertyDamage:     1,
			PropertyDamageCode: "M",
			CropDamage:         2,
			CropDamageCode:     "K",
		}
		total, unrecognized := TotalDamage(rec)
		assert.InDelta(t, 1_002_000, total, 1e-9)
		assert.Zero(t, unrecognized)
	})

	t.Run("unrecognized codes counted", func(t *testing.T) {
		rec := RawRecord{
			PropertyDamage:     3,
			PropertyDamageCode: "%",
			CropDamage:         4,
			CropDamageCode:     "!",
		}
		total, unrecognized := TotalDamage(rec)
		assert.InDelta(t, 7, total, 1e-9)
		assert.Equal(t, 2, unrecognized)
	})
}

func TestRawRecordToll(t *testing.T) {
	assert.Equal(t, 4, RawRecord{Fatalities: 3, Injuries: 1}.Toll())
	assert.Zero(t, RawRecord{}.Toll())
}

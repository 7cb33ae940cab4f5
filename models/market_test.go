package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		min    float64
		max    float64
		modal  float64
		expect string
	}{
		{"wide spread is up", 1000, 1216, 1200, TrendUp},
		{"narrow spread is down", 1000, 1080, 2000, TrendDown},
		{"middle spread is stable", 900, 1000, 1000, TrendStable},
		{"spread exactly 0.15 is stable", 1000, 1180, 1200, TrendStable},
		{"spread exactly 0.05 is stable", 1000, 1100, 2000, TrendStable},
		{"zero modal price is stable", 1000, 2000, 0, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ClassifyTrend(tt.min, tt.max, tt.modal))
		})
	}
}

func TestTranslateCommodity(t *testing.T) {
	assert.Equal(t, "कांदा", TranslateCommodity("Onion"))
	assert.Equal(t, "तूर", TranslateCommodity("Arhar (Tur/Red Gram)(Whole)"))
	assert.Equal(t, "Dragon Fruit", TranslateCommodity("Dragon Fruit"))
}

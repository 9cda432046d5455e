package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"label", "LABEL"},
		{"Label", "lAbEl"},
		{"HEADING", "HEADING"},
		{"straße", "STRAßE"},
		{"Straße", "STRASSE"},
		{"ǅ", "ǆ"},
		{"K", "K"}, // Kelvin sign
		{"s", "ſ"}, // long s
		{"Σίσυφος", "ΣΊΣΥΦΟς"},
		{"snake_case_1", "SNAKE_CASE_1"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, strings.EqualFold(tt.a, tt.b), fold(tt.a) == fold(tt.b))
		})
	}

	t.Run("sharp s is not expanded", func(t *testing.T) {
		assert.NotEqual(t, fold("Strasse"), fold("Straße"))
	})
}

package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromosNormalize(t *testing.T) {
	promos := Promos{"LUXE10"}

	tests := []struct {
		name          string
		code          string
		expected      string
		expectedValid bool
	}{
		{name: "given exact code should match", code: "LUXE10", expected: "LUXE10", expectedValid: true},
		{name: "given lowercase code should match", code: "luxe10", expected: "LUXE10", expectedValid: true},
		{name: "given mixed case code should match", code: "LuXe10", expected: "LUXE10", expectedValid: true},
		{name: "given surrounding whitespace should match", code: "  luxe10 ", expected: "LUXE10", expectedValid: true},
		{name: "given unknown code should not match", code: "LUXE20", expected: "", expectedValid: false},
		{name: "given empty code should not match", code: "", expected: "", expectedValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := promos.Normalize(tt.code)

			assert.Equal(t, tt.expectedValid, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"national format", "(212) 555-0123", "+12125550123"},
		{"dashed format", "212-555-0123", "+12125550123"},
		{"already e164", "+12125550123", "+12125550123"},
		{"international", "+44 20 7946 0958", "+442079460958"},
		{"empty", "", ""},
		{"garbage kept verbatim", "not a phone", "not a phone"},
		{"too short kept verbatim", "123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnqualified(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Point", "Point"},
		{"geo.Point", "Point"},
		{"*geo.Point", "Point"},
		{"[]geo.Point", "Point"},
		{"example.com/geo.Point", "Point"},
		{"example.com/geo", "geo"},
		{" geo ", "geo"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unqualified(tt.input))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"bundle.CharSequence", "charsequence"},
		{"example.com/geo.Point", "point"},
		{"", ""},
		{"Größe", "größe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

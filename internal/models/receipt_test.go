package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		expected string
	}{
		{"zero", 0, "$0"},
		{"under a thousand", 999, "$999"},
		{"exact thousand", 1000, "$1.000"},
		{"typical receipt total", 15990, "$15.990"},
		{"millions", 1234567, "$1.234.567"},
		{"negative", -4500, "-$4.500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCLP(tc.amount))
		})
	}
}

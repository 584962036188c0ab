package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnitPrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "2000", want: 2000},
		{raw: "6500.75", want: 6500.75},
		{raw: "  42", want: 42},
		{raw: ".5", want: 0.5},
		{raw: "5.", want: 5},
		{raw: "1e3", want: 1000},
		{raw: "1e", want: 1},
		{raw: "12abc", want: 12},
		{raw: "12.5.3", want: 12.5},
		{raw: "+7", want: 7},
		{raw: "", want: 0},
		{raw: "abc", want: 0},
		{raw: ".", want: 0},
		{raw: "-", want: 0},
		{raw: "-15", want: 0},
		{raw: "-0", want: 0},
		{raw: "NaN", want: 0},
		{raw: "Infinity", want: 0},
		{raw: "1e400", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUnitPrice(tt.raw))
		})
	}
}

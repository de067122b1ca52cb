package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceQuote_String(t *testing.T) {
	cases := []struct {
		quote PriceQuote
		want  string
	}{
		{PriceQuote{AR: "1.5", USD: 9.15}, "Transaction cost: ~1.5 AR (9.1500$)"},
		{PriceQuote{AR: "0.000000023144", USD: 0}, "Transaction cost: ~0.000000023144 AR (0.0000$)"},
		{PriceQuote{AR: "1", USD: 6.4321}, "Transaction cost: ~1 AR (6.4321$)"},
	}

	// Фиатная часть всегда ровно с четырьмя знаками после запятой.
	format := regexp.MustCompile(`^Transaction cost: ~[0-9.]+ AR \([0-9]+\.[0-9]{4}\$\)$`)

	for _, tc := range cases {
		got := tc.quote.String()
		assert.Equal(t, tc.want, got)
		assert.Regexp(t, format, got)
	}
}

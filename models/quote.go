package models

import "fmt"

// PriceQuote is the estimated cost of storing one payload on the network.
// It is recomputed on every export and never cached or persisted.
type PriceQuote struct {
	// Winston is the network price in atomic units (1 AR = 10^12 winston).
	Winston string

	// AR is the same price converted to the display currency unit.
	AR string

	// USD is the fiat equivalent, already rounded to 4 decimal places.
	USD float64
}

// String renders the quote in the form shown to the user before upload:
//
//	Transaction cost: ~0.000023144 AR (0.0003$)
func (q PriceQuote) String() string {
	return fmt.Sprintf("Transaction cost: ~%s AR (%.4f$)", q.AR, q.USD)
}

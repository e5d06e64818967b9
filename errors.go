package decbits

import (
	"github.com/calebcase/decbits/decimal"
)

// Error classes returned by this module. Test for them with Has, e.g.
// decbits.ParseError.Has(err).
var (
	Error            = &decimal.Error
	ParseError       = &decimal.ParseError
	CapacityExceeded = &decimal.CapacityExceeded
	Inexact          = &decimal.Inexact
)

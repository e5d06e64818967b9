package decimal

import "github.com/zeebo/errs"

var (
	// Error is the class of invalid triples and other misuse.
	Error = errs.Class("decimal")

	// ParseError is the class of malformed decimal text.
	ParseError = errs.Class("parse")

	// CapacityExceeded is the class of values that need more digits or
	// exponent range than is available.
	CapacityExceeded = errs.Class("capacity exceeded")

	// Inexact is the class of conversions that would lose information.
	Inexact = errs.Class("inexact")
)

// Package width derives the field layout of every IEEE 754 decimal
// interchange format from its width class and selects the smallest class for
// a value.
//
// A width class w describes a format of 4w bytes (k = 32w bits). All layout
// parameters follow from k:
//
//  precision              p = 9k/32 - 2
//  trailing significand   15k/16 - 10 bits
//  combination            k/16 + 9 bits
//  exponent               k/16 + 6 bits
//  emax                   3 * 2^(k/16 + 3)
//  bias                   emax + p - 2
//
// The integer exponent of a finite value (coefficient read as an integer)
// ranges over [-bias, emax - p + 1].
package width

import (
	"fmt"

	"github.com/calebcase/decbits/decimal"
)

// Class is a width class: the format size in units of 32 bits.
type Class int

const (
	Decimal32  Class = 1
	Decimal64  Class = 2
	Decimal96  Class = 3
	Decimal128 Class = 4
	Decimal160 Class = 5

	// MaxInt64Class is the largest class whose exponent arithmetic fits in
	// an int64.
	MaxInt64Class Class = 28
)

// Of returns the class of a format n bytes long.
func Of(n int) (c Class, ok bool) {
	if n <= 0 || n%4 != 0 {
		return 0, false
	}

	return Class(n / 4), true
}

// ForDigits returns the smallest class with a precision of at least digits.
func ForDigits(digits int) Class {
	if digits < 1 {
		digits = 1
	}

	return Class((digits + 2 + 8) / 9)
}

func (c Class) String() string {
	return fmt.Sprintf("decimal%d", c.Bits())
}

// Bytes is the length of the format in bytes.
func (c Class) Bytes() int { return 4 * int(c) }

// Bits is the length of the format in bits (k).
func (c Class) Bits() int { return 32 * int(c) }

// Precision is the number of coefficient digits (p).
func (c Class) Precision() int { return 9*int(c) - 2 }

// TrailingDigits is the number of coefficient digits held in declets.
func (c Class) TrailingDigits() int { return c.Precision() - 1 }

// Declets is the number of 10 bit declets in the trailing significand.
func (c Class) Declets() int { return c.TrailingDigits() / 3 }

// TrailingBits is the width of the trailing significand field.
func (c Class) TrailingBits() int { return c.Bits()*15/16 - 10 }

// CombinationBits is the width of the combination field, including the
// exponent continuation.
func (c Class) CombinationBits() int { return c.Bits()/16 + 9 }

// ExponentBits is the width of the biased exponent.
func (c Class) ExponentBits() int { return c.Bits()/16 + 6 }

// ContinuationBits is the number of exponent bits stored below the
// combination field.
func (c Class) ContinuationBits() int { return c.ExponentBits() - 2 }

// ExponentBytes is the number of bytes needed to hold the biased exponent.
func (c Class) ExponentBytes() int { return (c.ExponentBits() + 7) / 8 }

// EmaxShift is the power of two in emax = 3 * 2^EmaxShift.
func (c Class) EmaxShift() uint { return uint(c.Bits()/16 + 3) }

// Emax is the largest adjusted exponent. Valid for classes up to
// MaxInt64Class.
func (c Class) Emax() int64 { return 3 << c.EmaxShift() }

// Bias is the exponent bias. Valid for classes up to MaxInt64Class.
func (c Class) Bias() int64 { return c.Emax() + int64(c.Precision()) - 2 }

// MinExponent is the smallest integer exponent of a finite value.
func (c Class) MinExponent() int64 { return -c.Bias() }

// MaxExponent is the largest integer exponent of a finite value.
func (c Class) MaxExponent() int64 { return c.Emax() - int64(c.Precision()) + 1 }

// MaxBiased is the largest biased exponent of a finite value.
func (c Class) MaxBiased() int64 { return c.MaxExponent() + c.Bias() }

// Contains reports whether the exponent is in the finite range of c.
func (c Class) Contains(exponent int64) bool {
	return exponent >= c.MinExponent() && exponent <= c.MaxExponent()
}

// Fits reports whether c can hold a coefficient of digits significant digits
// with the given exponent.
func (c Class) Fits(digits int, exponent int64) bool {
	return digits <= c.Precision() && c.Contains(exponent)
}

// Selector chooses the width class for a value.
type Selector interface {
	// Select returns the smallest class able to hold a coefficient of
	// digits significant digits with the given exponent.
	Select(digits int, exponent int64) (Class, error)
}

// Fixed selects among the classes 1 through Limit.
type Fixed struct {
	Limit Class
}

// Default is the selector for the fixed capacity containers.
var Default = Fixed{Limit: Decimal160}

var _ Selector = Fixed{}

// Select implements Selector.
func (f Fixed) Select(digits int, exponent int64) (c Class, err error) {
	limit := f.Limit
	if limit > MaxInt64Class {
		limit = MaxInt64Class
	}

	for c = ForDigits(digits); c <= limit; c++ {
		if c.Contains(exponent) {
			return c, nil
		}
	}

	return 0, decimal.CapacityExceeded.New("%d digits with exponent %d exceed %s", digits, exponent, limit)
}

// Select chooses a class with the Default selector.
func Select(digits int, exponent int64) (Class, error) {
	return Default.Select(digits, exponent)
}

// ForTriple returns the class a triple needs under the given selector.
// Infinity needs the smallest class; NaN needs room for its payload in the
// trailing digits.
func ForTriple(s Selector, t decimal.Triple) (Class, error) {
	switch t.Kind {
	case decimal.Finite:
		return s.Select(t.Significant(), t.Exponent)
	case decimal.QuietNaN, decimal.SignalingNaN:
		return s.Select(len(decimal.TrimPayload(t.Payload))+1, 0)
	}

	return s.Select(1, 0)
}

package arbitrary

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/width"
)

// Emax returns the largest adjusted exponent of class c.
func Emax(c width.Class) *apd.BigInt {
	return new(apd.BigInt).Lsh(apd.NewBigInt(3), c.EmaxShift())
}

// Bias returns the exponent bias of class c.
func Bias(c width.Class) *apd.BigInt {
	b := Emax(c)

	return b.Add(b, apd.NewBigInt(int64(c.Precision()-2)))
}

// MinExponent returns the smallest integer exponent of class c.
func MinExponent(c width.Class) *apd.BigInt {
	b := Bias(c)

	return b.Neg(b)
}

// MaxExponent returns the largest integer exponent of class c.
func MaxExponent(c width.Class) *apd.BigInt {
	e := Emax(c)

	return e.Sub(e, apd.NewBigInt(int64(c.Precision()-1)))
}

// Contains reports whether the exponent is in the finite range of c.
func Contains(c width.Class, exponent *apd.BigInt) bool {
	return exponent.Cmp(MinExponent(c)) >= 0 && exponent.Cmp(MaxExponent(c)) <= 0
}

// Selector chooses among the classes 1 through Limit. A zero Limit allows
// every class.
type Selector struct {
	Limit width.Class
}

var _ width.Selector = Selector{}

// Select implements width.Selector.
func (s Selector) Select(digits int, exponent int64) (width.Class, error) {
	return s.SelectBig(digits, apd.NewBigInt(exponent))
}

// SelectBig returns the smallest class able to hold a coefficient of digits
// significant digits with the given exponent.
func (s Selector) SelectBig(digits int, exponent *apd.BigInt) (c width.Class, err error) {
	c = width.ForDigits(digits)

	// Classes whose emax is below a quarter of the exponent cannot hold it.
	if floor := width.Class((exponent.MathBigInt().BitLen() - 8) / 2); floor > c {
		c = floor
	}

	for ; s.Limit == 0 || c <= s.Limit; c++ {
		if Contains(c, exponent) {
			return c, nil
		}
	}

	return 0, decimal.CapacityExceeded.New("%d digits with exponent %s exceed %s", digits, exponent, s.Limit)
}

// ForDecimal returns the class a value needs under the selector.
func (s Selector) ForDecimal(d Decimal) (width.Class, error) {
	switch d.Kind {
	case decimal.Finite:
		return s.SelectBig(len(decimal.TrimCoefficient(d.Coefficient)), d.exponent())
	case decimal.QuietNaN, decimal.SignalingNaN:
		return s.Select(len(decimal.TrimPayload(d.Payload))+1, 0)
	}

	return s.Select(1, 0)
}

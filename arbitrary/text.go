package arbitrary

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/text"
)

// ParseDecimal converts decimal text into a decimal. Unlike text.Parse the
// exponent may have any number of digits.
func ParseDecimal(s string) (d Decimal, err error) {
	l, err := text.Scan(s)
	if err != nil {
		return d, err
	}

	d.Kind = l.Kind
	d.Negative = l.Negative

	switch l.Kind {
	case decimal.Finite:
		d.Coefficient = l.Coefficient()

		e := new(apd.BigInt)
		if len(l.Exponent) > 0 {
			_, ok := e.SetString(decimal.ASCII(l.Exponent), 10)
			if !ok {
				return Decimal{}, decimal.ParseError.New("invalid exponent %q", decimal.ASCII(l.Exponent))
			}

			if l.ExponentNegative {
				e.Neg(e)
			}
		}

		d.Exponent = e.Sub(e, apd.NewBigInt(int64(len(l.Fraction))))
	case decimal.QuietNaN, decimal.SignalingNaN:
		d.Payload = decimal.TrimPayload(l.Payload)
	}

	return d, nil
}

// Parse encodes decimal text in the smallest class that holds it exactly.
func Parse(s string) (b Bitstring, err error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return b, err
	}

	return Encode(d)
}

// Format returns the canonical text of a decimal. It matches text.Format
// whenever the exponent fits an int64.
func Format(d Decimal) string {
	return string(Append(nil, d))
}

// Append appends the canonical text of a decimal to dst.
func Append(dst []byte, d Decimal) []byte {
	switch d.Kind {
	case decimal.Finite:
	case decimal.Infinity:
		return text.AppendInfinity(dst, d.Negative)
	default:
		return text.AppendNaN(dst, d.Negative, d.Kind == decimal.SignalingNaN, d.Payload)
	}

	e := d.exponent()
	if e.IsInt64() {
		return text.AppendFinite(dst, d.Negative, d.Coefficient, e.Int64())
	}

	n := len(d.Coefficient)
	if n == 0 {
		n = 1
	}

	adjusted := new(apd.BigInt).Add(e, apd.NewBigInt(int64(n-1)))

	return text.AppendScientific(dst, d.Negative, d.Coefficient, adjusted.String())
}

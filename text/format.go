package text

import (
	"math"
	"strconv"

	"github.com/calebcase/decbits/decimal"
)

// Format returns the canonical text of a triple.
func Format(t decimal.Triple) string {
	return string(Append(nil, t))
}

// Append appends the canonical text of a triple to dst.
//
// Finite values with exponent 0 are written as plain digits. With a negative
// exponent they are written with a decimal point when at least one digit
// remains before it (123.44, 0.00), or as 0. followed by at most
// MaxLeadingZeros zeros and the significant digits (0.0123). Everything else
// uses scientific notation with a single leading digit (1.23e4, 5e-7).
// Parsing the result gives back the same value and exponent.
func Append(dst []byte, t decimal.Triple) []byte {
	switch t.Kind {
	case decimal.Finite:
		return AppendFinite(dst, t.Negative, t.Coefficient, t.Exponent)
	case decimal.Infinity:
		return AppendInfinity(dst, t.Negative)
	}

	return AppendNaN(dst, t.Negative, t.Kind == decimal.SignalingNaN, t.Payload)
}

func appendSign(dst []byte, negative bool) []byte {
	if negative {
		dst = append(dst, '-')
	}

	return dst
}

func appendDigits(dst []byte, ds []byte) []byte {
	for _, d := range ds {
		dst = append(dst, '0'+d)
	}

	return dst
}

// MaxLeadingZeros is the most fractional zeros written between the decimal
// point and the first significant digit before switching to scientific
// notation.
const MaxLeadingZeros = 5

// AppendFinite appends a finite value.
func AppendFinite(dst []byte, negative bool, coefficient []byte, exponent int64) []byte {
	if len(coefficient) == 0 {
		coefficient = []byte{0}
	}

	n := int64(len(coefficient))

	switch {
	case exponent == 0:
		dst = appendSign(dst, negative)

		return appendDigits(dst, coefficient)
	case exponent < 0 && n+exponent > 0:
		point := n + exponent

		dst = appendSign(dst, negative)
		dst = appendDigits(dst, coefficient[:point])
		dst = append(dst, '.')

		return appendDigits(dst, coefficient[point:])
	case exponent < 0:
		ds := decimal.TrimCoefficient(coefficient)

		zeros := -(int64(len(ds)) + exponent)
		if zeros > MaxLeadingZeros {
			break
		}

		dst = appendSign(dst, negative)
		dst = append(dst, "0."...)

		for ; zeros > 0; zeros-- {
			dst = append(dst, '0')
		}

		return appendDigits(dst, ds)
	case exponent > math.MaxInt64-(n-1):
		// The adjusted exponent does not fit; write the coefficient as an
		// integer instead.
		dst = appendSign(dst, negative)
		dst = appendDigits(dst, coefficient)
		dst = append(dst, 'e')

		return strconv.AppendInt(dst, exponent, 10)
	}

	return AppendScientific(dst, negative, coefficient, strconv.FormatInt(exponent+n-1, 10))
}

// AppendScientific appends d.ddd followed by e and the adjusted exponent
// (the exponent of the leading digit), given as base 10 text.
func AppendScientific(dst []byte, negative bool, coefficient []byte, adjusted string) []byte {
	if len(coefficient) == 0 {
		coefficient = []byte{0}
	}

	dst = appendSign(dst, negative)
	dst = append(dst, '0'+coefficient[0])

	if len(coefficient) > 1 {
		dst = append(dst, '.')
		dst = appendDigits(dst, coefficient[1:])
	}

	dst = append(dst, 'e')

	return append(dst, adjusted...)
}

// AppendInfinity appends inf or -inf.
func AppendInfinity(dst []byte, negative bool) []byte {
	dst = appendSign(dst, negative)

	return append(dst, "inf"...)
}

// AppendNaN appends nan or snan with the payload, if any, in parentheses.
func AppendNaN(dst []byte, negative, signaling bool, payload []byte) []byte {
	dst = appendSign(dst, negative)

	if signaling {
		dst = append(dst, 's')
	}

	dst = append(dst, "nan"...)

	payload = decimal.TrimPayload(payload)
	if len(payload) > 0 {
		dst = append(dst, '(')
		dst = appendDigits(dst, payload)
		dst = append(dst, ')')
	}

	return dst
}

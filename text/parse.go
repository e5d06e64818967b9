package text

import (
	"math"

	"github.com/calebcase/decbits/decimal"
)

// Parse converts decimal text into a triple. The coefficient keeps every
// digit as written; the exponent is the written exponent less the number of
// fraction digits.
func Parse(s string) (t decimal.Triple, err error) {
	l, err := Scan(s)
	if err != nil {
		return t, err
	}

	return l.Triple()
}

// Triple interprets the literal with an int64 exponent.
func (l Literal) Triple() (t decimal.Triple, err error) {
	t.Kind = l.Kind
	t.Negative = l.Negative

	switch l.Kind {
	case decimal.Finite:
		t.Coefficient = l.Coefficient()

		e, err := Int64(l.ExponentNegative, l.Exponent)
		if err != nil {
			return decimal.Triple{}, err
		}

		frac := int64(len(l.Fraction))
		if e < math.MinInt64+frac {
			return decimal.Triple{}, decimal.CapacityExceeded.New("exponent %d less %d fraction digits overflows", e, frac)
		}

		t.Exponent = e - frac
	case decimal.QuietNaN, decimal.SignalingNaN:
		t.Payload = l.Payload
	}

	return t, nil
}

// Int64 converts exponent digits into an int64.
func Int64(negative bool, ds []byte) (int64, error) {
	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}

	var v uint64
	for _, d := range ds {
		if v > (limit-uint64(d))/10 {
			return 0, decimal.CapacityExceeded.New("exponent %s%s overflows int64", sign(negative), decimal.ASCII(ds))
		}

		v = v*10 + uint64(d)
	}

	if negative {
		return -int64(v), nil
	}

	return int64(v), nil
}

func sign(negative bool) string {
	if negative {
		return "-"
	}

	return ""
}

package arbitrary

import (
	"math"

	"github.com/cockroachdb/apd/v3"

	"github.com/calebcase/decbits/decimal"
)

// FromAPD converts an apd decimal. apd NaNs carry no payload.
func FromAPD(x *apd.Decimal) Decimal {
	switch x.Form {
	case apd.Infinite:
		return Decimal{Kind: decimal.Infinity, Negative: x.Negative}
	case apd.NaN:
		return Decimal{Kind: decimal.QuietNaN, Negative: x.Negative}
	case apd.NaNSignaling:
		return Decimal{Kind: decimal.SignalingNaN, Negative: x.Negative}
	}

	s := x.Coeff.String()

	coefficient := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		coefficient[i] = s[i] - '0'
	}

	return New(x.Negative, coefficient, apd.NewBigInt(int64(x.Exponent)))
}

// APD converts the decimal into an apd decimal. The exponent must fit an
// int32 (CapacityExceeded) and NaN payloads have no counterpart (Inexact).
func (d Decimal) APD() (x *apd.Decimal, err error) {
	err = d.Validate()
	if err != nil {
		return nil, err
	}

	x = &apd.Decimal{Negative: d.Negative}

	switch d.Kind {
	case decimal.Infinity:
		x.Form = apd.Infinite

		return x, nil
	case decimal.QuietNaN, decimal.SignalingNaN:
		if len(decimal.TrimPayload(d.Payload)) > 0 {
			return nil, decimal.Inexact.New("apd has no NaN payloads")
		}

		x.Form = apd.NaN
		if d.Kind == decimal.SignalingNaN {
			x.Form = apd.NaNSignaling
		}

		return x, nil
	}

	e := d.exponent()
	if !e.IsInt64() || e.Int64() < math.MinInt32 || e.Int64() > math.MaxInt32 {
		return nil, decimal.CapacityExceeded.New("exponent %s overflows int32", e)
	}

	_, ok := x.Coeff.SetString(decimal.ASCII(decimal.TrimCoefficient(d.Coefficient)), 10)
	if !ok {
		return nil, decimal.Error.New("invalid coefficient %v", d.Coefficient)
	}

	x.Exponent = int32(e.Int64())

	return x, nil
}

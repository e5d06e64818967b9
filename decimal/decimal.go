package decimal

import (
	"bytes"
	"math"
)

// Kind is the class of value held by a triple.
type Kind uint8

const (
	Finite Kind = iota
	Infinity
	QuietNaN
	SignalingNaN
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinity:
		return "infinity"
	case QuietNaN:
		return "nan"
	case SignalingNaN:
		return "snan"
	}

	return "unknown"
}

// IsNaN returns true for both quiet and signaling NaN.
func (k Kind) IsNaN() bool {
	return k == QuietNaN || k == SignalingNaN
}

// Triple is a sign, a coefficient of decimal digits and a base 10 exponent.
//
// Coefficient holds digit values (0-9), not ASCII, most significant first.
// Payload holds the NaN diagnostic payload with the same digit convention and
// no leading zeros. Exponent is ignored for Infinity and NaN, Payload is
// ignored for everything but NaN.
type Triple struct {
	Kind        Kind
	Negative    bool
	Coefficient []byte
	Exponent    int64
	Payload     []byte
}

// New returns a finite triple.
func New(negative bool, coefficient []byte, exponent int64) Triple {
	return Triple{
		Kind:        Finite,
		Negative:    negative,
		Coefficient: coefficient,
		Exponent:    exponent,
	}
}

// Inf returns an infinity.
func Inf(negative bool) Triple {
	return Triple{Kind: Infinity, Negative: negative}
}

// NaN returns a quiet NaN with the given payload digits.
func NaN(negative bool, payload []byte) Triple {
	return Triple{Kind: QuietNaN, Negative: negative, Payload: TrimPayload(payload)}
}

// SNaN returns a signaling NaN with the given payload digits.
func SNaN(negative bool, payload []byte) Triple {
	return Triple{Kind: SignalingNaN, Negative: negative, Payload: TrimPayload(payload)}
}

// Digits converts ASCII decimal digits into digit values.
func Digits(s string) ([]byte, error) {
	ds := make([]byte, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, Error.New("invalid digit %q at offset %d", c, i)
		}

		ds[i] = c - '0'
	}

	return ds, nil
}

// MustDigits is like Digits but panics on invalid input.
func MustDigits(s string) []byte {
	ds, err := Digits(s)
	if err != nil {
		panic(err)
	}

	return ds
}

// ASCII converts digit values into ASCII decimal digits.
func ASCII(ds []byte) string {
	buf := make([]byte, len(ds))
	for i, d := range ds {
		buf[i] = '0' + d
	}

	return string(buf)
}

// TrimPayload drops leading zero digits. A payload of only zeros becomes
// empty.
func TrimPayload(ds []byte) []byte {
	i := 0
	for i < len(ds) && ds[i] == 0 {
		i++
	}

	if i == len(ds) {
		return nil
	}

	return ds[i:]
}

// TrimCoefficient drops leading zero digits, keeping at least one digit.
func TrimCoefficient(ds []byte) []byte {
	i := 0
	for i < len(ds)-1 && ds[i] == 0 {
		i++
	}

	return ds[i:]
}

// Validate reports whether the triple can be encoded.
func (t Triple) Validate() error {
	switch t.Kind {
	case Finite:
		if len(t.Coefficient) == 0 {
			return Error.New("empty coefficient")
		}

		for i, d := range t.Coefficient {
			if d > 9 {
				return Error.New("invalid coefficient digit %d at offset %d", d, i)
			}
		}
	case Infinity:
	case QuietNaN, SignalingNaN:
		for i, d := range t.Payload {
			if d > 9 {
				return Error.New("invalid payload digit %d at offset %d", d, i)
			}
		}
	default:
		return Error.New("invalid kind %d", t.Kind)
	}

	return nil
}

// IsFinite returns true if the triple is a finite number.
func (t Triple) IsFinite() bool {
	return t.Kind == Finite
}

// IsZero returns true if the triple is a finite zero of either sign and any
// exponent.
func (t Triple) IsZero() bool {
	if t.Kind != Finite {
		return false
	}

	for _, d := range t.Coefficient {
		if d != 0 {
			return false
		}
	}

	return true
}

// Significant returns the number of digits of the coefficient after leading
// zeros are dropped. Zero has one significant digit.
func (t Triple) Significant() int {
	return len(TrimCoefficient(t.Coefficient))
}

// Trimmed returns the triple with leading coefficient zeros removed. The
// value and exponent are unchanged.
func (t Triple) Trimmed() Triple {
	switch t.Kind {
	case Finite:
		t.Coefficient = TrimCoefficient(t.Coefficient)
	case QuietNaN, SignalingNaN:
		t.Payload = TrimPayload(t.Payload)
		t.Coefficient = nil
		t.Exponent = 0
	default:
		t.Coefficient = nil
		t.Exponent = 0
		t.Payload = nil
	}

	return t
}

// Reduced returns the triple with leading zeros removed and trailing zeros
// moved into the exponent. Zero reduces to a single 0 digit with exponent 0.
func (t Triple) Reduced() Triple {
	t = t.Trimmed()
	if t.Kind != Finite {
		return t
	}

	if t.IsZero() {
		t.Coefficient = []byte{0}
		t.Exponent = 0

		return t
	}

	n := len(t.Coefficient)
	for n > 1 && t.Coefficient[n-1] == 0 && t.Exponent < math.MaxInt64 {
		n--
		t.Exponent++
	}

	t.Coefficient = t.Coefficient[:n]

	return t
}

// Equal returns true if both triples have the same representation after
// leading zeros are dropped.
func (t Triple) Equal(o Triple) bool {
	t, o = t.Trimmed(), o.Trimmed()

	return t.Kind == o.Kind &&
		t.Negative == o.Negative &&
		t.Exponent == o.Exponent &&
		bytes.Equal(t.Coefficient, o.Coefficient) &&
		bytes.Equal(t.Payload, o.Payload)
}

// SameValue returns true if both triples denote the same value, including
// the sign of zero and the NaN kind and payload.
func (t Triple) SameValue(o Triple) bool {
	return t.Reduced().Equal(o.Reduced())
}

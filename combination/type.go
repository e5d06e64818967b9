package combination

import "github.com/calebcase/decbits/decimal"

// Type is one row of the combination table: the most significant byte
// matches when its fixed bits equal Prefix. Mask marks the free bits.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
	Kind   decimal.Kind

	// Large is set for finite forms whose leading digit is 8 or 9.
	Large bool
}

// Match returns true if this combination type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown         = Type{}
	Finite          = Type{0b_0000_0000, 0b_1011_1111, "f0", decimal.Finite, false}
	FiniteHigh      = Type{0b_0100_0000, 0b_1001_1111, "f10", decimal.Finite, false}
	FiniteLarge     = Type{0b_0110_0000, 0b_1000_1111, "f110", decimal.Finite, true}
	FiniteLargeHigh = Type{0b_0111_0000, 0b_1000_0111, "f1110", decimal.Finite, true}
	Infinity        = Type{0b_0111_1000, 0b_1000_0011, "inf", decimal.Infinity, false}
	QuietNaN        = Type{0b_0111_1100, 0b_1000_0001, "nan", decimal.QuietNaN, false}
	SignalingNaN    = Type{0b_0111_1110, 0b_1000_0001, "snan", decimal.SignalingNaN, false}

	// Types partitions all 256 byte values.
	Types = types{
		Finite,
		FiniteHigh,
		FiniteLarge,
		FiniteLargeHigh,
		Infinity,
		QuietNaN,
		SignalingNaN,
	}
)

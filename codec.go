package decbits

import (
	"encoding/binary"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/layout"
	"github.com/calebcase/decbits/text"
	"github.com/calebcase/decbits/width"
)

// Encode stores the triple in the smallest class that holds it exactly.
func Encode(t decimal.Triple) (Bitstring, error) {
	return EncodeWith(width.Default, t)
}

// EncodeWith stores the triple in the class chosen by s. The class must not
// exceed MaxClass.
func EncodeWith(s width.Selector, t decimal.Triple) (b Bitstring, err error) {
	err = t.Validate()
	if err != nil {
		return b, err
	}

	c, err := width.ForTriple(s, t)
	if err != nil {
		return b, err
	}

	return EncodeClass(c, t)
}

func checkClass(c width.Class) error {
	if c < 1 {
		return Error.New("invalid class %d", c)
	}

	if c > MaxClass {
		return CapacityExceeded.New("%s exceeds %s", c, MaxClass)
	}

	return nil
}

// EncodeClass stores the triple in class c, padding the coefficient with
// leading zeros as needed.
func EncodeClass(c width.Class, t decimal.Triple) (b Bitstring, err error) {
	defer Error.WrapP(&err)

	err = t.Validate()
	if err != nil {
		return b, err
	}

	err = checkClass(c)
	if err != nil {
		return b, err
	}

	b.class = c
	buf := b.raw()

	switch t.Kind {
	case decimal.Finite:
		if !c.Contains(t.Exponent) {
			return Bitstring{}, CapacityExceeded.New("exponent %d is outside the range of %s", t.Exponent, c)
		}

		var biased [8]byte
		binary.LittleEndian.PutUint64(biased[:], uint64(t.Exponent+c.Bias()))

		err = layout.EncodeFinite(buf, t.Negative, t.Coefficient, biased[:])
	case decimal.Infinity:
		layout.EncodeInfinity(buf, t.Negative)
	default:
		err = layout.EncodeNaN(buf, t.Negative, t.Kind == decimal.SignalingNaN, t.Payload)
	}

	if err != nil {
		return Bitstring{}, err
	}

	return b, nil
}

// Decode returns the triple held in b. Every bit pattern decodes; the
// coefficient never has leading zeros.
func Decode(b Bitstring) decimal.Triple {
	if b.class == 0 {
		return decimal.NaN(false, nil)
	}

	buf := b.raw()
	negative := layout.Negative(buf)

	switch kind := layout.Kind(buf); kind {
	case decimal.Finite:
		coefficient, biased := layout.DecodeFinite(buf)

		var padded [8]byte
		copy(padded[:], biased)

		exponent := int64(binary.LittleEndian.Uint64(padded[:])) - b.class.Bias()

		return decimal.New(negative, coefficient, exponent)
	case decimal.Infinity:
		return decimal.Inf(negative)
	default:
		return decimal.Triple{
			Kind:     kind,
			Negative: negative,
			Payload:  layout.DecodePayload(buf),
		}
	}
}

// Triple is shorthand for Decode(b).
func (b Bitstring) Triple() decimal.Triple {
	return Decode(b)
}

// Parse encodes decimal text in the smallest class that holds it exactly.
func Parse(s string) (b Bitstring, err error) {
	t, err := text.Parse(s)
	if err != nil {
		return b, err
	}

	return Encode(t)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Bitstring {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Format returns the canonical decimal text of b.
func Format(b Bitstring) string {
	return text.Format(Decode(b))
}

func nines(n int) []byte {
	ds := make([]byte, n)
	for i := range ds {
		ds[i] = 9
	}

	return ds
}

// Largest returns the finite value of c with the largest magnitude: all
// nines at the largest exponent.
func Largest(c width.Class, negative bool) (Bitstring, error) {
	err := checkClass(c)
	if err != nil {
		return Bitstring{}, err
	}

	return EncodeClass(c, decimal.New(negative, nines(c.Precision()), c.MaxExponent()))
}

// Smallest returns the non-zero value of c with the smallest magnitude: a
// single 1 at the smallest exponent.
func Smallest(c width.Class, negative bool) (Bitstring, error) {
	err := checkClass(c)
	if err != nil {
		return Bitstring{}, err
	}

	return EncodeClass(c, decimal.New(negative, []byte{1}, c.MinExponent()))
}

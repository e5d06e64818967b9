// Package binfloat converts between decimal triples and binary floating
// point numbers.
//
// Finite floats become the shortest decimal that parses back to the same
// float. Infinities map to Infinity. NaNs keep their sign, their quiet bit
// (quiet or signaling) and the remaining mantissa bits as a decimal payload,
// so a float survives the trip through a triple bit for bit.
//
// The way back is exact or an error: a triple converts only when the float
// nearest to it formats back to the same value.
package binfloat

import (
	"math"
	"strconv"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/text"
)

// format describes the bit layout of one binary float size.
type format struct {
	bits     int
	mantissa uint
	expMask  uint64
}

var (
	binary32 = format{bits: 32, mantissa: 23, expMask: 0xff}
	binary64 = format{bits: 64, mantissa: 52, expMask: 0x7ff}
)

func (f format) quiet() uint64   { return 1 << (f.mantissa - 1) }
func (f format) payload() uint64 { return f.quiet() - 1 }
func (f format) sign() uint64    { return 1 << uint(f.bits-1) }

// nan converts the bits of a NaN.
func (f format) nan(bits uint64) decimal.Triple {
	negative := bits&f.sign() != 0
	payload := ascii(strconv.FormatUint(bits&f.payload(), 10))

	if bits&f.quiet() != 0 {
		return decimal.NaN(negative, payload)
	}

	return decimal.SNaN(negative, payload)
}

// fromNaN builds the bits of a NaN. A signaling NaN needs a non-zero
// mantissa, so an empty payload becomes 1.
func (f format) fromNaN(t decimal.Triple) (uint64, error) {
	var payload uint64

	if p := decimal.TrimPayload(t.Payload); len(p) > 0 {
		v, err := strconv.ParseUint(decimal.ASCII(p), 10, 64)
		if err != nil || v > f.payload() {
			return 0, decimal.Inexact.New("payload %s does not fit binary%d", decimal.ASCII(p), f.bits)
		}

		payload = v
	}

	bits := f.expMask<<f.mantissa | payload

	if t.Kind == decimal.QuietNaN {
		bits |= f.quiet()
	} else if payload == 0 {
		bits |= 1
	}

	if t.Negative {
		bits |= f.sign()
	}

	return bits, nil
}

func ascii(s string) []byte {
	ds := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ds[i] = s[i] - '0'
	}

	return ds
}

// shortest converts strconv's shortest 'e' formatting into a triple.
func shortest(s string) decimal.Triple {
	t, err := text.Parse(s)
	if err != nil {
		// strconv only produces well formed literals.
		panic(err)
	}

	return t
}

// FromFloat64 converts a float64.
func FromFloat64(f float64) decimal.Triple {
	switch {
	case math.IsInf(f, 0):
		return decimal.Inf(f < 0)
	case math.IsNaN(f):
		return binary64.nan(math.Float64bits(f))
	}

	return shortest(strconv.FormatFloat(f, 'e', -1, 64))
}

// FromFloat32 converts a float32.
func FromFloat32(f float32) decimal.Triple {
	f64 := float64(f)

	switch {
	case math.IsInf(f64, 0):
		return decimal.Inf(f < 0)
	case f != f:
		return binary32.nan(uint64(math.Float32bits(f)))
	}

	return shortest(strconv.FormatFloat(f64, 'e', -1, 32))
}

// parse converts a finite triple with strconv and checks that nothing was
// lost.
func parse(t decimal.Triple, bits int) (float64, error) {
	s := text.Format(t)

	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, decimal.CapacityExceeded.New("%s overflows binary%d", s, bits)
	}

	back := shortest(strconv.FormatFloat(f, 'e', -1, bits))
	if !back.SameValue(t) {
		return 0, decimal.Inexact.New("%s is not exactly representable as binary%d", s, bits)
	}

	return f, nil
}

// ToFloat64 converts a triple into a float64.
func ToFloat64(t decimal.Triple) (float64, error) {
	switch t.Kind {
	case decimal.Finite:
		return parse(t, 64)
	case decimal.Infinity:
		if t.Negative {
			return math.Inf(-1), nil
		}

		return math.Inf(1), nil
	}

	bits, err := binary64.fromNaN(t)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// ToFloat32 converts a triple into a float32.
func ToFloat32(t decimal.Triple) (float32, error) {
	switch t.Kind {
	case decimal.Finite:
		f, err := parse(t, 32)

		return float32(f), err
	case decimal.Infinity:
		if t.Negative {
			return float32(math.Inf(-1)), nil
		}

		return float32(math.Inf(1)), nil
	}

	bits, err := binary32.fromNaN(t)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(bits)), nil
}

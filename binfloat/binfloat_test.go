package binfloat_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decbits/binfloat"
	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/text"
)

func TestFromFloat64(t *testing.T) {
	type TC struct {
		name     string
		f        float64
		expected string
	}

	tcs := []TC{
		{"123.44", 123.44, "123.44"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "-0"},
		{"tenth", 0.1, "0.1"},
		{"max", math.MaxFloat64, "1.7976931348623157e308"},
		{"smallest subnormal", math.SmallestNonzeroFloat64, "5e-324"},
		{"integer", 1e21, "1e21"},
		{"-inf", math.Inf(-1), "-inf"},
		{"quiet nan", math.Float64frombits(0x7ff8_0000_0000_0000), "nan"},
		{"negative nan payload", math.Float64frombits(0xfff8_0000_0000_002a), "-nan(42)"},
		{"signaling nan", math.Float64frombits(0x7ff0_0000_0000_0001), "snan(1)"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			tr := binfloat.FromFloat64(tc.f)
			require.Equal(t, tc.expected, text.Format(tr))

			back, err := binfloat.ToFloat64(tr)
			require.NoError(t, err)
			require.Equal(t, math.Float64bits(tc.f), math.Float64bits(back))
		})
	}
}

func TestParsedMatchesFloat(t *testing.T) {
	parsed, err := text.Parse("123.44")
	require.NoError(t, err)
	require.True(t, parsed.Equal(binfloat.FromFloat64(123.44)))
}

func TestFromFloat32(t *testing.T) {
	type TC struct {
		name     string
		f        float32
		expected string
	}

	tcs := []TC{
		{"tenth", 0.1, "0.1"},
		{"max", math.MaxFloat32, "3.4028235e38"},
		{"smallest subnormal", math.SmallestNonzeroFloat32, "1e-45"},
		{"inf", float32(math.Inf(1)), "inf"},
		{"signaling nan", math.Float32frombits(0xff80_0007), "-snan(7)"},
		{"quiet nan", math.Float32frombits(0x7fc0_0000), "nan"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			tr := binfloat.FromFloat32(tc.f)
			require.Equal(t, tc.expected, text.Format(tr))

			back, err := binfloat.ToFloat32(tr)
			require.NoError(t, err)
			require.Equal(t, math.Float32bits(tc.f), math.Float32bits(back))
		})
	}
}

func TestToFloat(t *testing.T) {
	type TC struct {
		name     string
		in       string
		expected float64
		class    string
	}

	tcs := []TC{
		{name: "trailing zeros", in: "0.10", expected: 0.1},
		{name: "exponent", in: "25e-1", expected: 2.5},
		{name: "too precise", in: "0.10000000000000001", class: "inexact"},
		{name: "underflow", in: "1e-400", class: "any"},
		{name: "overflow", in: "1e400", class: "capacity"},
		{name: "payload too large", in: "nan(2251799813685248)", class: "inexact"},
		{name: "signaling without payload", in: "snan", expected: math.Float64frombits(0x7ff0_0000_0000_0001)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			tr, err := text.Parse(tc.in)
			require.NoError(t, err)

			f, err := binfloat.ToFloat64(tr)

			switch tc.class {
			case "":
				require.NoError(t, err)
				require.Equal(t, math.Float64bits(tc.expected), math.Float64bits(f))
			case "inexact":
				require.True(t, decimal.Inexact.Has(err), "%v", err)
			case "capacity":
				require.True(t, decimal.CapacityExceeded.Has(err), "%v", err)
			default:
				require.Error(t, err)
			}
		})
	}

	_, err := binfloat.ToFloat32(decimal.New(false, decimal.MustDigits("1"), 39))
	require.True(t, decimal.CapacityExceeded.Has(err), "%v", err)

	_, err = binfloat.ToFloat32(decimal.New(false, decimal.MustDigits("1000000001"), -10))
	require.True(t, decimal.Inexact.Has(err), "%v", err)
}

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000

	properties := gopter.NewProperties(parameters)

	properties.Property("float64 bits survive", prop.ForAll(
		func(bits uint64) bool {
			f := math.Float64frombits(bits)

			back, err := binfloat.ToFloat64(binfloat.FromFloat64(f))

			return err == nil && math.Float64bits(back) == bits
		},
		gen.UInt64(),
	))

	properties.Property("float32 bits survive", prop.ForAll(
		func(bits uint32) bool {
			f := math.Float32frombits(bits)

			back, err := binfloat.ToFloat32(binfloat.FromFloat32(f))

			return err == nil && math.Float32bits(back) == bits
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

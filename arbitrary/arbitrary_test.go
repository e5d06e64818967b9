package arbitrary_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd/v3"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decbits"
	"github.com/calebcase/decbits/arbitrary"
	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/width"
)

func TestRanges(t *testing.T) {
	for c := width.Decimal32; c <= width.MaxInt64Class; c++ {
		require.Equal(t, c.Bias(), arbitrary.Bias(c).Int64(), c)
		require.Equal(t, c.MinExponent(), arbitrary.MinExponent(c).Int64(), c)
		require.Equal(t, c.MaxExponent(), arbitrary.MaxExponent(c).Int64(), c)
		require.Equal(t, c.Emax(), arbitrary.Emax(c).Int64(), c)
	}

	require.False(t, arbitrary.Bias(width.MaxInt64Class+2).IsInt64())
}

func TestSelect(t *testing.T) {
	type TC struct {
		name     string
		limit    width.Class
		digits   int
		exponent string
		class    width.Class
		err      bool
		Mark     error
	}

	tcs := []TC{
		{
			name:     "smallest",
			digits:   1,
			exponent: "0",
			class:    width.Decimal32,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "past decimal160",
			digits:   44,
			exponent: "0",
			class:    6,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "hundred digits",
			digits:   100,
			exponent: "-5",
			class:    12,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "exponent past int64",
			digits:   1,
			exponent: "9223372036854775808",
			class:    30,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "negative exponent past int64",
			digits:   1,
			exponent: "-9223372036854775809",
			class:    30,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "limited",
			limit:    width.Decimal160,
			digits:   44,
			exponent: "0",
			err:      true,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			e, ok := new(apd.BigInt).SetString(tc.exponent, 10)
			require.True(t, ok, tc.Mark)

			c, err := arbitrary.Selector{Limit: tc.limit}.SelectBig(tc.digits, e)
			if tc.err {
				require.Error(t, err, tc.Mark)
				require.True(t, decimal.CapacityExceeded.Has(err), tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.class, c, tc.Mark)
			require.True(t, arbitrary.Contains(c, e), tc.Mark)
			require.False(t, c > 1 && arbitrary.Contains(c-1, e) && tc.digits <= (c-1).Precision(), tc.Mark)
		})
	}

	c, err := width.ForTriple(arbitrary.Selector{}, decimal.New(false, make([]byte, 100), 0))
	require.NoError(t, err)
	require.Equal(t, width.Decimal32, c)

	c, err = width.ForTriple(arbitrary.Selector{}, decimal.New(false, decimal.MustDigits(strings.Repeat("7", 100)), 0))
	require.NoError(t, err)
	require.Equal(t, width.Class(12), c)
}

func TestParseFormat(t *testing.T) {
	type TC struct {
		name   string
		input  string
		output string
		class  width.Class
		Mark   error
	}

	tcs := []TC{
		{
			name:   "fixed",
			input:  "123.44",
			output: "123.44",
			class:  width.Decimal32,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "wide coefficient",
			input:  strings.Repeat("9", 44),
			output: strings.Repeat("9", 44),
			class:  6,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "huge exponent",
			input:  "1e9223372036854775808",
			output: "1e9223372036854775808",
			class:  30,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "huge negative exponent",
			input:  "-2.5e-100000000000000000000",
			output: "-2.5e-100000000000000000000",
			class:  31,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "nan payload",
			input:  "-snan(" + strings.Repeat("1", 50) + ")",
			output: "-snan(" + strings.Repeat("1", 50) + ")",
			class:  6,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "infinity",
			input:  "Infinity",
			output: "inf",
			class:  width.Decimal32,
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			b, err := arbitrary.Parse(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.class, b.Class(), tc.Mark)
			require.Equal(t, tc.class.Bytes(), b.Len(), tc.Mark)
			require.Equal(t, tc.output, b.String(), tc.Mark)

			back, err := arbitrary.FromLEBytes(b.LEBytes())
			require.NoError(t, err, tc.Mark)
			require.True(t, b.Equal(back), tc.Mark)
		})
	}

	_, err := arbitrary.Parse("1e+")
	require.Error(t, err)
	require.True(t, decimal.ParseError.Has(err))

	_, err = arbitrary.FromLEBytes([]byte{1, 2})
	require.Error(t, err)

	var zero arbitrary.Bitstring
	require.Equal(t, "<invalid>", zero.String())
	require.Equal(t, decimal.QuietNaN, zero.Kind())
	require.False(t, zero.IsNegative())
	require.Equal(t, decimal.QuietNaN, arbitrary.Decode(zero).Kind)
}

func TestTriple(t *testing.T) {
	d, err := arbitrary.ParseDecimal("12e-3")
	require.NoError(t, err)

	tr, err := d.Triple()
	require.NoError(t, err)
	require.Equal(t, decimal.New(false, []byte{1, 2}, -3), tr)
	require.True(t, arbitrary.FromTriple(tr).Equal(d))

	d, err = arbitrary.ParseDecimal("1e99999999999999999999")
	require.NoError(t, err)

	_, err = d.Triple()
	require.Error(t, err)
	require.True(t, decimal.CapacityExceeded.Has(err))

	_, err = arbitrary.EncodeClass(width.Decimal32, d)
	require.Error(t, err)
	require.True(t, decimal.CapacityExceeded.Has(err))

	_, err = arbitrary.EncodeClass(0, d)
	require.Error(t, err)
}

func TestAPD(t *testing.T) {
	d := arbitrary.FromAPD(apd.New(-12345, -2))
	require.Equal(t, "-123.45", d.String())

	x, err := arbitrary.ParseDecimal("1.50")
	require.NoError(t, err)

	a, err := x.APD()
	require.NoError(t, err)
	require.Equal(t, "1.50", a.String())
	require.True(t, arbitrary.FromAPD(a).Equal(x))

	inf := arbitrary.FromAPD(&apd.Decimal{Form: apd.Infinite, Negative: true})
	require.Equal(t, "-inf", inf.String())

	a, err = inf.APD()
	require.NoError(t, err)
	require.Equal(t, apd.Infinite, a.Form)
	require.True(t, a.Negative)

	snan := arbitrary.FromAPD(&apd.Decimal{Form: apd.NaNSignaling})
	require.Equal(t, "snan", snan.String())

	x, err = arbitrary.ParseDecimal("nan(12)")
	require.NoError(t, err)

	_, err = x.APD()
	require.Error(t, err)
	require.True(t, decimal.Inexact.Has(err))

	x, err = arbitrary.ParseDecimal("1e3000000000")
	require.NoError(t, err)

	_, err = x.APD()
	require.Error(t, err)
	require.True(t, decimal.CapacityExceeded.Has(err))
}

func TestMatchesFixed(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	top := width.Decimal160

	properties.Property("fixed classes encode identically", prop.ForAll(
		func(negative bool, coefficient []uint8, exponent int64) bool {
			if len(coefficient) == 0 {
				coefficient = []uint8{0}
			}

			if len(coefficient) > top.Precision() {
				coefficient = coefficient[:top.Precision()]
			}

			tr := decimal.New(negative, coefficient, exponent)

			fixed, err := decbits.Encode(tr)
			if err != nil {
				return false
			}

			wide, err := arbitrary.EncodeTriple(tr)
			if err != nil {
				return false
			}

			return wide.Class() == fixed.Class() && string(wide.LEBytes()) == string(fixed.LEBytes())
		},
		gen.Bool(),
		gen.SliceOf(gen.UInt8Range(0, 9)),
		gen.Int64Range(top.MinExponent(), top.MaxExponent()),
	))

	properties.TestingRun(t)
}

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode", prop.ForAll(
		func(negative bool, coefficient []uint8, exponent string) bool {
			if len(coefficient) == 0 {
				coefficient = []uint8{0}
			}

			e, ok := new(apd.BigInt).SetString(exponent, 10)
			if !ok {
				return false
			}

			d := arbitrary.New(negative, coefficient, e)

			b, err := arbitrary.Encode(d)
			if err != nil {
				return false
			}

			back, err := arbitrary.ParseDecimal(b.String())
			if err != nil {
				return false
			}

			return arbitrary.Decode(b).Equal(d) && back.Equal(d)
		},
		gen.Bool(),
		gen.SliceOf(gen.UInt8Range(0, 9)),
		gen.RegexMatch(`-?[1-9][0-9]{0,30}`),
	))

	properties.Property("every pattern decodes", prop.ForAll(
		func(c int, data []byte) bool {
			class := width.Class(c)

			b, err := arbitrary.FromLEBytes(data[:class.Bytes()])
			if err != nil {
				return false
			}

			d := arbitrary.Decode(b)

			again, err := arbitrary.EncodeClass(class, d)
			if err != nil {
				return false
			}

			return arbitrary.Decode(again).Equal(d)
		},
		gen.IntRange(1, 12),
		gen.SliceOfN(48, gen.UInt8()),
	))

	properties.TestingRun(t)
}

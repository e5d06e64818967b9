package text_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/text"
)

func describe(t decimal.Triple) string {
	sign := "+"
	if t.Negative {
		sign = "-"
	}

	if t.Kind == decimal.Finite {
		return fmt.Sprintf("%s %s %s e%d => %s", t.Kind, sign, decimal.ASCII(t.Coefficient), t.Exponent, text.Format(t))
	}

	return fmt.Sprintf("%s %s payload=%s => %s", t.Kind, sign, decimal.ASCII(t.Payload), text.Format(t))
}

func TestDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/parse", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "parse":
			var sb strings.Builder

			for _, line := range strings.Split(d.Input, "\n") {
				tr, err := text.Parse(line)
				if err != nil {
					fmt.Fprintf(&sb, "%q: %v\n", line, err)

					continue
				}

				fmt.Fprintf(&sb, "%q: %s\n", line, describe(tr))
			}

			return sb.String()
		default:
			t.Fatalf("unknown command %q", d.Cmd)
		}

		return ""
	})
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"", "-", "+", "1e", "1e-", "in", "n", "s", "nan(", "nan(123", "x",
		"1x", "1ex", "1.3.2", "1e1.1", "1-", "--", "+-", "..", ".5", "1.",
		"infinityx", "nan()x", "n(", "nan(1.2)", "nan(-1)", "nan(1e2", "inf(1)",
		"1 ", " 1", "1e+-1", "0x10", "1_000",
	}

	for i, in := range inputs {
		t.Run(fmt.Sprintf("[%d]%q", i, in), func(t *testing.T) {
			_, err := text.Parse(in)
			require.Error(t, err)
			require.True(t, decimal.ParseError.Has(err), "%v", err)
		})
	}
}

func TestParseExponentOverflow(t *testing.T) {
	for _, in := range []string{
		"1e9223372036854775808",
		"1e-9223372036854775809",
		"1.5e-9223372036854775808",
	} {
		_, err := text.Parse(in)
		require.Error(t, err, in)
		require.True(t, decimal.CapacityExceeded.Has(err), "%v", err)
	}

	tr, err := text.Parse("1e-9223372036854775808")
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), tr.Exponent)
}

func TestFormat(t *testing.T) {
	type TC struct {
		name     string
		t        decimal.Triple
		expected string
	}

	tcs := []TC{
		{"integer", decimal.New(false, decimal.MustDigits("12344"), 0), "12344"},
		{"point", decimal.New(false, decimal.MustDigits("12344"), -2), "123.44"},
		{"leading zero", decimal.New(false, decimal.MustDigits("05"), -1), "0.5"},
		{"zeros", decimal.New(false, decimal.MustDigits("000"), -2), "0.00"},
		{"all fraction", decimal.New(false, decimal.MustDigits("5"), -1), "0.5"},
		{"leading fraction zeros", decimal.New(false, decimal.MustDigits("123"), -4), "0.0123"},
		{"most leading zeros", decimal.New(true, decimal.MustDigits("005"), -6), "-0.000005"},
		{"small", decimal.New(false, decimal.MustDigits("5"), -7), "5e-7"},
		{"positive exponent", decimal.New(true, decimal.MustDigits("123"), 2), "-1.23e4"},
		{"zero positive exponent", decimal.New(false, decimal.MustDigits("0"), 5), "0e5"},
		{"negative zero", decimal.New(true, decimal.MustDigits("0"), 0), "-0"},
		{"huge exponent", decimal.New(false, decimal.MustDigits("12"), math.MaxInt64), "12e9223372036854775807"},
		{"inf", decimal.Inf(false), "inf"},
		{"-inf", decimal.Inf(true), "-inf"},
		{"nan", decimal.NaN(false, nil), "nan"},
		{"-snan payload", decimal.SNaN(true, decimal.MustDigits("0042")), "-snan(42)"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.expected, text.Format(tc.t))

			back, err := text.Parse(tc.expected)
			require.NoError(t, err)
			require.True(t, back.Equal(tc.t), "%+v", back)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000

	properties := gopter.NewProperties(parameters)

	properties.Property("parse inverts format", prop.ForAll(
		func(negative bool, coefficient []uint8, exponent int64) bool {
			if len(coefficient) == 0 {
				coefficient = []uint8{0}
			}

			tr := decimal.New(negative, coefficient, exponent)

			back, err := text.Parse(text.Format(tr))
			if err != nil {
				return false
			}

			return back.Negative == tr.Negative &&
				back.Exponent == tr.Exponent &&
				decimal.ASCII(back.Coefficient) == decimal.ASCII(tr.Coefficient)
		},
		gen.Bool(),
		gen.SliceOf(gen.UInt8Range(0, 9)),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

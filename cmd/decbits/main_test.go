package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (stdout, stderr string, err error) {
	var out, log bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&log)

	err = cmd.Execute()

	return out.String(), log.String(), err
}

func TestCommands(t *testing.T) {
	type TC struct {
		name   string
		args   []string
		output string
		err    bool
		Mark   error
	}

	tcs := []TC{
		{
			name:   "encode",
			args:   []string{"encode", "123.44", "1"},
			output: "decimal32\t4\tc4493022\ndecimal32\t4\t01005022\n",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "encode negative",
			args:   []string{"encode", "--", "-inf"},
			output: "decimal32\t4\t000000f8\n",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "encode class",
			args:   []string{"encode", "--class", "4", "--", "-123456789e2"},
			output: "decimal128\t16\tcf5b390a0000000000000000008008a2\n",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "encode big",
			args:   []string{"encode", "--big", "1e9223372036854775808"},
			output: "decimal960\t120\t",
			Mark:   oops.New("unexpected"),
		},
		{
			name: "encode too large",
			args: []string{"encode", "1e9223372036854775808"},
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			name: "encode malformed",
			args: []string{"encode", "1.2.3"},
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			name:   "decode",
			args:   []string{"decode", "c4493022", "fffcf377"},
			output: "123.44\n9.999999e96\n",
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "decode wide",
			args:   []string{"decode", strings.Repeat("00", 24)},
			output: "0e-",
			Mark:   oops.New("unexpected"),
		},
		{
			name: "decode odd length",
			args: []string{"decode", "c44930"},
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			name: "decode wrong class",
			args: []string{"decode", "--class", "2", "c4493022"},
			err:  true,
			Mark: oops.New("unexpected"),
		},
		{
			name: "decode bad hex",
			args: []string{"decode", "zz"},
			err:  true,
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			out, _, err := run(tc.args...)
			if tc.err {
				require.Error(t, err, tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)
			require.True(t, strings.HasPrefix(out, tc.output), "%q %v", out, tc.Mark)
		})
	}
}

func TestVerbose(t *testing.T) {
	out, log, err := run("encode", "--verbose", "--dump", "1.50")
	require.NoError(t, err)
	require.Contains(t, out, "decimal32\t4\t")
	require.Contains(t, out, "Coefficient")
	require.Contains(t, log, "class=decimal32")
	require.Contains(t, log, "bytes=4")
	require.Contains(t, log, "kind=finite")

	_, log, err = run("encode", "1.50")
	require.NoError(t, err)
	require.NotContains(t, log, "encoded")
}

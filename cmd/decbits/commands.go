package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"

	"github.com/calebcase/decbits"
	"github.com/calebcase/decbits/arbitrary"
	"github.com/calebcase/decbits/decimal"
	"github.com/calebcase/decbits/text"
	"github.com/calebcase/decbits/width"
)

// Error is the class of command line usage errors.
var Error = errs.Class("decbits")

type options struct {
	class   int
	big     bool
	verbose bool
	dump    bool

	log *logrus.Logger
}

func (o *options) register(f *pflag.FlagSet) {
	f.IntVar(&o.class, "class", 0, "width class to use (0 selects the smallest that fits)")
	f.BoolVar(&o.big, "big", false, "allow classes past decimal160 and exponents past int64")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log each conversion step to stderr")
	f.BoolVar(&o.dump, "dump", false, "dump the decoded value")
}

func (o *options) setup(cmd *cobra.Command) {
	o.log = logrus.New()
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if o.verbose {
		o.log.SetLevel(logrus.DebugLevel)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           "decbits",
		Short:         "Convert between decimal text and IEEE 754 decimal interchange bytes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.setup(cmd)
		},
	}

	o.register(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "encode <literal>...",
			Short: "Encode decimal literals and print class, length and hex bytes",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.encode(cmd.OutOrStdout(), args)
			},
		},
		&cobra.Command{
			Use:   "decode <hex>...",
			Short: "Decode little-endian hex bytes and print the canonical text",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.decode(cmd.OutOrStdout(), args)
			},
		},
	)

	return root
}

func (o *options) encode(out io.Writer, args []string) (err error) {
	for _, arg := range args {
		var data []byte
		var dump interface{}

		if o.big {
			data, dump, err = o.encodeBig(arg)
		} else {
			data, dump, err = o.encodeFixed(arg)
		}

		if err != nil {
			return err
		}

		c, _ := width.Of(len(data))

		o.log.WithFields(logrus.Fields{
			"input": arg,
			"class": c.String(),
			"bytes": len(data),
		}).Debug("encoded")

		fmt.Fprintf(out, "%s\t%d\t%s\n", c, len(data), hex.EncodeToString(data))

		if o.dump {
			spew.Fdump(out, dump)
		}
	}

	return nil
}

func (o *options) encodeFixed(arg string) (data []byte, dump interface{}, err error) {
	t, err := text.Parse(arg)
	if err != nil {
		return nil, nil, err
	}

	o.log.WithFields(logrus.Fields{
		"kind":   t.Kind.String(),
		"digits": t.Significant(),
	}).Debug("parsed")

	var b decbits.Bitstring
	if o.class > 0 {
		b, err = decbits.EncodeClass(width.Class(o.class), t)
	} else {
		b, err = decbits.Encode(t)
	}

	if err != nil {
		return nil, nil, err
	}

	return b.LEBytes(), t, nil
}

func (o *options) encodeBig(arg string) (data []byte, dump interface{}, err error) {
	d, err := arbitrary.ParseDecimal(arg)
	if err != nil {
		return nil, nil, err
	}

	o.log.WithFields(logrus.Fields{
		"kind":   d.Kind.String(),
		"digits": len(decimal.TrimCoefficient(d.Coefficient)),
	}).Debug("parsed")

	var b arbitrary.Bitstring
	if o.class > 0 {
		b, err = arbitrary.EncodeClass(width.Class(o.class), d)
	} else {
		b, err = arbitrary.Encode(d)
	}

	if err != nil {
		return nil, nil, err
	}

	return b.LEBytes(), d, nil
}

func (o *options) decode(out io.Writer, args []string) (err error) {
	for _, arg := range args {
		data, err := hex.DecodeString(arg)
		if err != nil {
			return Error.New("invalid hex %q: %v", arg, err)
		}

		c, ok := width.Of(len(data))
		if !ok {
			return Error.New("invalid length %d: not a positive multiple of 4", len(data))
		}

		if o.class > 0 && c != width.Class(o.class) {
			return Error.New("%s is not %s", c, width.Class(o.class))
		}

		var s string
		var dump interface{}

		if o.big || c > decbits.MaxClass {
			b, err := arbitrary.FromLEBytes(data)
			if err != nil {
				return err
			}

			d := arbitrary.Decode(b)
			s, dump = arbitrary.Format(d), d
		} else {
			b, err := decbits.FromLEBytes(data)
			if err != nil {
				return err
			}

			t := decbits.Decode(b)
			s, dump = text.Format(t), t
		}

		o.log.WithFields(logrus.Fields{
			"class": c.String(),
			"bytes": len(data),
		}).Debug("decoded")

		fmt.Fprintln(out, s)

		if o.dump {
			spew.Fdump(out, dump)
		}
	}

	return nil
}

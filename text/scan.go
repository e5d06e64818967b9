// Package text parses and formats decimal literals.
//
// The accepted grammar is:
//
//  literal  = [sign] (finite | infinity | nan)
//  sign     = "+" | "-"
//  finite   = digits ["." digits] [("e" | "E") [sign] digits]
//  infinity = "inf" | "infinity"
//  nan      = ("nan" | "snan") ["(" [digits] ")"]
//
// Words are case-insensitive. The whole input must be consumed.
package text

import (
	"github.com/calebcase/decbits/decimal"
)

// Literal is the raw result of scanning decimal text. Digit fields hold digit
// values, not ASCII.
type Literal struct {
	Kind     decimal.Kind
	Negative bool

	Integer  []byte
	Fraction []byte

	// Exponent is nil when the literal has no exponent part.
	Exponent         []byte
	ExponentNegative bool

	Payload []byte
}

// Coefficient returns the integer and fraction digits as one coefficient.
func (l Literal) Coefficient() []byte {
	ds := make([]byte, 0, len(l.Integer)+len(l.Fraction))
	ds = append(ds, l.Integer...)
	ds = append(ds, l.Fraction...)

	return ds
}

type scanner struct {
	s string
	i int
}

func (sc *scanner) done() bool {
	return sc.i >= len(sc.s)
}

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}

	return sc.s[sc.i]
}

func (sc *scanner) unexpected(expected string) error {
	if sc.done() {
		return decimal.ParseError.New("unexpected end of input, expected %s", expected)
	}

	return decimal.ParseError.New("unexpected character %q at offset %d, expected %s", sc.s[sc.i], sc.i, expected)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}

	return c
}

// digits consumes a run of digits and returns their values.
func (sc *scanner) digits() []byte {
	start := sc.i
	for !sc.done() && isDigit(sc.s[sc.i]) {
		sc.i++
	}

	if sc.i == start {
		return nil
	}

	ds := make([]byte, sc.i-start)
	for j := range ds {
		ds[j] = sc.s[start+j] - '0'
	}

	return ds
}

// word consumes w (lower case) if the input continues with it in any case.
func (sc *scanner) word(w string) bool {
	if len(sc.s)-sc.i < len(w) {
		return false
	}

	for j := 0; j < len(w); j++ {
		if lower(sc.s[sc.i+j]) != w[j] {
			return false
		}
	}

	sc.i += len(w)

	return true
}

// Scan splits decimal text into its literal pieces without interpreting
// them.
func Scan(s string) (l Literal, err error) {
	sc := &scanner{s: s}

	if sc.done() {
		return l, decimal.ParseError.New("empty input")
	}

	if c := sc.peek(); c == '+' || c == '-' {
		l.Negative = c == '-'
		sc.i++
	}

	switch c := lower(sc.peek()); {
	case isDigit(c):
		err = sc.finite(&l)
	case c == 'i':
		err = sc.infinity(&l)
	case c == 'n' || c == 's':
		err = sc.nan(&l)
	default:
		err = sc.unexpected("a digit, inf or nan")
	}

	if err != nil {
		return Literal{}, err
	}

	if !sc.done() {
		return Literal{}, sc.unexpected("end of input")
	}

	return l, nil
}

func (sc *scanner) finite(l *Literal) error {
	l.Kind = decimal.Finite
	l.Integer = sc.digits()

	if sc.peek() == '.' {
		sc.i++

		l.Fraction = sc.digits()
		if l.Fraction == nil {
			return sc.unexpected("a digit after the decimal point")
		}
	}

	if c := sc.peek(); c == 'e' || c == 'E' {
		sc.i++

		if c := sc.peek(); c == '+' || c == '-' {
			l.ExponentNegative = c == '-'
			sc.i++
		}

		l.Exponent = sc.digits()
		if l.Exponent == nil {
			return sc.unexpected("an exponent digit")
		}
	}

	return nil
}

func (sc *scanner) infinity(l *Literal) error {
	l.Kind = decimal.Infinity

	if sc.word("infinity") || sc.word("inf") {
		return nil
	}

	return sc.unexpected("inf or infinity")
}

func (sc *scanner) nan(l *Literal) error {
	switch {
	case sc.word("nan"):
		l.Kind = decimal.QuietNaN
	case sc.word("snan"):
		l.Kind = decimal.SignalingNaN
	default:
		return sc.unexpected("nan or snan")
	}

	if sc.peek() != '(' {
		return nil
	}
	sc.i++

	l.Payload = decimal.TrimPayload(sc.digits())

	if sc.peek() != ')' {
		return sc.unexpected("a payload digit or )")
	}
	sc.i++

	return nil
}

package decbits

import (
	"io"

	"github.com/calebcase/decbits/width"
)

// Decoder reads consecutive bitstrings of one class from a byte stream, for
// example a column of decimal128 values.
type Decoder struct {
	r     io.Reader
	class width.Class
	buf   [MaxBytes]byte
}

// NewDecoder returns a decoder reading class c bitstrings from r.
func NewDecoder(r io.Reader, c width.Class) *Decoder {
	return &Decoder{
		r:     r,
		class: c,
	}
}

// Decode reads the next bitstring. It returns io.EOF when the stream ends
// cleanly and io.ErrUnexpectedEOF when it ends inside a value.
func (d *Decoder) Decode() (b Bitstring, err error) {
	err = checkClass(d.class)
	if err != nil {
		return b, err
	}

	data := d.buf[:d.class.Bytes()]

	_, err = io.ReadFull(d.r, data)
	if err != nil {
		return b, err
	}

	return FromClass(d.class, data)
}

// Encoder writes bitstrings of one class to a byte stream.
type Encoder struct {
	w     io.Writer
	class width.Class
}

// NewEncoder returns an encoder writing class c bitstrings to w.
func NewEncoder(w io.Writer, c width.Class) *Encoder {
	return &Encoder{
		w:     w,
		class: c,
	}
}

// Encode writes b, which must be of the encoder's class.
func (e *Encoder) Encode(b Bitstring) (err error) {
	defer Error.WrapP(&err)

	if b.class != e.class {
		return Error.New("cannot write %s to a %s stream", b.class, e.class)
	}

	_, err = e.w.Write(b.raw())

	return err
}

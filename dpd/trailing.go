package dpd

// Put stores d at the given bit offset of a little-endian buffer, replacing
// the 10 bits already there. Bits past the end of buf are dropped.
func Put(buf []byte, bit int, d Declet) {
	i, off := bit/8, uint(bit%8)

	v := uint32(d&Mask) << off
	m := uint32(Mask) << off

	for j := 0; j < 3 && i+j < len(buf); j++ {
		shift := uint(8 * j)
		buf[i+j] = buf[i+j]&^byte(m>>shift) | byte(v>>shift)
	}
}

// Get loads the declet at the given bit offset of a little-endian buffer.
// Bits past the end of buf read as zero.
func Get(buf []byte, bit int) Declet {
	i, off := bit/8, uint(bit%8)

	var v uint32
	for j := 0; j < 3 && i+j < len(buf); j++ {
		v |= uint32(buf[i+j]) << uint(8*j)
	}

	return Declet(v>>off) & Mask
}

// digit returns ds[i], treating positions before the start as zero.
func digit(ds []byte, i int) byte {
	if i < 0 {
		return 0
	}

	return ds[i]
}

// EncodeTrailing packs the trailing 3n digits of a coefficient into n
// declets starting at bit 0 of buf. The least significant digits go in the
// first declet.
//
// The coefficient may be shorter than 3n+1 digits; missing leading digits
// are zero. It returns the leading digit, the one that does not fit in the
// declets and belongs in the combination field.
func EncodeTrailing(buf []byte, n int, coefficient []byte) (msd byte) {
	last := len(coefficient) - 1

	for j := 0; j < n; j++ {
		at := last - 3*j

		Put(buf, j*Bits, Pack(
			digit(coefficient, at-2),
			digit(coefficient, at-1),
			digit(coefficient, at),
		))
	}

	return digit(coefficient, last-3*n)
}

// DecodeTrailing appends the 3n digits held in n declets starting at bit 0
// of buf, most significant first.
func DecodeTrailing(dst []byte, buf []byte, n int) []byte {
	for j := n - 1; j >= 0; j-- {
		d2, d1, d0 := Unpack(Get(buf, j*Bits))
		dst = append(dst, d2, d1, d0)
	}

	return dst
}

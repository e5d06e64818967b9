// Package dpd packs decimal digits into densely packed decimal declets.
//
// A declet is 10 bits holding 3 decimal digits. Digits 0-7 are "small" (the
// high BCD bit is zero) and digits 8-9 are "large". With the BCD digits of a
// triple written as (abcd)(efgh)(ijkm), the declet bits pqr stu v wxy are:
//
//  | a e i || p q r | s t u | v | w x y |
//  |-------||-------|-------|---|-------|
//  | 0 0 0 || b c d | f g h | 0 | j k m |
//  | 0 0 1 || b c d | f g h | 1 | 0 0 m |
//  | 0 1 0 || b c d | j k h | 1 | 0 1 m |
//  | 1 0 0 || j k d | f g h | 1 | 1 0 m |
//  | 1 1 0 || j k d | 0 0 h | 1 | 1 1 m |
//  | 1 0 1 || f g d | 0 1 h | 1 | 1 1 m |
//  | 0 1 1 || b c d | 1 0 h | 1 | 1 1 m |
//  | 1 1 1 || 0 0 d | 1 1 h | 1 | 1 1 m |
//  |-------||-------|-------|---|-------|
//
// Every one of the 1024 bit patterns decodes to three digits. The 24
// patterns that differ from a canonical declet only in the p q bits of the
// last row are non-canonical; they decode like the canonical 0 0 form.
package dpd

// Declet is a 10 bit densely packed decimal group.
type Declet uint16

// Bits is the width of a declet.
const Bits = 10

// Mask covers the bits of a declet.
const Mask Declet = 0b11_1111_1111

// Pack encodes three digits, most significant first. Digits must be 0-9.
func Pack(d2, d1, d0 byte) Declet {
	b2, b1, b0 := Declet(d2), Declet(d1), Declet(d0)

	// Low three bits of each digit.
	l2, l1, l0 := b2&7, b1&7, b0&7

	// The "m" bit is always the lowest bit of the last digit.
	m := b0 & 1

	switch (d2>>3)<<2 | (d1>>3)<<1 | d0>>3 {
	case 0b000:
		return l2<<7 | l1<<4 | l0
	case 0b001:
		return l2<<7 | l1<<4 | 0b100_0 | m
	case 0b010:
		return l2<<7 | (l0&6)<<4 | (b1&1)<<4 | 0b101_0 | m
	case 0b100:
		return (l0&6)<<7 | (b2&1)<<7 | l1<<4 | 0b110_0 | m
	case 0b110:
		return (l0&6)<<7 | (b2&1)<<7 | (b1&1)<<4 | 0b111_0 | m
	case 0b101:
		return (l1&6)<<7 | (b2&1)<<7 | 0b01<<5 | (b1&1)<<4 | 0b111_0 | m
	case 0b011:
		return l2<<7 | 0b10<<5 | (b1&1)<<4 | 0b111_0 | m
	default:
		return (b2&1)<<7 | 0b11<<5 | (b1&1)<<4 | 0b111_0 | m
	}
}

// Unpack decodes a declet into three digits, most significant first. Bits
// above the declet are ignored.
func Unpack(d Declet) (d2, d1, d0 byte) {
	d &= Mask

	pqr := byte(d>>7) & 7
	pq := pqr & 6
	r := pqr & 1
	stu := byte(d>>4) & 7
	st := stu & 6
	u := stu & 1
	wxy := byte(d) & 7
	y := wxy & 1

	if d&0b1000 == 0 {
		return pqr, stu, wxy
	}

	switch wxy >> 1 {
	case 0b00:
		return pqr, stu, 8 | y
	case 0b01:
		return pqr, 8 | u, st | y
	case 0b10:
		return 8 | r, stu, pq | y
	}

	switch st >> 1 {
	case 0b00:
		return 8 | r, 8 | u, pq | y
	case 0b01:
		return 8 | r, pq | u, 8 | y
	case 0b10:
		return pqr, 8 | u, 8 | y
	}

	return 8 | r, 8 | u, 8 | y
}

// Canonical reports whether d is the encoding Pack produces for its digits.
func Canonical(d Declet) bool {
	return Pack(Unpack(d)) == d&Mask
}

// Package combination encodes the sign and combination field of a decimal
// interchange format.
//
// The combination field sits in the most significant byte (the last byte,
// since formats are little-endian). It uses a prefix coding scheme to
// indicate whether the value is finite and, for finite values, where the two
// leading exponent bits and the leading coefficient digit are.
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available (blanks) in the most significant byte. Bit 7 is the sign. Bits 1
// and 0 are the top of the exponent continuation for finite values.
//
//  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 || Type                |
//  |---|-------------------|-------||---------------------|
//  |   | 0 |               |       || Finite              |
//  |   | 1 . 0 |           |       || Finite High         |
//  |   | 1 . 1 . 0 |       |       || Finite Large        |
//  |   | 1 . 1 . 1 . 0 |   |       || Finite Large High   |
//  |   | 1 . 1 . 1 . 1 . 0 |       || Infinity            |
//  |   | 1 . 1 . 1 . 1 . 1 | 0 |   || Quiet NaN           |
//  |   | 1 . 1 . 1 . 1 . 1 | 1 |   || Signaling NaN       |
//  |---|-------------------|-------||---------------------|
//
// For the small forms (Finite, Finite High) bits 6 and 5 are the top two
// exponent bits and bits 4 to 2 are the leading digit (0-7). For the large
// forms bits 4 and 3 are the top two exponent bits and bit 2 is the low bit
// of the leading digit (8 or 9).
//
// Every byte matches exactly one type, so decoding never fails. Bits that a
// type does not use (the exponent continuation of Infinity and NaN, the bits
// below the signaling bit) are ignored when reading and written as zero.
package combination

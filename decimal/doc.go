// Package decimal provides the decimal triple shared by every codec in this
// module.
//
// The equation for a finite decimal number is:
//
//  number = (-1)^sign * coefficient * 10 ^ exponent
//
// Where coefficient is an unscaled integer written as decimal digits and
// exponent is a base 10 exponent. For example:
//
//  123.44 = 12344 * 10^-2
//
// Digits are kept exactly as written, so 1.50 (150 * 10^-2) and 1.5 (15 *
// 10^-1) are different triples with the same value.
//
// Interchange Format
//
// Triples are encoded into the IEEE 754-2019 decimal interchange format with
// a densely packed decimal (DPD) coefficient. A width class w selects a
// format of 4w bytes (k = 32w bits):
//
//  | Class      | Bytes | Precision | Exponent Range     |
//  |------------|-------|-----------|--------------------|
//  | Decimal32  | 4     | 7         | -101 .. 90         |
//  | Decimal64  | 8     | 16        | -398 .. 369        |
//  | Decimal96  | 12    | 25        | -1559 .. 1512      |
//  | Decimal128 | 16    | 34        | -6176 .. 6111      |
//  | Decimal160 | 20    | 43        | -24617 .. 24534    |
//  |------------|-------|-----------|--------------------|
//
// Bytes are stored little-endian: the sign and combination field live in the
// last byte. Reading the format from the most significant bit down:
//
//  | sign | combination (5) | exponent continuation | trailing significand |
//  |------|-----------------|-----------------------|----------------------|
//  | 1    | G0 .. G4        | k/16 + 4 bits         | 15k/16 - 10 bits     |
//  |------|-----------------|-----------------------|----------------------|
//
// The last byte holds the sign, the combination field and the top two bits of
// the exponent continuation:
//
//  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 || Kind                      |
//  |---|-------------------|-------||---------------------------|
//  | s | 0 . b . c . d . e | x . x || Finite, digit 0-7 (0cde)  |
//  | s | 1 . 0 . c . d . e | x . x || Finite, digit 0-7 (10cde) |
//  | s | 1 . 1 . a . b . e | x . x || Finite, digit 8-9 (100e)  |
//  | s | 1 . 1 . 1 . 1 . 0 | x . x || Infinity                  |
//  | s | 1 . 1 . 1 . 1 . 1 | 0 . x || Quiet NaN                 |
//  | s | 1 . 1 . 1 . 1 . 1 | 1 . x || Signaling NaN             |
//  |---|-------------------|-------||---------------------------|
//
// For finite values the two leading exponent bits are either G0 G1 (small
// leading digit) or G2 G3 (large leading digit). They are never 1 1, which is
// how Infinity and NaN stay out of the way.
//
// Trailing Significand
//
// The remaining p - 1 digits are packed three at a time into 10 bit declets,
// least significant digits at bit 0. See package dpd.
//
// Note: The encoding cannot represent leading zeros of the coefficient.
// Decoding yields the shortest coefficient (at least one digit) with the same
// value and exponent.
package decimal

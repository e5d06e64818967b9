// Package decbits converts integers, binary floats and decimal text into IEEE
// 754-2019 decimal interchange formats and back.
//
// Every value is stored in the smallest format that holds it exactly:
//
//  b, err := decbits.Parse("123.44")   // 4 bytes, decimal32
//  b = decbits.FromUnsigned(uint8(1))  // 4 bytes
//  b = decbits.FromUint128(^uint64(0), ^uint64(0)) // 20 bytes, decimal160
//
// Formats are handled as little-endian byte strings of 4w bytes, where w is
// the width class (see package width). This package covers the fixed set of
// classes up to decimal160; package arbitrary lifts the limit.
//
// Nothing is rounded. A value that does not fit is an error of class
// CapacityExceeded, malformed text is a ParseError and a conversion to a
// native type that would lose information is Inexact. Decoding never fails.
package decbits

// Command decbits converts decimal text to IEEE 754 decimal interchange bytes
// and back.
//
//	$ decbits encode 123.44 -- -inf
//	decimal32	4	c4493022
//	decimal32	4	000000f8
//	$ decbits decode c4493022
//	123.44
//
// Bytes are printed and read as little-endian hex.
package main

import (
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

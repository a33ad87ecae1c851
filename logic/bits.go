// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

// A Bit is a two-valued logic level.
type Bit bool

// Logic levels.
const (
	Zero Bit = false
	One  Bit = true
)

// String returns "0" or "1".
func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}

// Bits16 is a 16 bits wide bus. Index 0 is the least significant bit.
type Bits16 [16]Bit

// Bits2 is a pair of bits, like the [sum, carry] output of an adder or the two
// branches of a DMux.
type Bits2 [2]Bit

// Bits3 is a 3 bits selector. Index 0 is the least significant bit.
type Bits3 [3]Bit

// Bits4 holds the four branches of a DMux4Way.
type Bits4 [4]Bit

// Bits8 holds eight bits: the input of Or8Way or the branches of DMux8Way.
type Bits8 [8]Bit

// FromUint16 returns the little-endian bus representation of v: bit i of the
// result is bit i of v.
func FromUint16(v uint16) Bits16 {
	var b Bits16
	for i := range b {
		b[i] = v&(1<<uint(i)) != 0
	}
	return b
}

// Uint16 returns the integer encoded by b, b[0] being the lsb.
func (b Bits16) Uint16() uint16 {
	var v uint16
	for i, bit := range b {
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v
}

// String returns b as a binary string, msb first.
func (b Bits16) String() string {
	var s [16]byte
	for i, bit := range b {
		s[15-i] = '0'
		if bit {
			s[15-i] = '1'
		}
	}
	return string(s[:])
}

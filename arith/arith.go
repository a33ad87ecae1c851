// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package arith provides half and full adders and a 16 bits ripple-carry adder
// built from the gates in package logic.
//
// Buses are little-endian: bit 0 is the lsb. Overflow is silently discarded,
// results wrap around modulo 2^16.
package arith

import "github.com/db47h/nandgate/logic"

// one16 is 1 as a 16 bits bus.
var one16 = logic.Bits16{logic.One}

// HalfAdder returns the sum and carry of a + b.
//
//	Inputs: a, b
//	Outputs: out[2] = [sum, carry]
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
func HalfAdder(a, b logic.Bit) logic.Bits2 {
	return logic.Bits2{
		logic.Xor(a, b),
		logic.And(a, b),
	}
}

// FullAdder returns the sum and carry of a + b + c.
//
//	Inputs: a, b, c
//	Outputs: out[2] = [sum, carry]
//	Function: sum = lsb(a + b + c)
//	          carry = msb(a + b + c)
func FullAdder(a, b, c logic.Bit) logic.Bits2 {
	return logic.Bits2{
		logic.Xor(logic.Xor(a, b), c),
		logic.Or(logic.Or(logic.And(a, b), logic.And(b, c)), logic.And(c, a)),
	}
}

// Add16 returns a + b (mod 2^16). The carry ripples from bit 0 to bit 15 and
// the final carry out is dropped.
func Add16(a, b logic.Bits16) logic.Bits16 {
	var (
		out   logic.Bits16
		carry = logic.Zero
	)
	for i := range out {
		sc := FullAdder(a[i], b[i], carry)
		out[i], carry = sc[0], sc[1]
	}
	return out
}

// Inc16 returns a + 1 (mod 2^16).
func Inc16(a logic.Bits16) logic.Bits16 {
	return Add16(a, one16)
}

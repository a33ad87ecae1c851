// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib

import (
	"strconv"

	"github.com/db47h/nandgate"
)

var (
	halfAdder = must(nandgate.Chip("HALFADDER", "a, b", "sum, carry",
		xor("a=a, b=b, out=sum"),
		and("a=a, b=b, out=carry"),
	))
	fullAdder = must(nandgate.Chip("FULLADDER", "a, b, c", "sum, carry",
		xor("a=a, b=b, out=xorAB"),
		xor("a=xorAB, b=c, out=sum"),
		and("a=a, b=b, out=andAB"),
		and("a=b, b=c, out=andBC"),
		or("a=andAB, b=andBC, out=orABC"),
		and("a=c, b=a, out=andCA"),
		or("a=orABC, b=andCA, out=carry"),
	))
	add16 = must(nandgate.Chip("ADD16", "a[16], b[16]", "out[16]", rippleCarry()...))
	inc16 = must(nandgate.Chip("INC16", "in[16]", "out[16]",
		add16("a[0..15]=in[0..15], b[0]=true, out[0..15]=out[0..15]"),
	))
)

// rippleCarry chains 16 full adders from bit 0 to bit 15. The carry out of the
// last adder is left unconnected.
func rippleCarry() []nandgate.Part {
	ps := make([]nandgate.Part, 16)
	cin := "false"
	for i := range ps {
		n := strconv.Itoa(i)
		c := "a=a[" + n + "], b=b[" + n + "], c=" + cin + ", sum=out[" + n + "]"
		if i < len(ps)-1 {
			cin = "carry" + n
			c += ", carry=" + cin
		}
		ps[i] = fullAdder(c)
	}
	return ps
}

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: sum, carry
//	Function: sum = XOR(a, b), carry = AND(a, b)
func HalfAdder(c string) nandgate.Part { return halfAdder(c) }

// FullAdder returns a full adder.
//
//	Inputs: a, b, c
//	Outputs: sum, carry
//	Function: sum = a ^ b ^ c, carry = majority(a, b, c)
func FullAdder(c string) nandgate.Part { return fullAdder(c) }

// Add16 returns a 16 bits ripple carry adder. The final carry is discarded.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: out = a + b mod 2^16
func Add16(c string) nandgate.Part { return add16(c) }

// Inc16 returns a 16 bits incrementer built from Add16.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: out = in + 1 mod 2^16
func Inc16(c string) nandgate.Part { return inc16(c) }

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logic provides combinational logic gates built from a single
// universal gate: NAND.
//
// Nand is the only function in this package that uses Go's boolean operators.
// Every other gate is a composition of Nand, directly or through gates defined
// before it, and the 16 bits, multi-way and demultiplexer variants are built
// from the scalar gates. The compositions are part of the API: callers may
// count gates by following them.
//
// All functions are pure and safe for concurrent use.
package logic

// Nand returns a NAND gate's output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(a, b Bit) Bit {
	return !(a && b)
}

// Not returns a NOT gate's output.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func Not(in Bit) Bit {
	return Nand(in, in)
}

// And returns a AND gate's output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func And(a, b Bit) Bit {
	return Not(Nand(a, b))
}

// Or returns a OR gate's output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func Or(a, b Bit) Bit {
	return Nand(Not(a), Not(b))
}

// Nor returns a NOR gate's output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
func Nor(a, b Bit) Bit {
	return Not(Or(a, b))
}

// Xor returns a XOR gate's output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
func Xor(a, b Bit) Bit {
	return And(Nand(a, b), Or(a, b))
}

// Mux returns a multiplexer's output.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(a, b, sel Bit) Bit {
	return Or(And(Not(sel), a), And(sel, b))
}

// DMux returns a demultiplexer's outputs.
//
//	Inputs: in, sel
//	Outputs: out[2]
//	Function: if sel == 0 { out[0] = in; out[1] = 0 } else { out[0] = 0; out[1] = in }
func DMux(in, sel Bit) Bits2 {
	return Bits2{
		And(Not(sel), in),
		And(sel, in),
	}
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

// Not16 returns a 16 bits NOT gate's output.
//
//	Function: for i := range out { out[i] = !in[i] }
func Not16(in Bits16) Bits16 {
	var out Bits16
	for i := range out {
		out[i] = Not(in[i])
	}
	return out
}

// And16 returns a 16 bits AND gate's output.
//
//	Function: for i := range out { out[i] = a[i] && b[i] }
func And16(a, b Bits16) Bits16 {
	var out Bits16
	for i := range out {
		out[i] = And(a[i], b[i])
	}
	return out
}

// Or16 returns a 16 bits OR gate's output.
//
//	Function: for i := range out { out[i] = a[i] || b[i] }
func Or16(a, b Bits16) Bits16 {
	var out Bits16
	for i := range out {
		out[i] = Or(a[i], b[i])
	}
	return out
}

// Mux16 returns a 16 bits Mux's output. The same sel drives all 16 lanes.
//
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
func Mux16(a, b Bits16, sel Bit) Bits16 {
	var out Bits16
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Or8Way returns the output of an 8 way OR gate, built as a balanced tree of
// 7 Or gates.
//
//	Function: out = in[0] || in[1] || ... || in[7]
func Or8Way(in Bits8) Bit {
	return Or(
		Or(Or(in[0], in[1]), Or(in[2], in[3])),
		Or(Or(in[4], in[5]), Or(in[6], in[7])))
}

// Mux4Way16 selects one of four 16 bits inputs. sel[0] is the lsb and drives
// the first stage.
//
//	Function: out = [a, b, c, d][sel]
func Mux4Way16(a, b, c, d Bits16, sel Bits2) Bits16 {
	return Mux16(
		Mux16(a, b, sel[0]),
		Mux16(c, d, sel[0]),
		sel[1])
}

// Mux8Way16 selects one of eight 16 bits inputs. sel[0] is the lsb.
//
//	Function: out = [a, b, c, d, e, f, g, h][sel]
func Mux8Way16(a, b, c, d, e, f, g, h Bits16, sel Bits3) Bits16 {
	lo := Bits2{sel[0], sel[1]}
	return Mux16(
		Mux4Way16(a, b, c, d, lo),
		Mux4Way16(e, f, g, h, lo),
		sel[2])
}

// DMux4Way routes in to the branch selected by sel. All other branches are 0.
// It mirrors Mux4Way16: sel[1] splits first, sel[0] splits each half.
//
//	Function: out[sel] = in; out[k] = 0 for k != sel
func DMux4Way(in Bit, sel Bits2) Bits4 {
	hi := DMux(in, sel[1])
	ab := DMux(hi[0], sel[0])
	cd := DMux(hi[1], sel[0])
	return Bits4{ab[0], ab[1], cd[0], cd[1]}
}

// DMux8Way is the 8 way version of DMux4Way.
//
//	Function: out[sel] = in; out[k] = 0 for k != sel
func DMux8Way(in Bit, sel Bits3) Bits8 {
	hi := DMux(in, sel[2])
	lo := Bits2{sel[0], sel[1]}
	a := DMux4Way(hi[0], lo)
	b := DMux4Way(hi[1], lo)
	return Bits8{a[0], a[1], a[2], a[3], b[0], b[1], b[2], b[3]}
}

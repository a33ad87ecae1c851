// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib

import (
	"github.com/db47h/nandgate"
)

var (
	not16 = must(nandgate.Chip("NOT16", "in[16]", "out[16]",
		each(16, func(i string) nandgate.Part {
			return not("in=in[" + i + "], out=out[" + i + "]")
		})...,
	))
	and16 = must(nandgate.Chip("AND16", "a[16], b[16]", "out[16]",
		each(16, func(i string) nandgate.Part {
			return and("a=a[" + i + "], b=b[" + i + "], out=out[" + i + "]")
		})...,
	))
	or16 = must(nandgate.Chip("OR16", "a[16], b[16]", "out[16]",
		each(16, func(i string) nandgate.Part {
			return or("a=a[" + i + "], b=b[" + i + "], out=out[" + i + "]")
		})...,
	))
	mux16 = must(nandgate.Chip("MUX16", "a[16], b[16], sel", "out[16]",
		each(16, func(i string) nandgate.Part {
			return mux("a=a[" + i + "], b=b[" + i + "], sel=sel, out=out[" + i + "]")
		})...,
	))

	or8Way = must(nandgate.Chip("OR8WAY", "in[8]", "out",
		or("a=in[0], b=in[1], out=or01"),
		or("a=in[2], b=in[3], out=or23"),
		or("a=in[4], b=in[5], out=or45"),
		or("a=in[6], b=in[7], out=or67"),
		or("a=or01, b=or23, out=or03"),
		or("a=or45, b=or67, out=or47"),
		or("a=or03, b=or47, out=out"),
	))

	mux4Way16 = must(nandgate.Chip("MUX4WAY16", "a[16], b[16], c[16], d[16], sel[2]", "out[16]",
		mux16("a[0..15]=a[0..15], b[0..15]=b[0..15], sel=sel[0], out[0..15]=ab[0..15]"),
		mux16("a[0..15]=c[0..15], b[0..15]=d[0..15], sel=sel[0], out[0..15]=cd[0..15]"),
		mux16("a[0..15]=ab[0..15], b[0..15]=cd[0..15], sel=sel[1], out[0..15]=out[0..15]"),
	))
	mux8Way16 = must(nandgate.Chip("MUX8WAY16", "a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]", "out[16]",
		mux4Way16("a[0..15]=a[0..15], b[0..15]=b[0..15], c[0..15]=c[0..15], d[0..15]=d[0..15], sel[0..1]=sel[0..1], out[0..15]=ad[0..15]"),
		mux4Way16("a[0..15]=e[0..15], b[0..15]=f[0..15], c[0..15]=g[0..15], d[0..15]=h[0..15], sel[0..1]=sel[0..1], out[0..15]=eh[0..15]"),
		mux16("a[0..15]=ad[0..15], b[0..15]=eh[0..15], sel=sel[2], out[0..15]=out[0..15]"),
	))

	dmux4Way = must(nandgate.Chip("DMUX4WAY", "in, sel[2]", "a, b, c, d",
		dmux("in=in, sel=sel[1], a=lo, b=hi"),
		dmux("in=lo, sel=sel[0], a=a, b=b"),
		dmux("in=hi, sel=sel[0], a=c, b=d"),
	))
	dmux8Way = must(nandgate.Chip("DMUX8WAY", "in, sel[3]", "a, b, c, d, e, f, g, h",
		dmux("in=in, sel=sel[2], a=lo, b=hi"),
		dmux4Way("in=lo, sel[0..1]=sel[0..1], a=a, b=b, c=c, d=d"),
		dmux4Way("in=hi, sel[0..1]=sel[0..1], a=e, b=f, c=g, d=h"),
	))
)

// Not16 returns a 16 bits NOT chip.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = NOT(in[i]) }
func Not16(c string) nandgate.Part { return not16(c) }

// And16 returns a 16 bits AND chip.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = AND(a[i], b[i]) }
func And16(c string) nandgate.Part { return and16(c) }

// Or16 returns a 16 bits OR chip.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = OR(a[i], b[i]) }
func Or16(c string) nandgate.Part { return or16(c) }

// Mux16 returns a 16 bits multiplexer.
//
//	Inputs: a[16], b[16], sel
//	Outputs: out[16]
//	Function: for i := range out { out[i] = MUX(a[i], b[i], sel) }
func Mux16(c string) nandgate.Part { return mux16(c) }

// Or8Way returns an 8 way OR chip.
//
//	Inputs: in[8]
//	Outputs: out
//	Function: out = OR(in[0], in[1], ..., in[7])
func Or8Way(c string) nandgate.Part { return or8Way(c) }

// Mux4Way16 returns a 16 bits 4 way multiplexer. sel[0] is the lsb.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
//	Function: out = a, b, c or d for sel = 0, 1, 2 or 3
func Mux4Way16(c string) nandgate.Part { return mux4Way16(c) }

// Mux8Way16 returns a 16 bits 8 way multiplexer. sel[0] is the lsb.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Outputs: out[16]
//	Function: out = a, b, ..., h for sel = 0, 1, ..., 7
func Mux8Way16(c string) nandgate.Part { return mux8Way16(c) }

// DMux4Way returns a 4 way demultiplexer. sel[0] is the lsb.
//
//	Inputs: in, sel[2]
//	Outputs: a, b, c, d
//	Function: the output selected by sel is set to in, the others to 0.
func DMux4Way(c string) nandgate.Part { return dmux4Way(c) }

// DMux8Way returns an 8 way demultiplexer. sel[0] is the lsb.
//
//	Inputs: in, sel[3]
//	Outputs: a, b, c, d, e, f, g, h
//	Function: the output selected by sel is set to in, the others to 0.
func DMux8Way(c string) nandgate.Part { return dmux8Way(c) }

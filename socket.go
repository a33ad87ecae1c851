// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

import "strconv"

// Constant input pin names. They can be used as wire names in any chip.
const (
	True  = "true"
	False = "false"
)

// Wire numbers of the constant pins in a Netlist or Circuit.
const (
	WireFalse = iota
	WireTrue
	cstCount
)

// A Gate is a NAND gate in a flattened netlist. A, B and Out are wire numbers.
type Gate struct {
	A, B, Out int
}

// builder accumulates the wires and gates of a circuit while its parts are
// mounted.
type builder struct {
	wires int
	gates []Gate
	alias []int // union-find over wire numbers, see union.
}

func newBuilder() *builder {
	return &builder{
		wires: cstCount,
		alias: []int{WireFalse, WireTrue},
	}
}

func (b *builder) allocPin() int {
	n := b.wires
	b.wires++
	b.alias = append(b.alias, n)
	return n
}

func (b *builder) find(n int) int {
	for b.alias[n] != n {
		b.alias[n] = b.alias[b.alias[n]]
		n = b.alias[n]
	}
	return n
}

// union merges two wires into one. This happens when an output fans out to
// several pins that already have a wire number in the parent chip.
func (b *builder) union(x, y int) {
	x, y = b.find(x), b.find(y)
	if x == y {
		return
	}
	if y < x {
		x, y = y, x
	}
	b.alias[y] = x
}

// roots returns the canonical wire number of every wire.
func (b *builder) roots() []int {
	r := make([]int, b.wires)
	for i := range r {
		r[i] = b.find(i)
	}
	return r
}

// A Socket maps a part's pin names to wire numbers in a circuit.
type Socket struct {
	m map[string]int
	b *builder
}

func newSocket(b *builder) *Socket {
	return &Socket{
		m: map[string]int{False: WireFalse, True: WireTrue},
		b: b,
	}
}

// Pin returns the wire number allocated to the given pin name.
// This function panics if the pin does not exist.
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the wire number allocated to the given pin name.
// If no such pin exists a new one is allocated.
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.b.allocPin()
		s.m[name] = n
	}
	return n
}

// Bus returns the wire numbers allocated to the pins name[0] to name[size-1].
// It panics if any of these pins does not exist.
func (s *Socket) Bus(name string, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}

// Nand adds a NAND gate reading wires a and b and driving wire out.
func (s *Socket) Nand(a, b, out int) {
	s.b.gates = append(s.b.gates, Gate{a, b, out})
}

// BusPinName returns the pin name for the i-th pin of bus name.
//
//	BusPinName("sel", 1) // "sel[1]"
func BusPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/db47h/nandgate/logic"
)

// ErrUnstable is returned by Settle when the wire states keep changing, which
// happens when a circuit contains a combinational loop.
var ErrUnstable = errors.New("circuit does not settle")

// Circuit is a runnable circuit simulation.
//
// Wire states are double buffered: during a step, every gate and probe reads
// the previous frame and writes the next one. A NAND gate therefore takes one
// step to update its output.
//
// A Circuit is not safe for concurrent use.
type Circuit struct {
	s0    []logic.Bit // wire states frame #0 (current)
	s1    []logic.Bit // wire states frame #1 (next)
	gates []Gate
	cs    []Component
	root  []int // canonical wire numbers
	steps int
	log   logr.Logger
}

// An Option configures a Circuit.
type Option func(c *Circuit)

// WithLogger sets the logger used to trace circuit construction (V(1)) and
// settling (V(2)). The default is logr.Discard().
func WithLogger(l logr.Logger) Option {
	return func(c *Circuit) { c.log = l }
}

// NewCircuit builds a new circuit based on the given parts. Parts would
// typically include input and output probes wired to the chips under test.
func NewCircuit(parts Parts, opts ...Option) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	wrap, err := Chip("CIRCUIT", "", "", parts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}
	b := newBuilder()
	cs := wrap("").Mount(newSocket(b))
	root := b.roots()
	gates := make([]Gate, len(b.gates))
	for i, g := range b.gates {
		gates[i] = Gate{root[g.A], root[g.B], root[g.Out]}
	}
	c := newCircuit(b.wires, gates, cs, root)
	for _, opt := range opts {
		opt(c)
	}
	c.log.V(1).Info("circuit built", "gates", len(gates), "probes", len(cs), "wires", b.wires)
	return c, nil
}

func newCircuit(wires int, gates []Gate, cs []Component, root []int) *Circuit {
	c := &Circuit{
		s0:    make([]logic.Bit, wires),
		s1:    make([]logic.Bit, wires),
		gates: gates,
		cs:    cs,
		root:  root,
		log:   logr.Discard(),
	}
	c.s0[WireTrue] = logic.One
	c.s1[WireTrue] = logic.One
	return c
}

// Get returns the state of wire n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
func (c *Circuit) Get(n int) logic.Bit {
	return c.s0[c.root[n]]
}

// Set sets the state of wire n for the next step. It is meant to be called by
// input probes.
func (c *Circuit) Set(n int, v logic.Bit) {
	c.s1[c.root[n]] = v
}

// Step advances the simulation by one step.
func (c *Circuit) Step() {
	copy(c.s1, c.s0)
	for _, f := range c.cs {
		f(c)
	}
	for _, g := range c.gates {
		c.s1[g.Out] = logic.Nand(c.s0[g.A], c.s0[g.B])
	}
	c.s0, c.s1 = c.s1, c.s0
	c.steps++
}

// Settle steps the simulation until no wire changes state and returns the
// number of steps taken. Probes see the settled state during the last step.
// Every gate and every probe delays a value by one step, so an acyclic
// circuit settles within one step per gate and probe plus one. If it has not
// settled after that many steps, Settle returns ErrUnstable.
func (c *Circuit) Settle() (int, error) {
	limit := len(c.gates) + len(c.cs) + 1
	for i := 1; i <= limit; i++ {
		c.Step()
		if c.stable() {
			c.log.V(2).Info("settled", "steps", i, "total", c.steps)
			return i, nil
		}
	}
	c.log.V(1).Info("circuit unstable", "steps", limit)
	return limit, ErrUnstable
}

func (c *Circuit) stable() bool {
	for i := range c.s0 {
		if c.s0[i] != c.s1[i] {
			return false
		}
	}
	return true
}

// Steps returns the value of the step counter.
func (c *Circuit) Steps() int {
	return c.steps
}

// Size returns the gate and probe count in the circuit.
func (c *Circuit) Size() int { return len(c.gates) + len(c.cs) }

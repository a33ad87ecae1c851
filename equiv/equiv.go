// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package equiv proves that flattened netlists compute a given boolean
// function, for all input values, with the gini SAT solver.
//
// The netlist and the reference function are encoded in the same and-inverter
// graph. A miter asserts that at least one pair of outputs differs. If the
// miter is unsatisfiable, the two are equivalent; otherwise the model is
// returned as a *Counterexample.
package equiv

import (
	"strings"

	"github.com/go-air/gini"
	aig "github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/db47h/nandgate"
	"github.com/db47h/nandgate/logic"
)

// A Reference builds the expected output literals of a part in c, given a
// literal for each of its input pins. The returned map is keyed by output pin
// name.
type Reference func(c *aig.C, in map[string]z.Lit) map[string]z.Lit

// A Counterexample is an assignment of input values for which a netlist and
// its reference disagree.
type Counterexample struct {
	Chip   string
	Inputs []string
	Values []logic.Bit
	Output string
	Got    logic.Bit
	Want   logic.Bit
}

func (e *Counterexample) Error() string {
	var b strings.Builder
	b.WriteString(e.Chip)
	b.WriteString(": ")
	for i, n := range e.Inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(e.Values[i].String())
	}
	b.WriteString(" => ")
	b.WriteString(e.Output)
	b.WriteRune('=')
	b.WriteString(e.Got.String())
	b.WriteString(", expected ")
	b.WriteString(e.Want.String())
	return b.String()
}

// Check proves that nl computes ref. It returns nil if it does, a
// *Counterexample if it does not, and any other error if nl cannot be encoded.
func Check(nl *nandgate.Netlist, ref Reference) error {
	c := aig.NewCCap(len(nl.Gates) + len(nl.Inputs) + 2)
	in := inputs(c, nl.Inputs)
	got, err := encode(c, nl, in)
	if err != nil {
		return err
	}
	want := ref(c, in)
	for _, n := range nl.Outputs {
		if _, ok := want[n]; !ok {
			return errors.Errorf("%s: no reference value for output %s", nl.Name, n)
		}
	}
	return solve(c, nl, in, got, want)
}

// Netlists proves that a and b compute the same function. Both netlists must
// have the same input and output pin names.
func Netlists(a, b *nandgate.Netlist) error {
	if !samePins(a.Inputs, b.Inputs) || !samePins(a.Outputs, b.Outputs) {
		return errors.Errorf("%s and %s have different pins", a.Name, b.Name)
	}
	c := aig.NewCCap(len(a.Gates) + len(b.Gates) + len(a.Inputs) + 2)
	in := inputs(c, a.Inputs)
	got, err := encode(c, a, in)
	if err != nil {
		return err
	}
	want, err := encode(c, b, in)
	if err != nil {
		return err
	}
	return solve(c, a, in, got, want)
}

// Bus returns the literals of pins name[0] to name[size-1].
func Bus(m map[string]z.Lit, name string, size int) []z.Lit {
	ms := make([]z.Lit, size)
	for i := range ms {
		ms[i] = m[nandgate.BusPinName(name, i)]
	}
	return ms
}

// SetBus sets m[name[i]] to ms[i] for all i.
func SetBus(m map[string]z.Lit, name string, ms []z.Lit) {
	for i, l := range ms {
		m[nandgate.BusPinName(name, i)] = l
	}
}

func samePins(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, n := range a {
		if !contains(b, n) {
			return false
		}
	}
	return true
}

func contains(l []string, s string) bool {
	for _, n := range l {
		if n == s {
			return true
		}
	}
	return false
}

func inputs(c *aig.C, names []string) map[string]z.Lit {
	in := make(map[string]z.Lit, len(names))
	for _, n := range names {
		in[n] = c.Lit()
	}
	return in
}

// wire states during encoding
const (
	unseen = iota
	visiting
	done
)

// encode adds the gates of nl to c and returns the literals of its outputs.
// Gates are encoded depth first from the outputs so that their order in nl
// does not matter. Wires that no gate drives are false.
func encode(c *aig.C, nl *nandgate.Netlist, in map[string]z.Lit) (map[string]z.Lit, error) {
	lits := make([]z.Lit, nl.Wires)
	state := make([]int, nl.Wires)
	driver := make([]int, nl.Wires)
	for i := range driver {
		driver[i] = -1
	}
	for i, g := range nl.Gates {
		driver[g.Out] = i
	}
	set := func(w int, l z.Lit) {
		lits[w] = l
		state[w] = done
	}
	set(nandgate.WireFalse, c.F)
	set(nandgate.WireTrue, c.T)
	for _, n := range nl.Inputs {
		set(nl.Pins[n], in[n])
	}

	var wire func(w int) (z.Lit, error)
	wire = func(w int) (z.Lit, error) {
		switch state[w] {
		case done:
			return lits[w], nil
		case visiting:
			return z.LitNull, errors.Errorf("%s: combinational loop through wire %d", nl.Name, w)
		}
		state[w] = visiting
		l := c.F
		if i := driver[w]; i >= 0 {
			g := nl.Gates[i]
			a, err := wire(g.A)
			if err != nil {
				return z.LitNull, err
			}
			b, err := wire(g.B)
			if err != nil {
				return z.LitNull, err
			}
			l = c.And(a, b).Not()
		}
		set(w, l)
		return l, nil
	}

	out := make(map[string]z.Lit, len(nl.Outputs))
	for _, n := range nl.Outputs {
		l, err := wire(nl.Pins[n])
		if err != nil {
			return nil, err
		}
		out[n] = l
	}
	return out, nil
}

func solve(c *aig.C, nl *nandgate.Netlist, in, got, want map[string]z.Lit) error {
	diffs := make([]z.Lit, len(nl.Outputs))
	for i, n := range nl.Outputs {
		diffs[i] = c.Xor(got[n], want[n])
	}
	miter := c.Ors(diffs...)

	g := gini.New()
	c.ToCnf(g)
	g.Assume(miter)
	switch g.Solve() {
	case -1:
		return nil
	case 1:
	default:
		return errors.Errorf("%s: solver gave up", nl.Name)
	}

	cx := &Counterexample{
		Chip:   nl.Name,
		Inputs: nl.Inputs,
		Values: make([]logic.Bit, len(nl.Inputs)),
	}
	for i, n := range nl.Inputs {
		cx.Values[i] = value(g, in[n])
	}
	for i, n := range nl.Outputs {
		if value(g, diffs[i]) {
			cx.Output = n
			cx.Got = value(g, got[n])
			cx.Want = value(g, want[n])
			break
		}
	}
	return cx
}

// value returns the value of m in the last model. Variables that appear in no
// clause are unconstrained and read as 0.
func value(g *gini.Gini, m z.Lit) logic.Bit {
	if m.Var() > g.MaxVar() {
		return logic.Zero
	}
	return logic.Bit(g.Value(m))
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// A Connection connects the pin PP of a part to the wire CP of its host chip.
type Connection struct {
	PP string // part pin name
	CP string // chip wire name
}

// ParseIOSpec parses the pin specification string and returns individual pin
// names in a slice, also expanding bus declarations to individual pin names.
// For example:
//
//	ParseIOSpec("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
func ParseIOSpec(names string) ([]string, error) {
	var out []string
	if strings.TrimSpace(names) == "" {
		return nil, nil
	}
	for _, item := range strings.Split(names, ",") {
		item = strings.TrimSpace(item)
		name, size, err := splitBus(item)
		if err != nil {
			return nil, parseError(names, err)
		}
		if size < 0 {
			out = append(out, name)
			continue
		}
		if size == 0 {
			return nil, parseError(names, errors.Errorf("zero sized bus %q", name))
		}
		for i := 0; i < size; i++ {
			out = append(out, BusPinName(name, i))
		}
	}
	if err := checkDuplicates(out); err != nil {
		return nil, parseError(names, err)
	}
	return out, nil
}

// splitBus splits "name[size]" into name and size. size is -1 for a single pin.
func splitBus(item string) (string, int, error) {
	i := strings.IndexRune(item, '[')
	if i < 0 {
		return item, -1, checkIdent(item)
	}
	name := item[:i]
	if err := checkIdent(name); err != nil {
		return "", 0, err
	}
	if !strings.HasSuffix(item, "]") {
		return "", 0, errors.Errorf("missing close bracket in %q", item)
	}
	size, err := strconv.Atoi(item[i+1 : len(item)-1])
	if err != nil {
		return "", 0, errors.Wrap(err, "invalid bus size")
	}
	return name, size, nil
}

func checkIdent(name string) error {
	if name == "" {
		return errors.New("expected pin name")
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return errors.Errorf("invalid pin name %q", name)
	}
	return nil
}

func checkDuplicates(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return errors.New("duplicate pin name " + n)
		}
		seen[n] = true
	}
	return nil
}

func parseError(in string, err error) error {
	return errors.Wrapf(err, "in %q", in)
}

// ParseConnections parses a connection string like "a=x, b[0..3]=bus[4..7]"
// into individual pin connections. Bus ranges are expanded:
//
//	a[0..3]=x[4..7] // many to many: a[0]=x[4], ..., a[3]=x[7]
//	out=x[0..3]     // one to many: out fans out to x[0] through x[3]
//	a[0..3]=false   // many to one: all four pins wired to false
//
// A part pin may appear more than once. This is how an output fans out to
// several wires.
func ParseConnections(conns string) ([]Connection, error) {
	var out []Connection
	if strings.TrimSpace(conns) == "" {
		return nil, nil
	}
	for _, item := range strings.Split(conns, ",") {
		kv := strings.Split(item, "=")
		if len(kv) != 2 {
			return nil, parseError(conns, errors.Errorf("invalid pin mapping %q", strings.TrimSpace(item)))
		}
		k, v := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		ks, err := expandRange(k)
		if err != nil {
			return nil, parseError(conns, errors.Wrap(err, "expand key "+k))
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, parseError(conns, errors.Wrap(err, "expand value "+v))
		}
		switch {
		case len(ks) == len(vs):
			for i := range ks {
				out = append(out, Connection{ks[i], vs[i]})
			}
		case len(ks) == 1:
			for _, w := range vs {
				out = append(out, Connection{ks[0], w})
			}
		case len(vs) == 1:
			for _, p := range ks {
				out = append(out, Connection{p, vs[0]})
			}
		default:
			return nil, parseError(conns, errors.New("pin count mismatch in pin mapping "+k+"="+v))
		}
	}
	return out, nil
}

// expandRange expands "bus[2..4]" into "bus[2]", "bus[3]", "bus[4]".
// Single pins and bus pins like "bus[1]" expand to themselves.
func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, checkIdent(name)
	}
	bus := name[:i]
	if err := checkIdent(bus); err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, "]") {
		return nil, errors.New("no terminating ] in bus range")
	}
	n := name[i+1 : len(name)-1]
	i = strings.Index(n, "..")
	if i < 0 {
		idx, err := strconv.Atoi(n)
		if err != nil {
			return nil, errors.Wrap(err, "invalid bus index")
		}
		return []string{BusPinName(bus, idx)}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "invalid range start")
	}
	end, err := strconv.Atoi(n[i+2:])
	if err != nil {
		return nil, errors.Wrap(err, "invalid range end")
	}
	if start < 0 || end < start {
		return nil, errors.Errorf("invalid bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

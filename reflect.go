// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandgate

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom components built using reflection must
// implement. See MakePart.
type Updater interface {
	Update(c *Circuit)
}

// MakePart wraps an Updater into a custom component. This is mostly useful to
// write behavioral models of chips in order to test them side by side with
// their NAND implementation. Parts made this way are probes: they cannot be
// flattened.
//
// Input/output pins are identified by field tags. The field tag must be
// `hw:"in"` or `hw:"out"` to identify input and output pins. By default, the
// pin name is the field name in lowercase. A specific pin name can be forced
// by adding it in the tag: `hw:"in,pin_name"`.
//
// Pin fields must be of type int, buses must be arrays of int. On mount, they
// are set to the wire numbers to use with Circuit.Get and Circuit.Set.
func MakePart(t Updater) *PartSpec {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}
	pins := pinFields(typ)
	sp := &PartSpec{Name: typ.Name()}
	for _, p := range pins {
		if p.input {
			sp.Inputs = append(sp.Inputs, p.names()...)
		} else {
			sp.Outputs = append(sp.Outputs, p.names()...)
		}
	}
	sp.Mount = func(s *Socket) []Component {
		v := reflect.New(typ)
		e := v.Elem()
		for _, p := range pins {
			fv := e.Field(p.index)
			if p.size < 0 {
				fv.SetInt(int64(s.Pin(p.name)))
				continue
			}
			for i := 0; i < p.size; i++ {
				fv.Index(i).SetInt(int64(s.Pin(BusPinName(p.name, i))))
			}
		}
		u := v.Interface().(Updater)
		return []Component{u.Update}
	}
	return sp
}

type pinField struct {
	index int
	name  string
	size  int // -1 for single pins
	input bool
}

func (p *pinField) names() []string {
	if p.size < 0 {
		return []string{p.name}
	}
	ns := make([]string, p.size)
	for i := range ns {
		ns[i] = BusPinName(p.name, i)
	}
	return ns
}

func pinFields(typ reflect.Type) []pinField {
	var pins []pinField
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		p := pinField{index: i, name: strings.ToLower(f.Name), size: -1}
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 2 && tv[1] != "" {
			p.name = tv[1]
		}
		switch tv[0] {
		case "in":
			p.input = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		switch ft := f.Type; {
		case ft.Kind() == reflect.Int:
		case ft.Kind() == reflect.Array && ft.Elem().Kind() == reflect.Int:
			p.size = ft.Len()
		default:
			panic(errors.Errorf("unsupported type %q for field %q in %q", ft.Kind(), f.Name, typ.Name()))
		}
		pins = append(pins, p)
	}
	return pins
}

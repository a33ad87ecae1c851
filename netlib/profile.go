// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/db47h/nandgate"
)

// Chips returns the constructors of all chips in the library, from the
// simplest to the most complex.
func Chips() []nandgate.NewPartFn {
	return []nandgate.NewPartFn{
		nand, not, and, or, nor, xor, mux, dmux,
		not16, and16, or16, mux16,
		or8Way, mux4Way16, mux8Way16, dmux4Way, dmux8Way,
		halfAdder, fullAdder, add16, inc16,
	}
}

// WriteProfile writes a table of all chips in the library with their pin and
// NAND gate counts to w.
func WriteProfile(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Chip", "Inputs", "Outputs", "NANDs", "Wires"})
	table.SetBorder(true)
	for _, fn := range Chips() {
		nl, err := nandgate.Flatten(fn)
		if err != nil {
			return err
		}
		table.Append([]string{
			nl.Name,
			strconv.Itoa(len(nl.Inputs)),
			strconv.Itoa(len(nl.Outputs)),
			strconv.Itoa(len(nl.Gates)),
			strconv.Itoa(nl.Wires),
		})
	}
	table.Render()
	return nil
}

/*
Package nandgate describes chips as compositions of NAND gates, using Go as a
hardware description language, and flattens them into netlists that can be
counted, simulated or handed to an equivalence checker.

The only built-in part is Nand. Chips are built with Chip from parts wired by
name:

	not, _ := nandgate.Chip("NOT", "in", "out",
		nandgate.Nand("a=in, b=in, out=out"),
	)
	and, _ := nandgate.Chip("AND", "a, b", "out",
		nandgate.Nand("a=a, b=b, out=nandAB"),
		not("in=nandAB, out=out"),
	)

Every PartSpec records how many NAND gates it flattens to. Flatten turns a
chip into a Netlist and Netlist.Eval runs it; NewCircuit runs chips wired to
probes. The simulator evaluates gates with logic.Nand, so a netlist computes
exactly what the pure functions in package logic compute.

Package netlib holds chips for every gate of package logic and adder of
package arith, built with the same compositions.
*/
package nandgate

// Package aig loads And-Inverter Graphs in the AIGER format (ascii "aag" or
// binary "aig") through gini and exposes what the distance engines need:
// gate and level counts and the signed edge list of the circuit.
//
// Gini hashes and simplifies AND gates while reading, so trivially redundant
// gates (x∧x, x∧¬x, x∧1) do not appear in the result.
package aig

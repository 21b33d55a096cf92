// Package edgelist turns (source, target, weight) triples, as extracted from
// And-Inverter Graphs, into core.Graph values.
//
// Three modes are supported. Undirected ignores orientation and weights.
// Directed keeps orientation and reverses every edge that carries the
// inverted weight, so complementation is visible as direction. Weighted keeps
// the weights.
package edgelist

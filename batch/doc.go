// Package batch runs graph distance metrics over many graph pairs.
//
// Metric is a closed enum over the engines (DeltaCon0, resistance, the three
// spectral variants, NetSimile and vertex-edge overlap); Compute dispatches
// one metric on one pair. Runner fans pair × metric jobs out over a bounded
// errgroup and returns results in input order. LoadPairs reads the graphs of
// a run from AIGER or edge-list files.
package batch

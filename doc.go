// Package netcomp measures how structurally different two graphs are, with
// And-Inverter Graphs (AIGs) as the primary input.
//
// What is netcomp?
//
//	A set of small, synchronous distance engines over adjacency matrices:
//		• DeltaCon0: belief-propagation affinity matrices compared element-wise
//		• Resistance: renormalized effective-resistance matrices
//		• Spectral: eigenvalue sequences of A, L or the normalized Laplacian
//		• NetSimile: seven node features, five aggregates, Canberra distance
//		• Vertex-edge overlap: shared vertices and edges
//
// Graphs of different order are compared by padding the smaller one with
// isolated nodes. Engines never mutate their inputs and share no state, so
// callers may run them concurrently; the batch package does exactly that.
//
// Logging:
//
// Library packages report through zerolog's global logger (log.Logger):
// disconnected inputs, solver fallbacks, loaded circuits and batch progress
// at debug level, failed batch jobs at warn level. Callers that do not want these events raise the level
// with zerolog.SetGlobalLevel(zerolog.InfoLevel); cmd/netcomp runs its
// logger at info unless -v is given.
//
// Layout:
//
//	core/       - thread-safe Graph over gonum simple graphs, views, components
//	builder/    - deterministic graph fixtures (path, cycle, star, wheel, random)
//	matrix/     - CSR storage, padding, degrees, Laplacians, validators
//	linalg/     - dense (gonum) and sparse (Gauss–Seidel) solvers, selector
//	fastbp/     - Fast Belief Propagation affinity matrix
//	deltacon/   - DeltaCon0 distance
//	resistance/ - resistance distance
//	spectral/   - spectral distance
//	netsimile/  - NetSimile features, aggregates and distance
//	overlap/    - vertex-edge overlap
//	edgelist/   - edge lists to graphs (undirected, directed, weighted modes)
//	aig/        - AIGER loading through gini, circuit statistics and edges
//	batch/      - metric registry and bounded parallel runner
//	config/     - YAML run configuration
//	cmd/netcomp - command-line interface
//
// Quick example:
//
//	left, _ := batch.LoadGraph("a/ex03.aig", batch.DefaultGraphSpec())
//	right, _ := batch.LoadGraph("b/ex03.aig", batch.DefaultGraphSpec())
//	d, _ := resistance.DistanceGraphs(left, right)
//
//	go install github.com/katalvlaran/netcomp/cmd/netcomp@latest
package netcomp

// Package builder provides deterministic graph fixtures for the netcomp
// engines: empty graphs, paths, cycles, complete graphs, stars, wheels and
// seeded G(n,p) random graphs.
//
// Every factory returns a Constructor; BuildGraph creates a core.Graph and
// applies constructors in order:
//
//	g, err := builder.BuildGraph(nil, nil,
//		builder.Path(4),
//		builder.Shifted(10, builder.Cycle(3)), // disjoint component on IDs 10..12
//	)
//
// Vertex i of a constructor receives ID idFn(i) (identity by default; see
// WithIDScheme). Weighted graphs take edge weights from WithWeightFn
// (constant 1 by default); unweighted graphs always receive weight 0 as
// required by core.
package builder

// Package matrix provides the adjacency-matrix utilities shared by the
// netcomp distance engines.
//
// All functions accept gonum's mat.Matrix so engines stay agnostic to the
// backing representation. The package adds:
//
//   - CSR: an immutable compressed-sparse-row matrix implementing mat.Matrix,
//     mat.NonZeroDoer and mat.RowNonZeroDoer. It is the only representation
//     that admits order 0, so empty graphs travel as a 0×0 CSR.
//   - Pad: embed an order-n matrix into order N ≥ n with isolated nodes,
//     preserving the sparse/symmetric/dense family of the input.
//   - DegreeVector / BinaryDegreeVector / DegreeMatrix / MaxBinaryDegree.
//   - Laplacian: D − A or D^(−1/2)(D−A)D^(−1/2), with isolated nodes
//     contributing 0 rather than NaN.
//   - Adjacency: core.Graph → CSR in ascending vertex-ID order.
//   - Validators: ValidateSquare, ValidateSymmetric, ValidateFinite.
//
// Errors are package sentinels (ErrNonSquare, ErrAsymmetry, ...) wrapped with
// the failing function's name; match them with errors.Is.
package matrix

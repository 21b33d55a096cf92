// Package linalg abstracts the linear algebra the distance engines need
// (inverse, solve, symmetric eigenvalues, pseudo-inverse) behind one
// Solver interface, so that each engine is agnostic to how its operand is
// stored.
//
// Two strategies are provided:
//
//   - Dense: gonum's LAPACK-backed LU, EigenSym and SVD.
//   - Sparse: Gauss–Seidel sweeps over a matrix.CSR, for large diagonally
//     dominant systems. Eigen and pseudo-inverse requests delegate to Dense.
//
// A Selector chooses between them by order and density. Selector.Invert
// additionally falls back from Dense to Sparse when gonum reports the dense
// result as ill-conditioned (mat.Condition above mat.ConditionTolerance).
//
// Errors are package sentinels wrapped with the operation name; gonum's
// mat.Condition stays in the chain where it caused the failure.
package linalg

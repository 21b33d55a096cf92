// Package fastbp computes the fast belief propagation matrix of a graph,
//
//	S = (I + ε²D − εA)⁻¹,
//
// where A is the (possibly weighted, possibly asymmetric) adjacency matrix
// and D is the diagonal matrix of binarized out-degrees. With the default
// ε = 1/(1+d_max) the system is strictly diagonally dominant for binary A,
// so S is well defined.
//
// Inversion goes through linalg.Selector: dense LU for ordinary sizes,
// Gauss–Seidel for large sparse operands, and a sparse retry when the dense
// result is reported ill-conditioned. A singular system is not retried.
package fastbp

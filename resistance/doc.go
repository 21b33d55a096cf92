// Package resistance implements the renormalized resistance distance.
//
// Each graph is read as an electrical network with unit resistors (or
// conductance |w| under WithWeights). Effective resistance is computed per
// connected component from the Laplacian pseudo-inverse M:
//
//	R[i,j] = M[i,i] + M[j,j] − 2·M[i,j]
//
// Pairs in different components have infinite resistance. Renormalization
// R' = R/(R+β) maps every entry into [0,1], sending infinity to 1, and the
// distance between two graphs is the entrywise p-norm of R1' − R2' after
// padding both to a common order.
//
// Defaults: p = 2, β = 1, unit conductance, dense SVD pseudo-inverse.
package resistance

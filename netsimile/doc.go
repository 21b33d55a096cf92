// Package netsimile implements the NetSimile graph distance.
//
// Every vertex is described by seven local structural features (degree,
// clustering, neighbor averages and ego-network counts). Each feature column
// is summarized by five statistics, giving a 35-value signature per graph,
// and two signatures are compared with the Canberra distance. Node
// correspondence is not required and the graphs may differ in order.
//
// Degenerate inputs are absorbed, not reported: vertices without neighbors
// get 0 neighbor averages, near-constant columns get 0 skewness and
// kurtosis, and Canberra terms with a NaN side or a zero denominator add 0.
package netsimile

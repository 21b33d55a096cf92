// Package deltacon implements the DeltaCon0 graph distance.
//
// Both graphs are padded to a common order and mapped to their fast belief
// propagation matrices S1, S2 (package fastbp) using one shared ε. The
// distance folds the elementwise differences of √|S1| and √|S2|:
//
//	SumAbs    (default)  Σ |√|S1| − √|S2||
//	Frobenius            √Σ (√|S1| − √|S2|)²
//
// The shared ε is 1/(1+d) for the largest binarized degree d over both
// inputs, computed before padding, which keeps the distance invariant under
// additional padding.
package deltacon

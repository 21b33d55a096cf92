// Package spectral compares graphs through the eigenvalues of their
// adjacency, Laplacian or normalized Laplacian matrices.
//
// The distance is the Euclidean norm of the difference of the two sorted
// spectra. Adjacency spectra are sorted largest first and Laplacian spectra
// smallest first, so a top-k truncation keeps the most informative end of
// each. Spectra of unequal length are padded with zeros.
//
// The adjacency matrix is compared unless WithMatrixType says otherwise.
//
// All matrices must be symmetric. DistanceGraphs builds the undirected view
// of each graph before comparing.
package spectral

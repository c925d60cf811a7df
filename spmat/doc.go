// Package spmat provides the sparse linear algebra behind the network
// solver: triplet (COO) accumulation, one-shot compression to a compressed
// sparse row form, and a direct sparse LU factorization with partial
// pivoting.
//
// The intended call sequence mirrors classical sparse-solver libraries:
//
//	coo := spmat.NewCOO(n)
//	coo.Append(i, j, v) // repeated; duplicate coordinates sum
//	csr, err := coo.Compress()
//	lu, err := csr.Factor()
//	x, err := lu.Solve(b)
//
// Accumulating triplets and compressing once avoids the repeated
// random-access overhead of dictionary-of-keys assembly. The factorization
// is direct (not iterative): conductance systems are modest in size and the
// small leakage terms on the diagonal demand an exact, robust solve. Rows
// are eliminated in place with row pivoting; a structurally singular system
// surfaces as ErrSingular naming the failed elimination step.
//
// Factor and Solve are stateless one-shot calls with respect to the input
// system: nothing is cached between assemblies, so callers may rebuild the
// matrix with updated coefficients before every solve.
package spmat

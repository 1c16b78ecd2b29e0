// Package features provides the fixed-width CPU feature bitset, the
// static feature catalog, and the dependency closure engine.
//
// A Set is a value type sized to cover the whole catalog; bits beyond
// the catalog stay zero. Dependency edges encode "X requires Y"
// (double-precision requires single-precision, vector crypto requires
// the vector extension) and are closed by fixed-point iteration, so
// edge order never matters.
package features

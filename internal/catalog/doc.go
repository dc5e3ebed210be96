// Package catalog is the by-name interface to a basis set record tree.
//
// It resolves user-facing names through the metadata index, drives the
// caching composer, and layers the optional operations on top: version
// selection, element subsets, contraction transforms, reference
// compaction, notes, and metadata queries. Every operation takes a
// context and returns data the caller owns.
package catalog

// Package compose assembles complete basis sets from table and component
// records.
//
// Composition is purely structural: for every element the table names, the
// listed component records are read and their shells and ECP blocks are
// concatenated in the listed order. Nothing is sorted, merged, or
// de-duplicated; two components contributing the same shell yield two
// shells, and the record author is responsible for the result. The single
// exception is effective core potentials: an element can receive an ECP
// from at most one component, and a second contribution is a structural
// violation, never an overwrite.
//
// Alongside the numeric payload, composition carries provenance: each
// component's description and per-element citation keys become reference
// blocks on the elements it contributed to (de-duplicated by exact
// equality), the contributing record paths are recorded per element, and
// each shell is tagged with the record it came from.
//
// Every composed set is validated before it is returned; a record that
// breaks a model invariant surfaces a structural-violation error naming
// the record, and there is no partial result.
//
// A Composer memoizes composition by table path: concurrent callers of
// the same table share one computation and one immutable result. Source
// data is static for the life of a process, so there is no invalidation;
// Reset exists for tests.
package compose

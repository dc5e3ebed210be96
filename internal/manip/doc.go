// Package manip transforms the contraction structure of basis sets.
//
// Five transforms are available, each a pure function from one basis set
// to a new one: uncontracting general contractions, splitting combined
// sp/spd shells, full atomization to single-primitive shells, merging
// shells into general contractions, and extracting free primitives from
// general blocks. Transforms never mutate their input, never touch ECP
// data or identifying metadata, and operate element by element, so
// applying one to an element never perturbs another.
//
// Callers normally go through Apply with a Transform value; the result is
// re-validated before it is returned, so a chain of transforms can feed
// each stage's output straight into the next.
package manip

// Package basis defines the canonical data model for basis-set data.
//
// This package contains type definitions, structural validation, and
// model-level utilities only. All other internal packages import basis;
// basis imports nothing internal. This keeps the model the foundational
// layer with no circular dependencies.
//
// Key design constraints:
//   - Element keys are atomic numbers as decimal strings ("1", "6", "8"),
//     matching the interchange records end to end. Numeric ordering is a
//     presentation concern, applied only at output boundaries.
//   - Exponents and coefficients are float64. An exactly-zero coefficient
//     (== 0.0, no tolerance) is the signal that a primitive does not
//     participate in a contraction; exact float64 equality defines when two
//     exponents are "the same".
//   - Values are never mutated in place once built. Producers hand out fresh
//     values (see Clone); a BasisSet held by more than one caller is treated
//     as immutable by convention.
//   - All JSON tags use snake_case.
package basis

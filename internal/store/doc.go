// Package store reads basis set records from a data directory or from a
// packed single-file bundle.
//
// A record tree contains five kinds of files:
//   - table records (*.table.json): one basis set version; set-level
//     metadata plus, per element, the ordered list of component record
//     paths that define it
//   - component records (*.json): per-element electron shells, ECP
//     blocks, and reference keys, with a description of the data source
//   - METADATA.json: the name index; internal name -> display name,
//     family, role, auxiliaries, and the version -> table path map
//   - REFERENCES.json: citation key -> bibliography entry
//   - notes (*.notes, *.family_notes): free-text annotations
//
// Records may equally be YAML (.yaml or .yml); YAML input is normalized
// to JSON before decoding so both encodings share one code path. Numeric
// fields in records may be JSON numbers or quoted decimal strings (the
// interchange convention preserves decimal text, including Fortran
// D-notation); both decode to float64.
//
// Two implementations of Source are provided: FSStore walks an io/fs.FS,
// and BundleStore reads a SQLite bundle built by Pack. All reads are
// independent of ordering quirks of the underlying medium; anything
// order-sensitive is defined by record content, never by directory
// iteration.
package store

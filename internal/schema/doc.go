// Package schema validates interchange records against CUE schemas
// before they reach the decoder.
//
// Validation is shape-level: field names, field types, enum values, and
// non-empty list requirements. Cross-field numeric laws (coefficient row
// length matching the primitive count, combined-shell row counts) belong
// to the model validator, which sees decoded values.
package schema

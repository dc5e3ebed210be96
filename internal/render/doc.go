// Package render turns a composed basis set into the text formats
// quantum chemistry programs read.
//
// Renderers consume the public basis model only and never mutate their
// input: Render works on a presentation-sorted copy. Every format is
// deterministic, so identical input yields byte-identical output.
package render

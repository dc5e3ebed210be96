// Package refs resolves and formats the literature behind a basis set.
//
// A composed basis set annotates each element with reference blocks;
// Compact folds elements that share an identical block list into one
// group and resolves every citation key against the bibliography. The
// groups then render as plain text, BibTeX, or JSON.
package refs

package testutil

import (
	"embed"
	"io/fs"
)

//go:embed fixtures
var fixtureFS embed.FS

// Fixtures returns the embedded record tree. The returned filesystem is
// rooted at the tree itself, so paths look like "sto/sto-3g.1.table.json".
func Fixtures() fs.FS {
	sub, err := fs.Sub(fixtureFS, "fixtures")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	return sub
}

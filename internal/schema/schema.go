package schema

import (
	_ "embed"
	"fmt"
	"io/fs"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/qcforge/basisset/internal/store"
)

//go:embed records.cue
var schemaSource string

// Problem is one schema violation found in a record.
type Problem struct {
	Record  string `json:"record"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func (p Problem) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", p.Record, p.Line, p.Column, p.Message)
	}
	return fmt.Sprintf("%s: %s", p.Record, p.Message)
}

// Validator checks record bytes against the embedded CUE schemas. The
// schema source compiles once on first use; after that a Validator is
// safe for concurrent checks.
type Validator struct {
	once sync.Once
	ctx  *cue.Context
	root cue.Value
}

// New returns a Validator. Compilation of the embedded schemas is
// deferred to the first check.
func New() *Validator { return &Validator{} }

func (v *Validator) compile() {
	v.ctx = cuecontext.New()
	v.root = v.ctx.CompileString(schemaSource, cue.Filename("records.cue"))
}

var kindDefs = map[store.Kind]string{
	store.KindTable:      "#Table",
	store.KindComponent:  "#Component",
	store.KindMetadata:   "#Metadata",
	store.KindReferences: "#References",
}

// Check validates one record, already in JSON form (see
// store.RecordJSON), against the schema for its kind. Notes and
// unclassified files have no schema and always pass. Every violation
// found is returned, not just the first.
func (v *Validator) Check(kind store.Kind, relpath string, data []byte) []Problem {
	def, ok := kindDefs[kind]
	if !ok {
		return nil
	}

	v.once.Do(v.compile)
	if err := v.root.Err(); err != nil {
		return problems(relpath, err)
	}

	expr, err := cuejson.Extract(relpath, data)
	if err != nil {
		return problems(relpath, err)
	}

	unified := v.root.LookupPath(cue.ParsePath(def)).Unify(v.ctx.BuildExpr(expr))
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return problems(relpath, err)
	}
	return nil
}

// CheckFS walks a record tree and validates every record that Classify
// recognizes. Unreadable trees abort with an error; malformed records
// report as problems and the walk continues.
func (v *Validator) CheckFS(fsys fs.FS) ([]Problem, error) {
	var out []Problem
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		kind := store.Classify(p)
		if _, ok := kindDefs[kind]; !ok {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		data, err := store.RecordJSON(p, raw)
		if err != nil {
			out = append(out, Problem{Record: p, Message: err.Error()})
			return nil
		}
		out = append(out, v.Check(kind, p, data)...)
		return nil
	})
	return out, err
}

// problems flattens a CUE error into per-position Problems.
func problems(relpath string, err error) []Problem {
	var out []Problem
	for _, e := range cueerrors.Errors(err) {
		p := Problem{Record: relpath, Message: e.Error()}
		if pos := cueerrors.Positions(e); len(pos) > 0 {
			p.Line = pos[0].Line()
			p.Column = pos[0].Column()
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		out = append(out, Problem{Record: relpath, Message: err.Error()})
	}
	return out
}

package store

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/testutil"
)

func TestFSStoreReadTable(t *testing.T) {
	s := NewFS(testutil.Fixtures())
	ctx := context.Background()

	tbl, err := s.ReadTable(ctx, "sto/sto-3g.1.table.json")
	require.NoError(t, err)
	assert.Equal(t, "STO-3G", tbl.DisplayName)
	assert.Equal(t, "sto", tbl.Family)
	assert.Equal(t, "orbital", tbl.Role)
	assert.Equal(t, []string{"gto"}, tbl.FunctionTypes)
	assert.Len(t, tbl.Elements, 3)
	assert.Equal(t, []string{"sto/sto-3g_atoms.1.json"}, tbl.Elements["8"])
}

func TestFSStoreReadTableNotFound(t *testing.T) {
	s := NewFS(testutil.Fixtures())

	_, err := s.ReadTable(context.Background(), "sto/nope.1.table.json")
	require.Error(t, err)
	assert.True(t, basis.IsNotFound(err))
	assert.Contains(t, err.Error(), "sto/nope.1.table.json")
}

func TestFSStoreReadComponent(t *testing.T) {
	s := NewFS(testutil.Fixtures())

	c, err := s.ReadComponent(context.Background(), "pople/6-31g_atoms.1.json")
	require.NoError(t, err)
	assert.Equal(t, "6-31G valence double-zeta", c.Description)

	carbon, ok := c.Elements["6"]
	require.True(t, ok)
	require.Len(t, carbon.Shells, 3)
	assert.Equal(t, []string{"ditchfield1971a"}, carbon.References)

	sp := carbon.Shells[1].ToModel()
	assert.Equal(t, []int{0, 1}, sp.AngularMomentum)
	assert.Equal(t, basis.HarmonicCartesian, sp.Harmonic)
	assert.Equal(t, []float64{7.8682724, 1.8812885, 0.5442493}, sp.Exponents)
	require.Len(t, sp.Coefficients, 2)
	assert.Equal(t, 1.1434564, sp.Coefficients[0][2])
}

func TestFSStoreReadComponentECP(t *testing.T) {
	s := NewFS(testutil.Fixtures())

	c, err := s.ReadComponent(context.Background(), "crenbl/crenbl_ecp.0.json")
	require.NoError(t, err)

	na := c.Elements["11"]
	assert.Equal(t, 10, na.ECPElectrons)
	require.Len(t, na.ECPPotentials, 3)

	p := na.ECPPotentials[0].ToModel()
	assert.Equal(t, []int{2}, p.AngularMomentum)
	assert.Equal(t, []int{1, 2}, p.RExponents)
	assert.Equal(t, []float64{175.5502590, 35.0516791}, p.GaussianExponents)
	assert.Equal(t, [][]float64{{-10.0, -40.5016264}}, p.Coefficients)
}

// TestFSStoreYAMLMatchesJSON pins the encoding equivalence: the YAML set's
// hydrogen data carries the same values as the JSON STO-3G version 1
// records, as quoted D-notation strings. Both decode paths must agree.
func TestFSStoreYAMLMatchesJSON(t *testing.T) {
	s := NewFS(testutil.Fixtures())
	ctx := context.Background()

	fromYAML, err := s.ReadComponent(ctx, "yaml/yamlset_atoms.0.yaml")
	require.NoError(t, err)
	fromJSON, err := s.ReadComponent(ctx, "sto/sto-3g_atoms.1.json")
	require.NoError(t, err)

	ySh := fromYAML.Elements["1"].Shells[0].ToModel()
	jSh := fromJSON.Elements["1"].Shells[0].ToModel()
	assert.Equal(t, jSh.Exponents, ySh.Exponents)
	assert.Equal(t, jSh.Coefficients, ySh.Coefficients)
}

// TestFSStoreEncodingTwin verifies a .json reference resolves a .yaml file.
func TestFSStoreEncodingTwin(t *testing.T) {
	s := NewFS(testutil.Fixtures())

	tbl, err := s.ReadTable(context.Background(), "yaml/yamlset.0.table.json")
	require.NoError(t, err)
	assert.Equal(t, "YAMLSet", tbl.DisplayName)
}

func TestFSStoreMetadataMemoized(t *testing.T) {
	s := NewFS(testutil.Fixtures())
	ctx := context.Background()

	m1, err := s.Metadata(ctx)
	require.NoError(t, err)
	m2, err := s.Metadata(ctx)
	require.NoError(t, err)

	require.NotNil(t, m1)
	assert.Equal(t, len(m1), len(m2))
	// Same underlying map, not a re-read.
	assert.Same(t, m1["sto-3g"], m2["sto-3g"])

	entry := m1["sto-3g"]
	assert.Equal(t, "STO-3G", entry.DisplayName)
	assert.Equal(t, "1", entry.LatestVersion)
	assert.Equal(t, []string{"0", "1"}, entry.VersionList())
}

func TestFSStoreReferences(t *testing.T) {
	s := NewFS(testutil.Fixtures())

	rd, err := s.References(context.Background())
	require.NoError(t, err)

	ref, ok := rd["hehre1969a"]
	require.True(t, ok)
	assert.Equal(t, "article", ref.Type)
	assert.Equal(t, "J. Chem. Phys.", ref.Journal)
	assert.Len(t, ref.Authors, 3)
}

func TestFSStoreReadNotes(t *testing.T) {
	s := NewFS(testutil.Fixtures())
	ctx := context.Background()

	notes, err := s.ReadNotes(ctx, "sto/sto-3g.notes")
	require.NoError(t, err)
	assert.Contains(t, notes, "STO-3G")

	_, err = s.ReadNotes(ctx, "sto/absent.notes")
	assert.True(t, basis.IsNotFound(err))
}

func TestFSStoreStructuralErrorNamesRecord(t *testing.T) {
	fsys := fstest.MapFS{
		"bad/broken.1.table.json": &fstest.MapFile{Data: []byte(`{"display_name": `)},
	}
	s := NewFS(fsys)

	_, err := s.ReadTable(context.Background(), "bad/broken.1.table.json")
	require.Error(t, err)
	assert.True(t, basis.IsStructuralViolation(err))
	assert.Contains(t, err.Error(), "bad/broken.1.table.json")
}

func TestMetadataEntryVersionSelection(t *testing.T) {
	s := NewFS(testutil.Fixtures())
	m, err := s.Metadata(context.Background())
	require.NoError(t, err)
	entry := m["sto-3g"]

	v, vi, err := entry.Version("")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.Equal(t, "sto/sto-3g.1.table.json", vi.TablePath)

	v, _, err = entry.Version("latest")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	v, vi, err = entry.Version("0")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
	assert.Equal(t, []string{"1", "6"}, vi.Elements)

	_, _, err = entry.Version("7")
	assert.True(t, basis.IsNotFound(err))
}

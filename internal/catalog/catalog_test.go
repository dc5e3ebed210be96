package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/manip"
	"github.com/qcforge/basisset/internal/store"
	"github.com/qcforge/basisset/internal/testutil"
)

func fixtureCatalog() *Catalog {
	return New(store.NewFS(testutil.Fixtures()), testutil.SilentLogger())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "sto-3g", NormalizeName("STO-3G"))
	assert.Equal(t, "6-31g", NormalizeName("  6-31G "))
	assert.Equal(t, "sto-3g", NormalizeName("sto-3g"))
}

func TestLookup(t *testing.T) {
	c := fixtureCatalog()

	entry, err := c.Lookup(context.Background(), "STO-3g")
	require.NoError(t, err)
	assert.Equal(t, "STO-3G", entry.DisplayName)
	assert.Equal(t, "sto", entry.Family)

	_, err = c.Lookup(context.Background(), "def2-svp")
	assert.True(t, basis.IsNotFound(err))
}

func TestGetBasisLatest(t *testing.T) {
	c := fixtureCatalog()

	bs, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "STO-3G", bs.Name)
	assert.Equal(t, "1", bs.Version)
	assert.Equal(t, []string{"1", "6", "8"}, bs.ElementKeys())
}

func TestGetBasisVersionSelection(t *testing.T) {
	c := fixtureCatalog()

	v0, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{Version: "0"})
	require.NoError(t, err)
	assert.Equal(t, "0", v0.Version)
	assert.Equal(t, []string{"1", "6"}, v0.ElementKeys())

	latest, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{Version: "latest"})
	require.NoError(t, err)
	assert.Equal(t, "1", latest.Version)

	_, err = c.GetBasis(context.Background(), "sto-3g", GetOptions{Version: "9"})
	assert.True(t, basis.IsNotFound(err))
}

func TestGetBasisElementSubset(t *testing.T) {
	c := fixtureCatalog()

	bs, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{Elements: "H,O"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "8"}, bs.ElementKeys())

	_, err = c.GetBasis(context.Background(), "sto-3g", GetOptions{Elements: "U"})
	require.Error(t, err)
	assert.True(t, basis.IsNotFound(err))

	var berr *basis.Error
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "92", berr.Element)
}

// GetBasis results must never alias the composer cache: mutating one
// response cannot leak into the next.
func TestGetBasisCopies(t *testing.T) {
	c := fixtureCatalog()

	first, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{})
	require.NoError(t, err)
	first.Elements["1"].Shells[0].Exponents[0] = -1

	second, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3.425250914, second.Elements["1"].Shells[0].Exponents[0])
}

// Transforms apply in the conventional pipeline order no matter how the
// request orders them.
func TestGetBasisTransformOrder(t *testing.T) {
	c := fixtureCatalog()

	plain, err := c.GetBasis(context.Background(), "6-31g", GetOptions{})
	require.NoError(t, err)
	want, err := manip.Apply(plain, manip.UncontractSPDF)
	require.NoError(t, err)
	want, err = manip.Apply(want, manip.MakeGeneral)
	require.NoError(t, err)

	got, err := c.GetBasis(context.Background(), "6-31g", GetOptions{
		Transforms: []manip.Transform{manip.MakeGeneral, manip.UncontractSPDF},
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Carbon collapses to one general shell per angular momentum.
	carbon := got.Elements["6"]
	require.Len(t, carbon.Shells, 3)
	assert.Len(t, carbon.Shells[0].Exponents, 10)
	assert.Len(t, carbon.Shells[0].Coefficients, 3)
	assert.Len(t, carbon.Shells[1].Exponents, 4)
	assert.Len(t, carbon.Shells[1].Coefficients, 2)
}

func TestGetBasisUncontracted(t *testing.T) {
	c := fixtureCatalog()

	bs, err := c.GetBasis(context.Background(), "sto-3g", GetOptions{
		Elements:   "H",
		Transforms: []manip.Transform{manip.UncontractSegmented},
	})
	require.NoError(t, err)

	h := bs.Elements["1"]
	require.Len(t, h.Shells, 3)
	for _, sh := range h.Shells {
		assert.Equal(t, [][]float64{{1.0}}, sh.Coefficients)
	}
}

func TestGetReferences(t *testing.T) {
	c := fixtureCatalog()

	groups, err := c.GetReferences(context.Background(), "6-31g", GetOptions{})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, []string{"1"}, groups[0].Elements)
	require.Len(t, groups[0].Blocks, 1)
	assert.Equal(t, []string{"ditchfield1971a"}, groups[0].Blocks[0].Keys)

	assert.Equal(t, []string{"6"}, groups[1].Elements)
	require.Len(t, groups[1].Blocks, 2)
	require.Len(t, groups[1].Blocks[1].Data, 1)
	assert.Equal(t, "article", groups[1].Blocks[1].Data[0].Type)
}

func TestContractionSummary(t *testing.T) {
	c := fixtureCatalog()

	out, err := c.ContractionSummary(context.Background(), "sto-3g", GetOptions{})
	require.NoError(t, err)
	assert.Equal(t,
		"H   (3s) -> [1s]\n"+
			"C   (6s,3p) -> [2s,1p]\n"+
			"O   (6s,3p) -> [2s,1p]\n",
		out)
}

func TestContractionSummaryECPOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"METADATA.json": &fstest.MapFile{Data: []byte(`{
			"bare-ecp": {
				"display_name": "BARE-ECP",
				"family": "t",
				"role": "orbital",
				"description": "ECP with no valence shells",
				"latest_version": "0",
				"versions": {
					"0": {"file": "t/bare-ecp.0.table.json", "elements": ["11"]}
				}
			}
		}`)},
		"t/bare-ecp.0.table.json": &fstest.MapFile{Data: []byte(`{
			"display_name": "BARE-ECP",
			"description": "ECP with no valence shells",
			"family": "t",
			"role": "orbital",
			"function_types": ["scalar_ecp"],
			"elements": {"11": ["t/core.0.json"]}
		}`)},
		"t/core.0.json": &fstest.MapFile{Data: []byte(`{
			"description": "core potential",
			"elements": {"11": {
				"ecp_electrons": 10,
				"ecp_potentials": [{
					"ecp_type": "scalar_ecp",
					"angular_momentum": [0],
					"r_exponents": [2],
					"gaussian_exponents": [1.5],
					"coefficients": [[10.0]]
				}],
				"references": []
			}}
		}`)},
	}
	c := New(store.NewFS(fsys), testutil.SilentLogger())

	out, err := c.ContractionSummary(context.Background(), "bare-ecp", GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Na  (no electron shells)\n", out)
}

func TestAllNames(t *testing.T) {
	c := fixtureCatalog()

	names, err := c.AllNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"6-31g", "crenbl-ecp", "demo-jfit", "sto-3g", "yamlset"}, names)
}

func TestFamilies(t *testing.T) {
	c := fixtureCatalog()

	families, err := c.Families(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"crenbl", "demo", "pople", "sto", "yaml"}, families)
}

func TestFilter(t *testing.T) {
	c := fixtureCatalog()
	ctx := context.Background()

	all, err := c.Filter(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	bySubstr, err := c.Filter(ctx, "31G", "", "")
	require.NoError(t, err)
	require.Len(t, bySubstr, 1)
	assert.Contains(t, bySubstr, "6-31g")

	byFamily, err := c.Filter(ctx, "", "STO", "")
	require.NoError(t, err)
	require.Len(t, byFamily, 1)
	assert.Contains(t, byFamily, "sto-3g")

	byRole, err := c.Filter(ctx, "", "", "jfit")
	require.NoError(t, err)
	require.Len(t, byRole, 1)
	assert.Contains(t, byRole, "demo-jfit")

	none, err := c.Filter(ctx, "zeta", "sto", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFilterRejectsUnknownCriteria(t *testing.T) {
	c := fixtureCatalog()
	ctx := context.Background()

	_, err := c.Filter(ctx, "", "karlsruhe", "")
	assert.True(t, basis.IsNotFound(err))

	_, err = c.Filter(ctx, "", "", "kfit")
	assert.True(t, basis.IsStructuralViolation(err))
}

func TestLookupAuxiliary(t *testing.T) {
	c := fixtureCatalog()
	ctx := context.Background()

	aux, err := c.LookupAuxiliary(ctx, "6-31G", "jfit")
	require.NoError(t, err)
	assert.Equal(t, "demo-jfit", aux)

	_, err = c.LookupAuxiliary(ctx, "6-31g", "rifit")
	assert.True(t, basis.IsNotFound(err))

	_, err = c.LookupAuxiliary(ctx, "sto-3g", "jfit")
	assert.True(t, basis.IsNotFound(err))

	_, err = c.LookupAuxiliary(ctx, "6-31g", "kfit")
	assert.True(t, basis.IsStructuralViolation(err))
}

func TestBasisNotes(t *testing.T) {
	c := fixtureCatalog()
	ctx := context.Background()

	notes, err := c.BasisNotes(ctx, "STO-3G")
	require.NoError(t, err)
	assert.Contains(t, notes, "Notes on STO-3G")

	missing, err := c.BasisNotes(ctx, "6-31g")
	require.NoError(t, err)
	assert.Equal(t, "Notes are not available for the 6-31G basis", missing)

	_, err = c.BasisNotes(ctx, "nope")
	assert.True(t, basis.IsNotFound(err))
}

func TestFamilyNotes(t *testing.T) {
	c := fixtureCatalog()
	ctx := context.Background()

	notes, err := c.FamilyNotes(ctx, "STO")
	require.NoError(t, err)
	assert.Contains(t, notes, "Notes for the STO family")

	missing, err := c.FamilyNotes(ctx, "pople")
	require.NoError(t, err)
	assert.Equal(t, "Notes are not available for the pople family", missing)

	_, err = c.FamilyNotes(ctx, "karlsruhe")
	assert.True(t, basis.IsNotFound(err))
}

func TestNotesPath(t *testing.T) {
	assert.Equal(t, "sto/sto-3g.notes", notesPath("sto/sto-3g.1.table.json"))
	assert.Equal(t, "yaml/yamlset.notes", notesPath("yaml/yamlset.0.table.yaml"))
}

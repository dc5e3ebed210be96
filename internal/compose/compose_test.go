package compose

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/store"
	"github.com/qcforge/basisset/internal/testutil"
)

func fixtureComposer() *Composer {
	return New(store.NewFS(testutil.Fixtures()), testutil.SilentLogger())
}

func TestComposeSTO3G(t *testing.T) {
	c := fixtureComposer()

	bs, err := c.Compose(context.Background(), "sto/sto-3g.1.table.json")
	require.NoError(t, err)

	assert.Equal(t, "STO-3G", bs.Name)
	assert.Equal(t, "1", bs.Version)
	assert.Equal(t, "sto", bs.Family)
	assert.Equal(t, basis.RoleOrbital, bs.Role)
	assert.Equal(t, "Oxygen added, hydrogen exponents at full precision", bs.RevisionDescription)
	assert.Equal(t, basis.HarmonicSpherical, bs.HarmonicType)
	assert.Equal(t, []string{"1", "6", "8"}, bs.ElementKeys())

	h := bs.Elements["1"]
	require.Len(t, h.Shells, 1)
	assert.Equal(t, []float64{3.425250914, 0.6239137298, 0.1688554040}, h.Shells[0].Exponents)
	assert.Equal(t, "sto/sto-3g_atoms.1.json", h.Shells[0].Source)
	assert.Equal(t, []string{"sto/sto-3g_atoms.1.json"}, h.Components)
	require.Len(t, h.References, 1)
	assert.Equal(t, "STO-3G Minimal Basis", h.References[0].Description)
	assert.Equal(t, []string{"hehre1969a"}, h.References[0].Keys)

	carbon := bs.Elements["6"]
	require.Len(t, carbon.Shells, 2)
	assert.Equal(t, []int{0, 1}, carbon.Shells[1].AngularMomentum)
}

// TestComposeMultiComponentOrder verifies that component order in the
// table is the shell order in the result, and that every contributing
// record shows up in the provenance.
func TestComposeMultiComponentOrder(t *testing.T) {
	c := fixtureComposer()

	bs, err := c.Compose(context.Background(), "pople/6-31g.1.table.json")
	require.NoError(t, err)

	assert.Equal(t, basis.HarmonicCartesian, bs.HarmonicType)

	carbon := bs.Elements["6"]
	require.Len(t, carbon.Shells, 4)
	// Last shell is the polarization d from the second component.
	assert.Equal(t, []int{2}, carbon.Shells[3].AngularMomentum)
	assert.Equal(t, "polarization", carbon.Shells[3].Region)
	assert.Equal(t, "pople/6-31g_polar.1.json", carbon.Shells[3].Source)

	assert.Equal(t, []string{"pople/6-31g_atoms.1.json", "pople/6-31g_polar.1.json"}, carbon.Components)

	require.Len(t, carbon.References, 2)
	assert.Equal(t, []string{"ditchfield1971a"}, carbon.References[0].Keys)
	assert.Equal(t, []string{"hariharan1973a"}, carbon.References[1].Keys)

	// Hydrogen only has the first component.
	assert.Len(t, bs.Elements["1"].References, 1)
}

func TestComposeECP(t *testing.T) {
	c := fixtureComposer()

	bs, err := c.Compose(context.Background(), "crenbl/crenbl-ecp.0.table.json")
	require.NoError(t, err)

	na := bs.Elements["11"]
	assert.Len(t, na.Shells, 2)
	assert.Equal(t, 10, na.ECPElectrons)
	require.Len(t, na.ECPPotentials, 3)
	assert.Equal(t, []int{2}, na.ECPPotentials[0].AngularMomentum)

	// Same citation key under two descriptions stays two blocks.
	require.Len(t, na.References, 2)
	assert.NotEqual(t, na.References[0].Description, na.References[1].Description)
}

func TestComposeYAMLTable(t *testing.T) {
	c := fixtureComposer()

	bs, err := c.Compose(context.Background(), "yaml/yamlset.0.table.yaml")
	require.NoError(t, err)
	assert.Equal(t, "YAMLSet", bs.Name)
	assert.Equal(t, "0", bs.Version)
	assert.Equal(t, []float64{3.425250914, 0.6239137298, 0.1688554040},
		bs.Elements["1"].Shells[0].Exponents)
}

// TestComposeRepeatedComponent pins the structural-concatenation rule:
// listing the same component twice duplicates its shells (no dedup), while
// reference blocks and the ECP rule still apply.
func TestComposeRepeatedComponent(t *testing.T) {
	fsys := fstest.MapFS{
		"t/dup.0.table.json": &fstest.MapFile{Data: []byte(`{
			"display_name": "DUP",
			"description": "d",
			"family": "t",
			"role": "orbital",
			"elements": {"1": ["t/a.0.json", "t/a.0.json"]}
		}`)},
		"t/a.0.json": &fstest.MapFile{Data: []byte(`{
			"description": "component a",
			"elements": {"1": {
				"electron_shells": [{
					"angular_momentum": [0],
					"harmonic_type": "spherical",
					"exponents": [1.0],
					"coefficients": [[1.0]]
				}],
				"references": ["hehre1969a"]
			}}
		}`)},
	}
	c := New(store.NewFS(fsys), testutil.SilentLogger())

	bs, err := c.Compose(context.Background(), "t/dup.0.table.json")
	require.NoError(t, err)

	h := bs.Elements["1"]
	assert.Len(t, h.Shells, 2, "duplicate shells are kept")
	assert.Len(t, h.References, 1, "equal reference blocks are deduplicated")
	assert.Equal(t, []string{"t/a.0.json", "t/a.0.json"}, h.Components)
}

func TestComposeECPOverwriteRejected(t *testing.T) {
	ecpComponent := `{
		"description": "an ecp",
		"elements": {"1": {
			"ecp_electrons": 2,
			"ecp_potentials": [{
				"angular_momentum": [0],
				"r_exponents": [2],
				"gaussian_exponents": [10.0],
				"coefficients": [[50.0]]
			}]
		}}
	}`
	fsys := fstest.MapFS{
		"t/two-ecp.0.table.json": &fstest.MapFile{Data: []byte(`{
			"display_name": "TWOECP",
			"description": "d",
			"family": "t",
			"role": "orbital",
			"elements": {"1": ["t/ecp1.0.json", "t/ecp2.0.json"]}
		}`)},
		"t/ecp1.0.json": &fstest.MapFile{Data: []byte(ecpComponent)},
		"t/ecp2.0.json": &fstest.MapFile{Data: []byte(ecpComponent)},
	}
	c := New(store.NewFS(fsys), testutil.SilentLogger())

	_, err := c.Compose(context.Background(), "t/two-ecp.0.table.json")
	require.Error(t, err)
	assert.True(t, basis.IsStructuralViolation(err))
	assert.Contains(t, err.Error(), "overwritten")
}

func TestComposeMissingElementInComponent(t *testing.T) {
	fsys := fstest.MapFS{
		"t/gap.0.table.json": &fstest.MapFile{Data: []byte(`{
			"display_name": "GAP",
			"description": "d",
			"family": "t",
			"role": "orbital",
			"elements": {"2": ["t/only-h.0.json"]}
		}`)},
		"t/only-h.0.json": &fstest.MapFile{Data: []byte(`{
			"description": "hydrogen only",
			"elements": {"1": {
				"electron_shells": [{
					"angular_momentum": [0],
					"exponents": [1.0],
					"coefficients": [[1.0]]
				}]
			}}
		}`)},
	}
	c := New(store.NewFS(fsys), testutil.SilentLogger())

	_, err := c.Compose(context.Background(), "t/gap.0.table.json")
	require.Error(t, err)
	assert.True(t, basis.IsStructuralViolation(err))

	var be *basis.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "2", be.Element)
	assert.Equal(t, "t/only-h.0.json", be.Path)
}

func TestComposeBadRoleNamesTable(t *testing.T) {
	fsys := fstest.MapFS{
		"t/badrole.0.table.json": &fstest.MapFile{Data: []byte(`{
			"display_name": "BADROLE",
			"role": "auxiliary",
			"elements": {"1": ["t/c.0.json"]}
		}`)},
		"t/c.0.json": &fstest.MapFile{Data: []byte(`{"description":"c","elements":{"1":{"electron_shells":[{"angular_momentum":[0],"exponents":[1.0],"coefficients":[[1.0]]}]}}}`)},
	}
	c := New(store.NewFS(fsys), testutil.SilentLogger())

	_, err := c.Compose(context.Background(), "t/badrole.0.table.json")
	require.Error(t, err)
	assert.True(t, basis.IsStructuralViolation(err))
	assert.Contains(t, err.Error(), "t/badrole.0.table.json")
}

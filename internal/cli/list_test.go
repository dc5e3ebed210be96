package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBasisSets(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execCLI(t, "-d", dir, "list-basis-sets")
	require.NoError(t, err)
	assert.Equal(t,
		"6-31g       6-31G valence double-zeta basis\n"+
			"crenbl-ecp  Effective core potential demonstration set\n"+
			"demo-jfit   Demonstration Coulomb-fitting auxiliary set\n"+
			"sto-3g      STO-3G Minimal Basis (3 functions/AO)\n"+
			"yamlset     YAML-encoded records demonstration set\n",
		out)
}

func TestListBasisSetsNoDescription(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execCLI(t, "-d", dir, "list-basis-sets", "-n")
	require.NoError(t, err)
	assert.Equal(t, "6-31g\ncrenbl-ecp\ndemo-jfit\nsto-3g\nyamlset\n", out)
}

func TestListBasisSetsFiltered(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execCLI(t, "-d", dir, "list-basis-sets", "-n", "--family", "sto")
	require.NoError(t, err)
	assert.Equal(t, "sto-3g\n", out)

	out, err = execCLI(t, "-d", dir, "list-basis-sets", "-n", "--role", "jfit")
	require.NoError(t, err)
	assert.Equal(t, "demo-jfit\n", out)

	out, err = execCLI(t, "-d", dir, "list-basis-sets", "-n", "--substr", "31G")
	require.NoError(t, err)
	assert.Equal(t, "6-31g\n", out)
}

func TestListBasisSetsUnknownFamily(t *testing.T) {
	dir := fixtureDir(t)

	_, err := execCLI(t, "-d", dir, "list-basis-sets", "--family", "karlsruhe")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "karlsruhe")
}

func TestListFamilies(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execCLI(t, "-d", dir, "list-families")
	require.NoError(t, err)
	assert.Equal(t, "crenbl\ndemo\npople\nsto\nyaml\n", out)
}

func TestListFormats(t *testing.T) {
	out, err := execCLI(t, "list-formats", "-n")
	require.NoError(t, err)
	assert.Equal(t, "gaussian94\njson\nnwchem\npsi4\n", out)

	out, err = execCLI(t, "list-formats")
	require.NoError(t, err)
	assert.Contains(t, out, "nwchem")
	assert.Contains(t, out, "NWChem")
}

func TestListRefFormats(t *testing.T) {
	out, err := execCLI(t, "list-ref-formats", "-n")
	require.NoError(t, err)
	assert.Equal(t, "bib\njson\ntxt\n", out)
}

func TestListRoles(t *testing.T) {
	out, err := execCLI(t, "list-roles", "-n")
	require.NoError(t, err)
	assert.Equal(t, "orbital\njfit\njkfit\nrifit\nadmmfit\n", out)

	out, err = execCLI(t, "list-roles")
	require.NoError(t, err)
	assert.Contains(t, out, "Orbital basis")
}

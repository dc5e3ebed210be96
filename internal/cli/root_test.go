package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "basisset", cmd.Use)
	assert.Contains(t, cmd.Long, "basis sets")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"list-basis-sets", "list-families", "list-formats",
		"list-ref-formats", "list-roles", "lookup-by-role",
		"get-basis", "get-refs", "get-info", "get-notes",
		"get-family", "get-versions", "get-family-notes",
		"validate", "pack",
	}

	for _, name := range commands {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	dataDir := cmd.PersistentFlags().Lookup("data-dir")
	require.NotNil(t, dataDir)
	assert.Equal(t, "d", dataDir.Shorthand)
	assert.Equal(t, "data", dataDir.DefValue)

	output := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "", output.DefValue)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	bundle := cmd.PersistentFlags().Lookup("bundle")
	require.NotNil(t, bundle)
	assert.Equal(t, "false", bundle.DefValue)
}

func TestGetBasisCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	sub, _, err := cmd.Find([]string{"get-basis"})
	require.NoError(t, err)

	for _, flag := range []string{"elements", "version", "noheader", "unc-gen", "unc-spdf", "unc-seg", "opt-gen", "make-gen"} {
		assert.NotNil(t, sub.Flags().Lookup(flag), "flag %s should exist", flag)
	}
}

func TestMissingDataDir(t *testing.T) {
	_, err := execCLI(t, "--data-dir", "/does/not/exist", "list-families")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))

	wrapped := WrapExitError(ExitFailure, "outer", assert.AnError)
	assert.Equal(t, "outer: assert.AnError general error for testing", wrapped.Error())
	assert.Equal(t, assert.AnError, wrapped.Unwrap())
}

func TestFormatColumns(t *testing.T) {
	lines := formatColumns([][]string{
		{"a", "first"},
		{"longer", "second"},
	}, "  ")
	assert.Equal(t, []string{
		"  a       first",
		"  longer  second",
	}, lines)

	assert.Nil(t, formatColumns(nil, ""))
}

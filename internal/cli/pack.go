package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/store"
)

// NewPackCommand creates the pack command.
func NewPackCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <bundle-path>",
		Short: "Pack a record directory into an SQLite bundle",
		Long: `Copy every record in --data-dir into a single SQLite bundle file.
Read commands accept the bundle through --data-dir with --bundle set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Bundle {
				return NewExitError(ExitCommandError, "pack reads a record directory, not a bundle")
			}
			info, err := os.Stat(rootOpts.DataDir)
			if err != nil {
				return WrapExitError(ExitCommandError, "opening data directory", err)
			}
			if !info.IsDir() {
				return NewExitError(ExitCommandError, "data directory "+rootOpts.DataDir+" is not a directory")
			}

			n, err := store.Pack(cmd.Context(), os.DirFS(rootOpts.DataDir), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "packing bundle", err)
			}
			return writeResult(cmd, rootOpts, fmt.Sprintf("packed %d records into %s", n, args[0]))
		},
	}
}

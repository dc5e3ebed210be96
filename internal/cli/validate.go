package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/schema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [record-dir]",
		Short: "Validate record files against the schemas",
		Long: `Check every record file in a directory tree against the embedded
schemas. The directory defaults to --data-dir. Exit code 1 means
violations were found; problems are listed one per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := rootOpts.DataDir
			if len(args) == 1 {
				dir = args[0]
			}
			return runValidate(rootOpts, dir, cmd)
		},
	}
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	if opts.Bundle {
		return NewExitError(ExitCommandError, "validate reads a record directory, not a bundle")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening record directory", err)
	}
	if !info.IsDir() {
		return NewExitError(ExitCommandError, "record directory "+dir+" is not a directory")
	}

	problems, err := schema.New().CheckFS(os.DirFS(dir))
	if err != nil {
		return WrapExitError(ExitCommandError, "validating records", err)
	}

	if len(problems) == 0 {
		return writeResult(cmd, opts, "all records valid")
	}

	lines := make([]string, 0, len(problems))
	for _, p := range problems {
		lines = append(lines, p.String())
	}
	if err := writeResult(cmd, opts, strings.Join(lines, "\n")); err != nil {
		return err
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d problem(s)", len(problems)))
}

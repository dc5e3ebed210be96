package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/catalog"
	"github.com/qcforge/basisset/internal/store"
)

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	DataDir string // record tree directory, or bundle file with --bundle
	Bundle  bool   // treat --data-dir as an SQLite bundle
	Output  string // write command output here instead of stdout
	Verbose bool

	logger *slog.Logger
}

// NewRootCommand creates the root command for the basisset CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "basisset",
		Short: "Quantum chemistry basis set tables",
		Long: `Compose, transform, and format quantum chemistry basis sets from a
versioned record tree. Formatted output is written for direct use as
program input (NWChem, Gaussian 94, Psi4), with references available
as plain text or BibTeX.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.DataDir, "data-dir", "d", "data", "record tree to read (directory, or bundle file with --bundle)")
	cmd.PersistentFlags().BoolVar(&opts.Bundle, "bundle", false, "read --data-dir as an SQLite bundle instead of a directory")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "output to the given file rather than stdout")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewListBasisSetsCommand(opts))
	cmd.AddCommand(NewListFamiliesCommand(opts))
	cmd.AddCommand(NewListFormatsCommand(opts))
	cmd.AddCommand(NewListRefFormatsCommand(opts))
	cmd.AddCommand(NewListRolesCommand(opts))
	cmd.AddCommand(NewLookupByRoleCommand(opts))
	cmd.AddCommand(NewGetBasisCommand(opts))
	cmd.AddCommand(NewGetRefsCommand(opts))
	cmd.AddCommand(NewGetInfoCommand(opts))
	cmd.AddCommand(NewGetNotesCommand(opts))
	cmd.AddCommand(NewGetFamilyCommand(opts))
	cmd.AddCommand(NewGetVersionsCommand(opts))
	cmd.AddCommand(NewGetFamilyNotesCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewPackCommand(opts))

	return cmd
}

// openSource opens the record source named by the global flags. The
// returned closer is non-nil for bundle sources; callers must close it.
func (o *RootOptions) openSource() (store.Source, io.Closer, error) {
	if o.Bundle {
		b, err := store.OpenBundle(o.DataDir)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "opening bundle", err)
		}
		return b, b, nil
	}

	info, err := os.Stat(o.DataDir)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "opening data directory", err)
	}
	if !info.IsDir() {
		return nil, nil, NewExitError(ExitCommandError, "data directory "+o.DataDir+" is not a directory (did you mean --bundle?)")
	}
	return store.NewFS(os.DirFS(o.DataDir)), nil, nil
}

// openCatalog opens the record source and wraps it in a catalog.
func (o *RootOptions) openCatalog() (*catalog.Catalog, io.Closer, error) {
	src, closer, err := o.openSource()
	if err != nil {
		return nil, nil, err
	}
	return catalog.New(src, o.logger), closer, nil
}

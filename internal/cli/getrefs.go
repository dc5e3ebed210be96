package cli

import (
	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/catalog"
	"github.com/qcforge/basisset/internal/refs"
)

// GetRefsOptions holds flags for the get-refs command.
type GetRefsOptions struct {
	*RootOptions
	Elements string
	Version  string
}

// NewGetRefsCommand creates the get-refs command.
func NewGetRefsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetRefsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get-refs <name> <fmt>",
		Short: "Output references for a basis set",
		Long: `Resolve the citations annotating a basis set's elements and write
them in the given reference format. Use list-ref-formats for the
recognized formats.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetRefs(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Elements, "elements", "", "which elements to output references for (default is all defined in the basis)")
	cmd.Flags().StringVar(&opts.Version, "version", "", "which version to get the references for (default is the latest)")

	return cmd
}

func runGetRefs(opts *GetRefsOptions, name, fmtName string, cmd *cobra.Command) error {
	format, err := refs.ParseRefFormat(fmtName)
	if err != nil {
		return WrapExitError(ExitCommandError, "get-refs", err)
	}

	cat, closer, err := opts.openCatalog()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	groups, err := cat.GetReferences(cmd.Context(), name, catalog.GetOptions{
		Elements: opts.Elements,
		Version:  opts.Version,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "get-refs", err)
	}

	out, err := refs.RenderReferences(groups, format)
	if err != nil {
		return WrapExitError(ExitCommandError, "get-refs", err)
	}
	return writeResult(cmd, opts.RootOptions, out)
}

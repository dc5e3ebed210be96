package cli

import (
	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/catalog"
	"github.com/qcforge/basisset/internal/manip"
	"github.com/qcforge/basisset/internal/render"
)

// GetBasisOptions holds flags for the get-basis command.
type GetBasisOptions struct {
	*RootOptions
	Elements string
	Version  string
	NoHeader bool

	UncGen  bool
	UncSPDF bool
	UncSeg  bool
	OptGen  bool
	MakeGen bool
}

// transforms collects the requested contraction transforms. The catalog
// applies them in the conventional pipeline order regardless.
func (o *GetBasisOptions) transforms() []manip.Transform {
	var ts []manip.Transform
	if o.OptGen {
		ts = append(ts, manip.OptimizeGeneral)
	}
	if o.UncGen {
		ts = append(ts, manip.UncontractGeneral)
	}
	if o.UncSPDF {
		ts = append(ts, manip.UncontractSPDF)
	}
	if o.UncSeg {
		ts = append(ts, manip.UncontractSegmented)
	}
	if o.MakeGen {
		ts = append(ts, manip.MakeGeneral)
	}
	return ts
}

// NewGetBasisCommand creates the get-basis command.
func NewGetBasisCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetBasisOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get-basis <name> <fmt>",
		Short: "Output a formatted basis set",
		Long: `Compose a basis set from its records and write it in the given
output format. Use list-formats for the recognized formats.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetBasis(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Elements, "elements", "", "which elements to output (default is all defined in the basis)")
	cmd.Flags().StringVar(&opts.Version, "version", "", "which version to output (default is the latest)")
	cmd.Flags().BoolVar(&opts.NoHeader, "noheader", false, "do not output the header at the top")
	cmd.Flags().BoolVar(&opts.UncGen, "unc-gen", false, "remove general contractions")
	cmd.Flags().BoolVar(&opts.UncSPDF, "unc-spdf", false, "remove combined sp, spd, ... contractions")
	cmd.Flags().BoolVar(&opts.UncSeg, "unc-seg", false, "atomize to single-primitive shells")
	cmd.Flags().BoolVar(&opts.OptGen, "opt-gen", false, "optimize general contractions")
	cmd.Flags().BoolVar(&opts.MakeGen, "make-gen", false, "make the basis set as generally-contracted as possible")

	return cmd
}

func runGetBasis(opts *GetBasisOptions, name, fmtName string, cmd *cobra.Command) error {
	format, err := render.ParseFormat(fmtName)
	if err != nil {
		return WrapExitError(ExitCommandError, "get-basis", err)
	}

	cat, closer, err := opts.openCatalog()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	bs, err := cat.GetBasis(cmd.Context(), name, catalog.GetOptions{
		Elements:   opts.Elements,
		Version:    opts.Version,
		Transforms: opts.transforms(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "get-basis", err)
	}

	out, err := render.Render(bs, format, render.Options{NoHeader: opts.NoHeader})
	if err != nil {
		return WrapExitError(ExitCommandError, "get-basis", err)
	}
	return writeResult(cmd, opts.RootOptions, out)
}

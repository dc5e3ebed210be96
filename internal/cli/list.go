package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/refs"
	"github.com/qcforge/basisset/internal/render"
)

// ListBasisSetsOptions holds flags for the list-basis-sets command.
type ListBasisSetsOptions struct {
	*RootOptions
	NoDescription bool
	Family        string
	Role          string
	Substr        string
}

// NewListBasisSetsCommand creates the list-basis-sets command.
func NewListBasisSetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListBasisSetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list-basis-sets",
		Short: "List all available basis sets and descriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListBasisSets(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.NoDescription, "no-description", "n", false, "print only the basis set names")
	cmd.Flags().StringVarP(&opts.Family, "family", "f", "", "limit the list to the specified family")
	cmd.Flags().StringVarP(&opts.Role, "role", "r", "", "limit the list to the specified role")
	cmd.Flags().StringVarP(&opts.Substr, "substr", "s", "", "limit the list to names containing the substring")

	return cmd
}

func runListBasisSets(opts *ListBasisSetsOptions, cmd *cobra.Command) error {
	cat, closer, err := opts.openCatalog()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	md, err := cat.Filter(cmd.Context(), opts.Substr, opts.Family, opts.Role)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing basis sets", err)
	}

	names := md.Names()
	if opts.NoDescription {
		return writeResult(cmd, opts.RootOptions, strings.Join(names, "\n"))
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, md[name].Description})
	}
	return writeResult(cmd, opts.RootOptions, strings.Join(formatColumns(rows, ""), "\n"))
}

// NewListFamiliesCommand creates the list-families command.
func NewListFamiliesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-families",
		Short: "List all available basis set families",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			families, err := cat.Families(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "listing families", err)
			}
			return writeResult(cmd, rootOpts, strings.Join(families, "\n"))
		},
	}
}

// NewListFormatsCommand creates the list-formats command.
func NewListFormatsCommand(rootOpts *RootOptions) *cobra.Command {
	var noDescription bool

	cmd := &cobra.Command{
		Use:   "list-formats",
		Short: "List all available basis set output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, f := range render.Formats() {
				rows = append(rows, []string{f.String(), f.Description()})
			}
			return writeResult(cmd, rootOpts, listing(rows, noDescription))
		},
	}

	cmd.Flags().BoolVarP(&noDescription, "no-description", "n", false, "print only the format names")
	return cmd
}

// NewListRefFormatsCommand creates the list-ref-formats command.
func NewListRefFormatsCommand(rootOpts *RootOptions) *cobra.Command {
	var noDescription bool

	cmd := &cobra.Command{
		Use:   "list-ref-formats",
		Short: "List all available reference output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, f := range refs.RefFormats() {
				rows = append(rows, []string{f.String(), f.Description()})
			}
			return writeResult(cmd, rootOpts, listing(rows, noDescription))
		},
	}

	cmd.Flags().BoolVarP(&noDescription, "no-description", "n", false, "print only the reference format names")
	return cmd
}

// NewListRolesCommand creates the list-roles command.
func NewListRolesCommand(rootOpts *RootOptions) *cobra.Command {
	var noDescription bool

	cmd := &cobra.Command{
		Use:   "list-roles",
		Short: "List all available basis set roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, r := range basis.Roles() {
				rows = append(rows, []string{r.String(), r.Description()})
			}
			return writeResult(cmd, rootOpts, listing(rows, noDescription))
		},
	}

	cmd.Flags().BoolVarP(&noDescription, "no-description", "n", false, "print only the role names")
	return cmd
}

// listing renders name/description rows in the order given, optionally
// dropping the descriptions. Registries define their own display order.
func listing(rows [][]string, noDescription bool) string {
	if noDescription {
		names := make([]string, len(rows))
		for i, row := range rows {
			names[i] = row[0]
		}
		return strings.Join(names, "\n")
	}
	return strings.Join(formatColumns(rows, ""), "\n")
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewGetNotesCommand creates the get-notes command.
func NewGetNotesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-notes <name>",
		Short: "Output the notes for a basis set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			notes, err := cat.BasisNotes(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "get-notes", err)
			}
			return writeResult(cmd, rootOpts, notes)
		},
	}
}

// NewGetFamilyNotesCommand creates the get-family-notes command.
func NewGetFamilyNotesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-family-notes <family>",
		Short: "Output the notes of a family of basis sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			notes, err := cat.FamilyNotes(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "get-family-notes", err)
			}
			return writeResult(cmd, rootOpts, notes)
		},
	}
}

// NewLookupByRoleCommand creates the lookup-by-role command.
func NewLookupByRoleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup-by-role <primary-basis> <role>",
		Short: "Look up an auxiliary basis set by primary basis and role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			aux, err := cat.LookupAuxiliary(cmd.Context(), args[0], args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "lookup-by-role", err)
			}
			return writeResult(cmd, rootOpts, aux)
		},
	}
}

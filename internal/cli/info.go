package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qcforge/basisset/internal/catalog"
	"github.com/qcforge/basisset/internal/element"
)

// NewGetInfoCommand creates the get-info command.
func NewGetInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-info <name>",
		Short: "Output general info and metadata for a basis set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			entry, err := cat.Lookup(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "get-info", err)
			}

			rule := strings.Repeat("-", 80)
			lines := []string{
				rule,
				catalog.NormalizeName(args[0]),
				rule,
				fmt.Sprintf("%16s: %s", "Display Name", entry.DisplayName),
				fmt.Sprintf("%16s: %s", "Description", entry.Description),
				fmt.Sprintf("%16s: %s", "Role", entry.Role),
				fmt.Sprintf("%16s: %s", "Family", entry.Family),
				fmt.Sprintf("%16s: %s", "Latest Version", entry.LatestVersion),
				"",
			}

			if len(entry.Auxiliaries) == 0 {
				lines = append(lines, "Auxiliary Basis Sets: None")
			} else {
				lines = append(lines, "Auxiliary Basis Sets:")
				roles := make([]string, 0, len(entry.Auxiliaries))
				for role := range entry.Auxiliaries {
					roles = append(roles, role)
				}
				sort.Strings(roles)
				rows := make([][]string, 0, len(roles))
				for _, role := range roles {
					rows = append(rows, []string{role, entry.Auxiliaries[role]})
				}
				lines = append(lines, formatColumns(rows, "    ")...)
			}

			lines = append(lines, "", "Versions:")
			rows := make([][]string, 0, len(entry.Versions))
			for _, v := range entry.VersionList() {
				vi := entry.Versions[v]
				rows = append(rows, []string{v, element.CompactKeys(vi.Elements), vi.RevisionDescription})
			}
			lines = append(lines, formatColumns(rows, "    ")...)

			return writeResult(cmd, rootOpts, strings.Join(lines, "\n"))
		},
	}
}

// NewGetVersionsCommand creates the get-versions command.
func NewGetVersionsCommand(rootOpts *RootOptions) *cobra.Command {
	var noDescription bool

	cmd := &cobra.Command{
		Use:   "get-versions <name>",
		Short: "List all available versions of a basis set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			entry, err := cat.Lookup(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "get-versions", err)
			}

			versions := entry.VersionList()
			if noDescription {
				return writeResult(cmd, rootOpts, strings.Join(versions, "\n"))
			}
			rows := make([][]string, 0, len(versions))
			for _, v := range versions {
				rows = append(rows, []string{v, entry.Versions[v].RevisionDescription})
			}
			return writeResult(cmd, rootOpts, strings.Join(formatColumns(rows, ""), "\n"))
		},
	}

	cmd.Flags().BoolVarP(&noDescription, "no-description", "n", false, "print only the version numbers")
	return cmd
}

// NewGetFamilyCommand creates the get-family command.
func NewGetFamilyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-family <name>",
		Short: "Output the family of a basis set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closer, err := rootOpts.openCatalog()
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			entry, err := cat.Lookup(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "get-family", err)
			}
			return writeResult(cmd, rootOpts, entry.Family)
		},
	}
}

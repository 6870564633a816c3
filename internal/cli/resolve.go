package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newModulePathCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "module-path NAME",
		Short: "Print the root directory of a module in the active environment",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := st.app.ModulePath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), root)
			return err
		},
	}
}

func newResolveCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve REF",
		Short: "Print the absolute path a plain path or puppet:/// reference points to",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := st.app.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func newExistsCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "exists REF",
		Short: "Print whether a plain path or puppet:/// reference exists",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := st.app.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(found))
			return err
		},
	}
}

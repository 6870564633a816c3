package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/specialistvlad/modfuncs/internal/registry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newModulesCommand(st *state) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the modules visible in the active environment",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != formatText && output != formatJSON && output != formatYAML {
				return usageError("invalid output format %q: must be 'text', 'json' or 'yaml'", output)
			}
			modules, err := st.app.Modules(cmd.Context())
			if err != nil {
				return err
			}
			return writeModules(cmd.OutOrStdout(), output, modules)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format. Options: 'text', 'json' or 'yaml'.")
	return cmd
}

func writeModules(w io.Writer, format string, modules []*registry.Module) error {
	if modules == nil {
		modules = []*registry.Module{}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(modules)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(modules); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tPATH")
	for _, m := range modules {
		version := "-"
		if m.Metadata != nil && m.Metadata.Version != "" {
			version = m.Metadata.Version
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, version, m.Path)
	}
	return tw.Flush()
}

func newEnvironmentsCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "environments",
		Short: "List the available environments",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := st.app.Environments(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newConfigCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as TOML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := st.app.Settings().TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

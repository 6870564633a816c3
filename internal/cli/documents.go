package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/modfuncs/internal/exprscan"
	"github.com/specialistvlad/modfuncs/internal/hcl"
	"github.com/spf13/cobra"
)

func newEvalCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an HCL expression",
		Long: `Evaluate an HCL expression with module_path(), exists() and the builtin
functions available. Strings, numbers and bools print as plain text, other
values as JSON.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, err := st.app.Eval(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out, err := hcl.FormatValue(val)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newRenderCommand(st *state) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render PATH",
		Short: "Evaluate an HCL document, or every .hcl document in a directory",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marshal, err := documentMarshaler(output)
			if err != nil {
				return err
			}
			docs, err := st.app.Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := marshal(docs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", formatJSON, "Output format. Options: 'json' or 'yaml'.")
	return cmd
}

func newCheckCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH",
		Short: "Parse HCL documents and list the functions and variables they use",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := st.app.Check(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, doc := range docs {
				if err := writeCheck(cmd.OutOrStdout(), doc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeCheck(w io.Writer, doc *hcl.Document) error {
	refs := make([]string, 0)
	for _, t := range doc.Scan.References() {
		refs = append(refs, exprscan.TraversalKey(t))
	}
	_, err := fmt.Fprintf(w, "%s\n  attributes: %s\n  functions: %s\n  references: %s\n",
		doc.Path,
		joinOrNone(doc.Names),
		joinOrNone(doc.Scan.CalledFunctions()),
		joinOrNone(refs),
	)
	return err
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func documentMarshaler(format string) (func([]*hcl.Document) ([]byte, error), error) {
	switch format {
	case formatJSON:
		return hcl.MarshalJSON, nil
	case formatYAML:
		return hcl.MarshalYAML, nil
	default:
		return nil, usageError("invalid output format %q: must be 'json' or 'yaml'", format)
	}
}

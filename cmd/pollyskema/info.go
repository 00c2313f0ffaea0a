package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reoring/pollyskema/jsonx"
	"github.com/reoring/pollyskema/types"
)

func newSchemaCmd() *cobra.Command {
	var indent string
	cmd := &cobra.Command{
		Use:   "schema <model>",
		Short: "Print the JSON Schema of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := types.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown model %q", args[0])
			}
			text, err := jsonx.Dumps(s.JSONSchema(), jsonx.WithIndent(indent))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&indent, "indent", "  ", "indent per level")
	return cmd
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the known models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range types.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newBackendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Show the active JSON backend and why the others were skipped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "active:\t%s\n", jsonx.Mode())
			for _, b := range jsonx.Backends() {
				state := "ready"
				switch {
				case jsonx.Disabled(b, os.LookupEnv):
					state = "disabled by environment"
				case !b.Available():
					state = "not compiled in"
				}
				fmt.Fprintf(w, "%s\t%s\n", b.Name(), state)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/jsonx"
	"github.com/reoring/pollyskema/types"
)

type parseOptions struct {
	model        string
	format       string
	strict       bool
	byAlias      bool
	camel        bool
	skipDefaults bool
	ensureASCII  bool
	indent       string
	include      []string
	exclude      []string
	hash         bool
}

func newParseCmd(root *rootOptions) *cobra.Command {
	o := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Construct a model from a JSON or YAML payload and print it",
		Long: `Reads one object from file (or stdin when omitted or "-"), constructs the
model and prints it as JSON. With --strict every invalid field is reported and
the command fails, whatever the config trusts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runParse(cmd, root, o, path)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.model, "model", "m", "", "model name, see the models command")
	f.StringVar(&o.format, "format", "", "input format: json or yaml (default from extension, else json)")
	f.BoolVar(&o.strict, "strict", false, "reject invalid payloads")
	f.BoolVar(&o.byAlias, "by-alias", false, "emit wire names")
	f.BoolVar(&o.camel, "camel", false, "emit camelCase keys")
	f.BoolVar(&o.skipDefaults, "skip-defaults", false, "omit unset fields holding their default")
	f.BoolVar(&o.ensureASCII, "ensure-ascii", false, "escape non-ASCII characters")
	f.StringVar(&o.indent, "indent", "", "indent per level")
	f.StringSliceVar(&o.include, "include", nil, "only these fields")
	f.StringSliceVar(&o.exclude, "exclude", nil, "drop these fields")
	f.BoolVar(&o.hash, "hash", false, "print the model hash instead")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func runParse(cmd *cobra.Command, root *rootOptions, o *parseOptions, path string) error {
	s, ok := types.Lookup(o.model)
	if !ok {
		return fmt.Errorf("unknown model %q (known: %s)", o.model, strings.Join(types.Names(), ", "))
	}
	raw, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	data, err := decodeObject(raw, inputFormat(o.format, path))
	if err != nil {
		return err
	}

	ctx := context.Background()
	if o.strict {
		ctx = pollyskema.WithClient(ctx, pollyskema.StaticClient{Trust: false})
	} else {
		ctx = pollyskema.WithClient(ctx, root.cfg)
	}
	m, err := pollyskema.Construct(ctx, s, data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.hash {
		_, err = fmt.Fprintf(out, "%016x\n", m.Hash())
		return err
	}
	text, err := m.ToJSON(pollyskema.JSONOpt{
		DictOpt: pollyskema.DictOpt{
			Include:      o.include,
			Exclude:      o.exclude,
			ByAlias:      o.byAlias,
			SkipDefaults: o.skipDefaults,
			UseCamel:     o.camel,
		},
		EnsureASCII: o.ensureASCII,
		Indent:      o.indent,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func inputFormat(flag, path string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func decodeObject(raw []byte, format string) (map[string]any, error) {
	var v any
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		v = yamlNormalize(v)
	case "json":
		var err error
		if v, err = jsonx.LoadsBytes(raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("input must be an object, got %T", v)
	}
	return obj, nil
}

// yamlNormalize turns yaml's map[any]any nodes into map[string]any.
func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = yamlNormalize(t[i])
		}
		return out
	default:
		return v
	}
}

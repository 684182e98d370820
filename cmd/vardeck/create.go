package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vardeck/internal/config"
	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
	"vardeck/internal/form"
)

const (
	outputYAML  = "yaml"
	outputJSON  = "json"
	outputTable = "table"
)

type createFlags struct {
	name    string
	value   string
	tags    []string
	output  string
	timeout time.Duration
}

func newCreateCmd(d deps) *cobra.Command {
	var flags createFlags
	c := &cobra.Command{
		Use:   "create",
		Short: "Create a variable",
		Long: strings.TrimSpace(`
Create a variable without opening the interactive browser. The value must be
JSON; quote it for your shell.

Examples:
  vardeck create --name region --value '"eu-west-1"'
  vardeck create --name limits --value '{"cpu": 2}' --tag prod --tag ops
  vardeck create --name retries --value 3 --output json`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, d, flags)
		},
	}
	c.Flags().StringVarP(&flags.name, "name", "n", "", "Variable name (at least 2 characters)")
	c.Flags().StringVarP(&flags.value, "value", "v", "", "Variable value as JSON")
	c.Flags().StringArrayVarP(&flags.tags, "tag", "t", nil, "Tag to attach (repeatable)")
	c.Flags().StringVarP(&flags.output, "output", "o", "", "Output format: yaml|json (default from config)")
	c.Flags().DurationVar(&flags.timeout, "timeout", 0, "Timeout for the create call (default from config)")
	return c
}

func runCreate(cmd *cobra.Command, d deps, flags createFlags) error {
	format, err := resolveOutput(flags.output, outputYAML, outputJSON)
	if err != nil {
		return err
	}
	client, opts, err := openClient(d)
	if err != nil {
		return err
	}

	dialog := form.NewDialog(true, nil)
	dialog.SetName(flags.name)
	dialog.SetValue(flags.value)
	dialog.SetTags(flags.tags)

	timeout := flags.timeout
	if timeout <= 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout(timeout))
	defer cancel()

	v, outcome := dialog.SubmitAndWait(ctx, client)
	errOut := cmd.ErrOrStderr()
	switch outcome {
	case form.OutcomeCreated:
		return writeVariable(cmd.OutOrStdout(), v, format)
	case form.OutcomeRejected:
		for _, fe := range dialog.Errors().Fields() {
			fmt.Fprintf(errOut, "%s: %s\n", fe.Field, fe.Message)
		}
		return errReported
	default:
		fmt.Fprintf(errOut, "error: %s\n", dialog.Errors().Root())
		return errReported
	}
}

// resolveOutput picks the requested format, falling back to the configured
// one, and checks it against allowed.
func resolveOutput(flag string, allowed ...string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = strings.ToLower(strings.TrimSpace(config.GetString(config.KeyOutputFormat)))
	}
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	if flag == "" {
		return allowed[0], nil
	}
	return "", appErrors.New(appErrors.CodeConfigurationError,
		fmt.Sprintf("Unknown output format %q (expected %s)", flag, strings.Join(allowed, ", ")), nil)
}

func writeVariable(w io.Writer, v domain.Variable, format string) error {
	if format == outputJSON {
		return writeJSON(w, v)
	}
	return writeYAML(w, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML renders v through its JSON form so values keep their JSON types
// (json.Number would otherwise print as a quoted string) and field order.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	blockStyle(&doc)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles a JSON document decodes with.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"vardeck/internal/config"
	"vardeck/internal/domain"
)

const (
	listValueColWidth = 48
	listTagsColWidth  = 32
)

func newListCmd(d deps) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "list",
		Short: "List variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveListOutput(output)
			if err != nil {
				return err
			}
			client, opts, err := openClient(d)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout(opts.Timeout))
			defer cancel()
			vars, err := client.List(ctx)
			if err != nil {
				return err
			}
			switch format {
			case outputJSON:
				if vars == nil {
					vars = []domain.Variable{}
				}
				return writeJSON(cmd.OutOrStdout(), vars)
			case outputYAML:
				if vars == nil {
					vars = []domain.Variable{}
				}
				return writeYAML(cmd.OutOrStdout(), vars)
			default:
				renderTable(cmd.OutOrStdout(), vars)
				return nil
			}
		},
	}
	c.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table|json|yaml")
	return c
}

func resolveListOutput(flag string) (string, error) {
	if strings.TrimSpace(flag) == "" {
		return outputTable, nil
	}
	return resolveOutput(flag, outputTable, outputJSON, outputYAML)
}

// renderTable writes vars as a rounded table, one row per variable.
func renderTable(w io.Writer, vars []domain.Variable) {
	if len(vars) == 0 {
		fmt.Fprintln(w, "No variables.")
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = false
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"Name", "Value", "Tags", "Updated"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: listValueColWidth, WidthMaxEnforcer: text.Trim},
		{Number: 3, WidthMax: listTagsColWidth, WidthMaxEnforcer: text.WrapSoft},
	})
	for _, v := range vars {
		tw.AppendRow(table.Row{v.Name, compactJSON(v.Value), strings.Join(v.Tags, ", "), formatTimestamp(v)})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d variables", len(vars))})
	tw.Render()
}

func compactJSON(v domain.JSONValue) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func formatTimestamp(v domain.Variable) string {
	t := v.Updated
	if t.IsZero() {
		t = v.Created
	}
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

// callTimeout bounds a backend call, defaulting when unset.
func callTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return config.DefaultAPITimeout
	}
	return d
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nerrad567/gray-logic-input/internal/processor"
)

const flagMatch = "match"

func newProcessorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "processors",
		Aliases: []string{"ls"},
		Short:   "List registered processors.",
		Example: `  inputctl processors
  inputctl processors --match '*deadzone*'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pattern, _ := cmd.Flags().GetString(flagMatch)
			return listProcessors(cmd.OutOrStdout(), a.registry, pattern)
		},
	}
	cmd.Flags().String(flagMatch, "", "only list processors whose name matches this glob (case-insensitive)")
	return cmd
}

func listProcessors(w io.Writer, reg *processor.Registry, pattern string) error {
	var match glob.Glob
	if pattern != "" {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return fmt.Errorf("invalid --%s pattern %q: %w", flagMatch, pattern, err)
		}
		match = g
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Value Type", "Parameters", "Description"})
	for _, r := range reg.Registrations() {
		if match != nil && !match.Match(r.Name.Lower()) {
			continue
		}
		t.AppendRow(table.Row{
			r.Name.String(),
			r.ValueType.String(),
			strings.Join(processor.ParamNames(r.New()), ", "),
			r.Doc,
		})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return nil
}

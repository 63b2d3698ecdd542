package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nerrad567/gray-logic-input/internal/control"
	"github.com/nerrad567/gray-logic-input/internal/profile"
)

const flagDescription = "description"

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage stored control profiles.",
	}
	cmd.AddCommand(
		newProfileListCmd(a),
		newProfileSetCmd(a),
		newProfileDeleteCmd(a),
		newProfileApplyCmd(a),
	)
	return cmd
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, done, err := a.openProfiles(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			profiles, err := mgr.List(cmd.Context())
			if err != nil {
				return err
			}
			renderProfiles(cmd.OutOrStdout(), profiles)
			return nil
		},
	}
}

func renderProfiles(w io.Writer, profiles []profile.Profile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Control", "Value Type", "Processors", "Description", "Updated"})
	for _, p := range profiles {
		t.AppendRow(table.Row{
			p.Control,
			p.ValueType,
			p.Processors,
			p.Description,
			p.UpdatedAt.Local().Format(time.DateTime),
		})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}

func newProfileSetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set CONTROL",
		Short: "Create or replace the profile of a control.",
		Example: `  inputctl profile set leftTrigger --type axis --processors 'axisDeadzone, scale(factor=2)'
  inputctl profile set leftStick --type stick --processors 'stickDeadzone(min=0.2)' --description 'left thumbstick'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valueType, _ := cmd.Flags().GetString(flagType)
			processors, _ := cmd.Flags().GetString(flagProcessors)
			description, _ := cmd.Flags().GetString(flagDescription)

			mgr, done, err := a.openProfiles(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			p := &profile.Profile{
				Control:     args[0],
				ValueType:   valueType,
				Processors:  processors,
				Description: description,
			}
			if err := mgr.Set(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved profile %s\n", p.Control)
			return nil
		},
	}

	cmd.Flags().String(flagType, control.ValueTypeAxis, "value type of the control: "+strings.Join(control.ValueTypeNames(), ", "))
	cmd.Flags().String(flagProcessors, "", `processors string, e.g. "scale(factor=2), invert"`)
	cmd.Flags().String(flagDescription, "", "free-form description")
	return cmd
}

func newProfileDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete CONTROL",
		Aliases: []string{"rm"},
		Short:   "Delete the profile of a control.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, done, err := a.openProfiles(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			if err := mgr.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted profile %s\n", args[0])
			return nil
		},
	}
}

func newProfileApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "apply CONTROL VALUE...",
		Short:   "Run values through the processors stored for a control.",
		Example: `  inputctl profile apply leftTrigger 0.05 0.5 1`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, done, err := a.openProfiles(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			p, err := mgr.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ctl, err := p.NewControl()
			if err != nil {
				return err
			}

			out, err := processValues(mgr.Registry(), ctl, p.Processors, args[1:])
			if err != nil {
				return err
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

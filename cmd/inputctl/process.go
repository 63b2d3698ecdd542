package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nerrad567/gray-logic-input/internal/control"
)

const (
	flagType       = "type"
	flagProcessors = "processors"
	flagControl    = "control"
)

func newProcessCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [flags] VALUE...",
		Short: "Run values through a processors string.",
		Long: `Run values through a processors string and print one result per line.

Axis and button values are numbers; stick and vector2 values are written x,y.`,
		Example: `  inputctl process --processors 'axisDeadzone, scale(factor=2)' 0.05 0.5
  inputctl process --type stick --processors 'stickDeadzone(min=0.2)' 0.1,0.1 0.6,0.8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valueType, _ := cmd.Flags().GetString(flagType)
			processors, _ := cmd.Flags().GetString(flagProcessors)
			name, _ := cmd.Flags().GetString(flagControl)

			vt, err := control.ValueTypeByName(valueType)
			if err != nil {
				return fmt.Errorf("--%s must be one of %s: %w",
					flagType, strings.Join(control.ValueTypeNames(), ", "), err)
			}
			ctl, err := control.NewWithType(name, vt)
			if err != nil {
				return err
			}

			out, err := processValues(a.registry, ctl, processors, args)
			if err != nil {
				return err
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().String(flagType, control.ValueTypeAxis, "value type of the control: "+strings.Join(control.ValueTypeNames(), ", "))
	cmd.Flags().String(flagProcessors, "", `processors string, e.g. "scale(factor=2), invert"`)
	cmd.Flags().String(flagControl, "input", "control name passed to processors")
	return cmd
}

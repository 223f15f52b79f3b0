package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wabbex/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of required external tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := make([]string, 0)
			for _, status := range statuses {
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				rows = append(rows, []string{status.Name, status.Command, yesNo(status.Available), detail})
				if !status.Available && !status.Optional {
					missing = append(missing, status.Command)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Found", "Detail"}, rows))
			if len(missing) > 0 {
				printStatus(out, statusFail, "Missing required tools: "+strings.Join(missing, ", "))
				return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
			}
			printStatus(out, statusOK, "All required tools found")
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

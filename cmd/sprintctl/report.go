package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print board analytics as JSON",
	}
	cmd.AddCommand(
		reportVelocityCmd(),
		reportBurndownCmd(),
		reportMetricsCmd(),
		reportWorkloadCmd(),
	)
	return cmd
}

func reportVelocityCmd() *cobra.Command {
	var sprints int
	cmd := &cobra.Command{
		Use:   "velocity [team-id]",
		Short: "Velocity of the last completed sprints of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, func(a *app) (any, error) {
				return a.uc.SprintVelocity(cmd.Context(), args[0], sprints)
			})
		},
	}
	cmd.Flags().IntVarP(&sprints, "sprints", "n", 0, "number of sprints, 0 uses the configured default")
	return cmd
}

func reportBurndownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "burndown [sprint-id]",
		Short: "Ideal and actual burndown of a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, func(a *app) (any, error) {
				return a.uc.SprintBurndown(cmd.Context(), args[0])
			})
		},
	}
}

func reportMetricsCmd() *cobra.Command {
	var window int
	cmd := &cobra.Command{
		Use:   "metrics [team-id]",
		Short: "Lead and cycle time of recently completed tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, func(a *app) (any, error) {
				return a.uc.TaskMetrics(cmd.Context(), args[0], window)
			})
		},
	}
	cmd.Flags().IntVarP(&window, "window-days", "w", 0, "trailing window in days, 0 uses the configured default")
	return cmd
}

func reportWorkloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workload [team-id]",
		Short: "Open work per active team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, func(a *app) (any, error) {
				return a.uc.TeamWorkload(cmd.Context(), args[0])
			})
		},
	}
}

func runReport(cmd *cobra.Command, build func(a *app) (any, error)) error {
	a, closeFn, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := build(a)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), res)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

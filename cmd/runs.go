package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/servicegrid/match-cli/internal/store"
)

var (
	runsJobID string
	runsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded match runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.ListRuns(ctx, store.RunFilter{JobID: runsJobID, Limit: runsLimit})
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
			return nil
		}

		for _, run := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  job=%s  strategy=%s  matches=%d  %dms\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.ID, run.JobID, run.Strategy, run.MatchesFound, run.DurationMS)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the full response of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return err
		}

		var pretty json.RawMessage = []byte(run.Response)
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return eris.Wrap(err, "runs: format response")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsJobID, "job-id", "", "filter runs by job id")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "max runs to list")
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/servicegrid/match-cli/internal/model"
)

var (
	matchStrategy string
	matchTopK     int
	matchRecord   bool
)

var matchCmd = &cobra.Command{
	Use:   "match [request.json]",
	Short: "Match a job against candidate providers",
	Long:  "Reads a match request (job plus candidate providers) from a JSON file or stdin and prints the ranked matches as JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		req, err := readRequest(args)
		if err != nil {
			return err
		}

		eng, err := buildEngine(matchStrategy, matchTopK)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := eng.Match(ctx, *req)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return eris.Wrap(err, "match: encode response")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if matchRecord || cfg.Store.Record {
			topK := cfg.Engine.TopK
			if matchTopK > 0 {
				topK = matchTopK
			}
			if req.TopK != nil {
				topK = *req.TopK
			}
			if err := recordRun(ctx, eng.Strategy(), topK, resp, elapsed); err != nil {
				zap.L().Warn("failed to record run", zap.Error(err))
			}
		}

		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchStrategy, "strategy", "", "scoring strategy (default from config)")
	matchCmd.Flags().IntVar(&matchTopK, "top-k", 0, "max matches to return (default from config)")
	matchCmd.Flags().BoolVar(&matchRecord, "record", false, "persist this run to the history store")
	rootCmd.AddCommand(matchCmd)
}

// readRequest decodes a MatchRequest from the given file, or stdin when no
// argument (or "-") is passed.
func readRequest(args []string) (*model.MatchRequest, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, eris.Wrapf(err, "match: open request file %s", args[0])
		}
		defer f.Close()
		r = f
	}

	var req model.MatchRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return nil, eris.Wrap(err, "match: decode request")
	}
	return &req, nil
}

func recordRun(ctx context.Context, strategy string, topK int, resp *model.MatchResponse, elapsed time.Duration) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	raw, err := json.Marshal(resp)
	if err != nil {
		return eris.Wrap(err, "match: encode run response")
	}

	run := &model.MatchRun{
		JobID:        resp.JobID,
		Strategy:     strategy,
		TopK:         topK,
		MatchesFound: resp.MatchesFound,
		Response:     string(raw),
		DurationMS:   elapsed.Milliseconds(),
	}
	if err := st.SaveRun(ctx, run); err != nil {
		return err
	}

	zap.L().Info("run recorded",
		zap.String("run_id", run.ID),
		zap.String("job_id", run.JobID),
	)
	return nil
}

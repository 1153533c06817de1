package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the active weight profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Engine.Weights.Validate(); err != nil {
			return err
		}

		out, err := json.MarshalIndent(cfg.Engine.Weights, "", "  ")
		if err != nil {
			return eris.Wrap(err, "weights: encode profile")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}

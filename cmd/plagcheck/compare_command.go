package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"plagcheck/internal/compare"
	"plagcheck/internal/config"
	"plagcheck/internal/logging"
	"plagcheck/internal/report"
)

func attachCompare(cmd *cobra.Command, ctx *commandContext) {
	var encoding string
	var explain int

	cmd.Flags().StringVar(&encoding, "encoding", "", "Decode both files with this encoding instead of detecting it")
	cmd.Flags().IntVar(&explain, "explain", 0, "Print the N strongest shared features")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		if enc := strings.TrimSpace(encoding); enc != "" {
			cfg.Decoder.EncodingPolicy = config.EncodingPolicyFixed
			cfg.Decoder.FixedEncoding = strings.ToLower(enc)
		}
		logger, err := ctx.ensureLogger()
		if err != nil {
			return err
		}

		runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())

		pipeline, err := compare.NewFromConfig(cfg, logger)
		if err != nil {
			return err
		}

		originalPath, candidatePath, outputPath := args[0], args[1], args[2]
		result, err := pipeline.CompareFiles(runCtx, originalPath, candidatePath)
		if err != nil {
			return err
		}

		if err := report.WriteScore(outputPath, result.Score); err != nil {
			return err
		}
		logging.WithContext(runCtx, logger).Debug("result written",
			logging.String(logging.FieldPath, outputPath),
			logging.Float64("score", result.Score),
			logging.Bool("short_circuited", result.ShortCircuited),
		)

		out := cmd.OutOrStdout()
		if explain > 0 {
			rows := report.FeatureRows(result.OriginalVec, result.CandidateVec, explain)
			if len(rows) == 0 {
				fmt.Fprintln(out, "No shared features.")
			} else {
				fmt.Fprintln(out, renderTable(
					[]string{"Feature", "Original", "Candidate", "Contribution"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
					shouldDecorate(out),
				))
			}
		}
		fmt.Fprintf(out, "Result written to %s\n", outputPath)
		return nil
	}
}

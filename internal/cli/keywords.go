package cli

import (
	"fmt"

	"resumecheck/internal/common"
	"resumecheck/internal/engine"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [keyword]...",
	Short: "Classify target keywords without running a full check",
	Long: `Classify one or more target keywords using the engine rule tables.
For each keyword the command prints its category, risk level, allowed
repetition frequency, whether evidence is required, and a safer
alternative phrase when one is known.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if keywordsConfig.OutputFormat == "" {
			keywordsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(keywordsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runKeywords,
}

var keywordsConfig common.CommandConfig

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	keywordsCmd.Flags().StringVar(&keywordsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	checker := engine.New(cfg.Engine.Ruleset())
	out := checker.ClassifyKeywords(args)

	logger.Info("Classified keywords", "count", len(out.Classifications))

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(out, keywordsConfig); err != nil {
		return fmt.Errorf("failed to classify keywords: %w", err)
	}
	return nil
}

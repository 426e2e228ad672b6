package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"resumecheck/internal/common"
	"resumecheck/internal/engine"
	"resumecheck/internal/types"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [rewritten-resume-file] [original-resume-file] [job-description-file]",
	Short: "Check a rewritten resume for compliance issues",
	Long: `Check a rewritten resume (markdown) against the original resume it was
produced from and the job description it targets. The command takes three
arguments: the path to the rewritten resume, the path to the original
resume text, and the path to the job description.

Target keywords are passed with --keywords (comma-separated, repeatable)
or --keywords-file (one keyword per line). The report lists hard and soft
issues, a per-keyword justification ledger, and dual ATS/recruiter scores.`,
	Args: cobra.ExactArgs(3),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if checkConfig.OutputFormat == "" {
			checkConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(checkConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCheck,
}

var (
	checkConfig             common.CommandConfig
	checkKeywords           []string
	checkKeywordsFile       string
	checkRemoveRisky        bool
	checkMirroringThreshold float64
)

func init() {
	checkCmd.Flags().StringVarP(&checkConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	checkCmd.Flags().StringVar(&checkConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	checkCmd.Flags().StringSliceVarP(&checkKeywords, "keywords", "k", nil, "Target keywords to audit (comma-separated, repeatable)")
	checkCmd.Flags().StringVar(&checkKeywordsFile, "keywords-file", "", "File with target keywords, one per line")
	checkCmd.Flags().BoolVar(&checkRemoveRisky, "remove-risky", false, "Suggest alternatives for unproven high-risk keywords")
	checkCmd.Flags().Float64Var(&checkMirroringThreshold, "mirroring-threshold", 0, "JD mirroring similarity threshold in (0,1] (default from config)")

	// Add completion for format flag
	_ = checkCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// collectKeywords merges the --keywords flag values with the contents of
// --keywords-file, one keyword per non-blank line
func collectKeywords() ([]string, error) {
	keywords := append([]string{}, checkKeywords...)

	if checkKeywordsFile != "" {
		content, err := os.ReadFile(checkKeywordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read keywords file: %w", err)
		}
		for line := range strings.Lines(string(content)) {
			if kw := strings.TrimSpace(line); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}

	return keywords, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	checker := engine.New(cfg.Engine.Ruleset())

	keywords, err := collectKeywords()
	if err != nil {
		return err
	}

	createInput := func(contents []string) (types.CheckResumeInput, error) {
		if len(contents) != 3 {
			return types.CheckResumeInput{}, fmt.Errorf("expected 3 file paths, got %d", len(contents))
		}
		return types.CheckResumeInput{
			Markdown:            contents[0],
			OriginalResume:      contents[1],
			JobDescription:      contents[2],
			TargetKeywords:      keywords,
			RemoveRiskyKeywords: checkRemoveRisky,
			MirroringThreshold:  checkMirroringThreshold,
		}, nil
	}

	logDetails := func(input types.CheckResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting compliance check",
			"resume_chars", len(input.Markdown),
			"original_resume_chars", len(input.OriginalResume),
			"job_description_chars", len(input.JobDescription),
			"target_keywords", len(input.TargetKeywords),
			"output_format", cfg.OutputFormat)
	}

	checkOperation := func(ctx context.Context, input types.CheckResumeInput) (*types.ResumeComplianceReport, error) {
		return checker.Check(input)
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		checkConfig,
		args,
		createInput,
		checkOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to check resume: %w", err)
	}
	logger.Info("Compliance check completed successfully")
	return nil
}

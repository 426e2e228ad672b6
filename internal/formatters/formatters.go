package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumecheck/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ResumeComplianceReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeComplianceReport", &ReportMarkdownFormatter{})
	registry.RegisterFormatter("text", "ClassifyKeywordsOutput", &KeywordsTextFormatter{})
	registry.RegisterFormatter("markdown", "ClassifyKeywordsOutput", &KeywordsMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ResumeComplianceReport, *types.ResumeComplianceReport:
		return "ResumeComplianceReport"
	case types.ClassifyKeywordsOutput:
		return "ClassifyKeywordsOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asReport(data any) (*types.ResumeComplianceReport, error) {
	switch v := data.(type) {
	case types.ResumeComplianceReport:
		return &v, nil
	case *types.ResumeComplianceReport:
		return v, nil
	default:
		return nil, fmt.Errorf("expected ResumeComplianceReport, got %T", data)
	}
}

// ReportTextFormatter handles text formatting for compliance reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	result, err := asReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("=== RESUME COMPLIANCE REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Verdict: %s\n", result.Scoring.Verdict))
	output.WriteString(fmt.Sprintf("Risk: %s\n", result.Scoring.Risk))
	output.WriteString(fmt.Sprintf("ATS Score: %d/100\n", result.Scoring.ATSScore))
	output.WriteString(fmt.Sprintf("Recruiter Score: %d/100\n\n", result.Scoring.RecruiterScore))
	output.WriteString(result.Scoring.Summary)
	output.WriteString("\n\n")

	if len(result.Issues) > 0 {
		output.WriteString("=== ISSUES ===\n\n")
		for i, issue := range result.Issues {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, strings.ToUpper(string(issue.Severity)), issue.Validator))
			output.WriteString("   ")
			output.WriteString(issue.Message)
			output.WriteString("\n\n")
		}
	} else {
		output.WriteString("No issues found.\n\n")
	}

	if len(result.KeywordJustifications) > 0 {
		output.WriteString("=== KEYWORD JUSTIFICATIONS ===\n\n")
		for _, just := range result.KeywordJustifications {
			output.WriteString(fmt.Sprintf("Keyword: %s\n", just.Keyword))
			output.WriteString(fmt.Sprintf("  Used: %t (%d of %d allowed)\n", just.Used, just.Frequency, just.AllowedFrequency))
			output.WriteString(fmt.Sprintf("  Category: %s, Risk: %s\n", just.Category, just.RiskLevel))
			output.WriteString(fmt.Sprintf("  Justification: %s\n", just.Justification))
			if just.Reason != "" {
				output.WriteString(fmt.Sprintf("  Reason: %s\n", just.Reason))
			}
			if just.AlternativeUsed != "" {
				output.WriteString(fmt.Sprintf("  Suggested alternative: %s\n", just.AlternativeUsed))
			}
			output.WriteString("\n")
		}
	}

	output.WriteString("=== SCORE BREAKDOWN ===\n\n")
	output.WriteString("ATS factors:\n")
	for _, factor := range result.Scoring.ATSFactors {
		output.WriteString(fmt.Sprintf("  %-22s weight %2d  score %3d\n", factor.Factor, factor.Weight, factor.Score))
	}
	output.WriteString("\nRecruiter factors:\n")
	for _, factor := range result.Scoring.RecruiterFactors {
		output.WriteString(fmt.Sprintf("  %-22s weight %2d  score %3d\n", factor.Factor, factor.Weight, factor.Score))
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "ResumeComplianceReport"
}

// ReportMarkdownFormatter handles markdown formatting for compliance reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	result, err := asReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("# Resume Compliance Report\n\n")
	output.WriteString(fmt.Sprintf("**Verdict:** %s\n\n", result.Scoring.Verdict))
	output.WriteString(fmt.Sprintf("**Risk:** %s\n\n", result.Scoring.Risk))
	output.WriteString(fmt.Sprintf("**ATS Score:** %d/100 | **Recruiter Score:** %d/100\n\n", result.Scoring.ATSScore, result.Scoring.RecruiterScore))
	output.WriteString(result.Scoring.Summary)
	output.WriteString("\n\n")

	if len(result.Issues) > 0 {
		output.WriteString("## Issues\n\n")
		for i, issue := range result.Issues {
			output.WriteString(fmt.Sprintf("### %d. %s (%s)\n\n", i+1, issue.Validator, issue.Severity))
			output.WriteString(issue.Message)
			output.WriteString("\n\n")
		}
	} else {
		output.WriteString("## No Issues Found\n\nThe resume passed every compliance check.\n\n")
	}

	if len(result.KeywordJustifications) > 0 {
		output.WriteString("## Keyword Justifications\n\n")
		for _, just := range result.KeywordJustifications {
			output.WriteString(fmt.Sprintf("### %s\n\n", just.Keyword))
			output.WriteString(fmt.Sprintf("**Used:** %t (%d of %d allowed) | **Category:** %s | **Risk:** %s\n\n",
				just.Used, just.Frequency, just.AllowedFrequency, just.Category, just.RiskLevel))
			output.WriteString(just.Justification)
			output.WriteString("\n\n")
			if just.Reason != "" {
				output.WriteString(fmt.Sprintf("**Reason:** %s\n\n", just.Reason))
			}
			if just.AlternativeUsed != "" {
				output.WriteString(fmt.Sprintf("**Suggested alternative:** %s\n\n", just.AlternativeUsed))
			}
		}
	}

	output.WriteString("## Score Breakdown\n\n")
	output.WriteString("### ATS Factors\n\n")
	for _, factor := range result.Scoring.ATSFactors {
		output.WriteString(fmt.Sprintf("- %s: %d (weight %d)\n", factor.Factor, factor.Score, factor.Weight))
	}
	output.WriteString("\n### Recruiter Factors\n\n")
	for _, factor := range result.Scoring.RecruiterFactors {
		output.WriteString(fmt.Sprintf("- %s: %d (weight %d)\n", factor.Factor, factor.Score, factor.Weight))
	}
	output.WriteString("\n")

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "ResumeComplianceReport"
}

// KeywordsTextFormatter handles text formatting for keyword classification results
type KeywordsTextFormatter struct{}

func (ktf *KeywordsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ClassifyKeywordsOutput)
	if !ok {
		return "", fmt.Errorf("expected ClassifyKeywordsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== KEYWORD CLASSIFICATION ===\n\n")
	if len(result.Classifications) == 0 {
		output.WriteString("No keywords provided.\n")
		return output.String(), nil
	}

	for _, kw := range result.Classifications {
		output.WriteString(fmt.Sprintf("Keyword: %s\n", kw.Keyword))
		output.WriteString(fmt.Sprintf("  Category: %s, Risk: %s\n", kw.Category, kw.RiskLevel))
		output.WriteString(fmt.Sprintf("  Allowed frequency: %d, Requires proof: %t\n", kw.AllowedFrequency, kw.RequiresProof))
		if kw.Alternative != "" {
			output.WriteString(fmt.Sprintf("  Safer alternative: %s\n", kw.Alternative))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ktf *KeywordsTextFormatter) SupportedType() string {
	return "ClassifyKeywordsOutput"
}

// KeywordsMarkdownFormatter handles markdown formatting for keyword classification results
type KeywordsMarkdownFormatter struct{}

func (kmf *KeywordsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ClassifyKeywordsOutput)
	if !ok {
		return "", fmt.Errorf("expected ClassifyKeywordsOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Keyword Classification\n\n")
	if len(result.Classifications) == 0 {
		output.WriteString("No keywords provided.\n")
		return output.String(), nil
	}

	for _, kw := range result.Classifications {
		output.WriteString(fmt.Sprintf("## %s\n\n", kw.Keyword))
		output.WriteString(fmt.Sprintf("**Category:** %s | **Risk:** %s\n\n", kw.Category, kw.RiskLevel))
		output.WriteString(fmt.Sprintf("**Allowed frequency:** %d | **Requires proof:** %t\n\n", kw.AllowedFrequency, kw.RequiresProof))
		if kw.Alternative != "" {
			output.WriteString(fmt.Sprintf("**Safer alternative:** %s\n\n", kw.Alternative))
		}
	}

	return output.String(), nil
}

func (kmf *KeywordsMarkdownFormatter) SupportedType() string {
	return "ClassifyKeywordsOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()

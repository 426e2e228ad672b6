package types

// CheckResumeInput represents the input for a compliance check
type CheckResumeInput struct {
	Markdown            string   `json:"markdown"`
	JobDescription      string   `json:"jobDescription"`
	OriginalResume      string   `json:"originalResume"`
	TargetKeywords      []string `json:"targetKeywords"`
	RemoveRiskyKeywords bool     `json:"removeRiskyKeywords,omitempty"`
	MirroringThreshold  float64  `json:"jdMirroringThreshold,omitempty"`
}

// IssueSeverity distinguishes blocking violations from advisory flags
type IssueSeverity string

const (
	SeverityHard IssueSeverity = "hard"
	SeveritySoft IssueSeverity = "soft"
)

// ComplianceIssue represents a single detected quality problem.
// Hard issues mean the document should not be shipped as-is;
// soft issues are advisory.
type ComplianceIssue struct {
	Severity  IssueSeverity  `json:"severity"`
	Validator string         `json:"validator"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

// KeywordCategory classifies what kind of claim a keyword makes
type KeywordCategory string

const (
	CategoryTool       KeywordCategory = "tool"
	CategoryFunctional KeywordCategory = "functional"
	CategoryOutcome    KeywordCategory = "outcome"
	CategoryUnknown    KeywordCategory = "unknown"
)

// RiskLevel grades how likely a keyword is to be an unsupported claim
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// KeywordJustification records how a single target keyword was used
// and whether the original resume substantiates it. Exactly one record
// is produced per deduplicated target keyword.
type KeywordJustification struct {
	Keyword                 string          `json:"keyword"`
	Used                    bool            `json:"used"`
	Category                KeywordCategory `json:"category"`
	RiskLevel               RiskLevel       `json:"riskLevel"`
	AllowedFrequency        int             `json:"allowedFrequency"`
	RequiresProof           bool            `json:"requiresProof"`
	Frequency               int             `json:"frequency"`
	ResumeEvidence          string          `json:"resumeEvidence"`
	JobDescriptionReference string          `json:"jobDescriptionReference"`
	Justification           string          `json:"justification"`
	Reason                  string          `json:"reason,omitempty"`
	AlternativeUsed         string          `json:"alternativeUsed,omitempty"`
}

// ScoreFactor is one weighted component of a composite score
type ScoreFactor struct {
	Factor string `json:"factor"`
	Weight int    `json:"weight"` // 0..100, factor weights sum to 100 per list
	Score  int    `json:"score"`  // 0..100
}

// RiskTier is the overall risk verdict for the document
type RiskTier string

const (
	RiskTierLow    RiskTier = "Low"
	RiskTierMedium RiskTier = "Medium"
	RiskTierHigh   RiskTier = "High"
)

// DualScoringReport holds the two independent composite scores: one
// modeling automated ATS parsing, one modeling a human recruiter read.
type DualScoringReport struct {
	ATSScore         int           `json:"atsScore"`
	RecruiterScore   int           `json:"recruiterScore"`
	ATSFactors       []ScoreFactor `json:"atsFactors"`
	RecruiterFactors []ScoreFactor `json:"recruiterFactors"`
	Verdict          string        `json:"verdict"`
	Risk             RiskTier      `json:"risk"`
	Summary          string        `json:"summary"`
}

// ResumeComplianceReport is the full output of a compliance check
type ResumeComplianceReport struct {
	Issues                []ComplianceIssue      `json:"issues"`
	KeywordJustifications []KeywordJustification `json:"keywordJustifications"`
	Scoring               DualScoringReport      `json:"scoring"`
}

// HardIssueCount returns the number of hard issues in the report
func (r *ResumeComplianceReport) HardIssueCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityHard {
			count++
		}
	}
	return count
}

// KeywordClassification describes how the engine treats one keyword
type KeywordClassification struct {
	Keyword          string          `json:"keyword"`
	Category         KeywordCategory `json:"category"`
	RiskLevel        RiskLevel       `json:"riskLevel"`
	AllowedFrequency int             `json:"allowedFrequency"`
	RequiresProof    bool            `json:"requiresProof"`
	Alternative      string          `json:"alternative,omitempty"`
}

// ClassifyKeywordsOutput represents the output of the keywords command
type ClassifyKeywordsOutput struct {
	Classifications []KeywordClassification `json:"classifications"`
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumecheck/internal/observability"
	"resumecheck/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createCheckHandler wraps the compliance check handler with observability
func (s *Server) createCheckHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumecheck.api")
		ctx, span := tracer.Start(ctx, "api.check")
		defer span.End()

		// Parse request
		var req CheckRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Markdown) == "" {
			err := fmt.Errorf("missing rewritten resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing rewritten resume", "markdown field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.OriginalResume) == "" {
			err := fmt.Errorf("missing original resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing original resume", "originalResume field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Markdown) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("rewritten resume too large: %d chars", len(req.Markdown))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Rewritten resume too large", fmt.Sprintf("markdown exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobDescription) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Markdown)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.Int("request.keyword_count", len(req.TargetKeywords)),
			attribute.String("operation", "check"),
		)

		input := types.CheckResumeInput{
			Markdown:            req.Markdown,
			JobDescription:      req.JobDescription,
			OriginalResume:      req.OriginalResume,
			TargetKeywords:      req.TargetKeywords,
			RemoveRiskyKeywords: req.RemoveRiskyKeywords,
			MirroringThreshold:  req.MirroringThreshold,
		}

		// Track the analysis with observability
		metrics := om.GetMetrics()
		var report *types.ResumeComplianceReport
		err := metrics.TrackAnalysis(ctx, "check", func(ctx context.Context) *observability.AnalysisResult {
			output, checkErr := s.Checker.Check(input)
			report = output
			result := &observability.AnalysisResult{Error: checkErr}
			if checkErr == nil && output != nil {
				result.IssueCount = len(output.Issues)
				result.HardIssueCount = output.HardIssueCount()
				result.ATSScore = output.Scoring.ATSScore
				result.RecruiterScore = output.Scoring.RecruiterScore
			}
			return result
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_checked", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to check resume", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_checked", true, om,
			attribute.Int("issues", len(report.Issues)),
			attribute.Int("hard_issues", report.HardIssueCount()),
			attribute.String("risk", string(report.Scoring.Risk)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.issues", len(report.Issues)),
			attribute.Int("ats.score", report.Scoring.ATSScore),
			attribute.Int("recruiter.score", report.Scoring.RecruiterScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createKeywordsHandler wraps the keyword classification handler with observability
func (s *Server) createKeywordsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumecheck.api")
		ctx, span := tracer.Start(ctx, "api.keywords")
		defer span.End()

		var req KeywordsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.Keywords) == 0 {
			err := fmt.Errorf("missing keywords")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing keywords", "keywords field must contain at least one keyword", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.keyword_count", len(req.Keywords)),
			attribute.String("operation", "keywords"),
		)

		result := s.Checker.ClassifyKeywords(req.Keywords)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "keywords_classified", true, om,
			attribute.Int("classifications", len(result.Classifications)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.classifications", len(result.Classifications)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

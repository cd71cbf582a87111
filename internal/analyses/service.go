// Package analyses orchestrates the full pipeline: resume extraction, job
// posting scraping, generation, and interpretation, plus persistence of
// the results.
package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"jobpilot-backend/internal/extract"
	"jobpilot-backend/internal/interpret"
	"jobpilot-backend/internal/llm"
	"jobpilot-backend/internal/scrape"
	"jobpilot-backend/internal/shared/metrics"
	"jobpilot-backend/internal/shared/telemetry"
)

// minResumeTextLen is the final lenient floor applied after extraction.
const minResumeTextLen = 30

// DocumentExtractor pulls text out of an uploaded PDF.
type DocumentExtractor interface {
	Extract(ctx context.Context, data []byte) extract.Result
}

// JobScraper fetches and cleans a job posting from a URL.
type JobScraper interface {
	Extract(ctx context.Context, rawURL string) (scrape.Content, error)
}

// Service runs analyses end to end.
type Service struct {
	Repo      Repo
	Extractor DocumentExtractor
	Scraper   JobScraper
	LLM       llm.Client
}

// NewService constructs a Service.
func NewService(repo Repo, extractor DocumentExtractor, scraper JobScraper, client llm.Client) *Service {
	return &Service{Repo: repo, Extractor: extractor, Scraper: scraper, LLM: client}
}

// AnalyzeResult is the outcome of a completed analysis.
type AnalyzeResult struct {
	Analysis   Analysis
	Extraction extract.Result
	Job        scrape.Content
	Output     interpret.Output
}

// Analyze extracts the resume, scrapes the job posting, generates the
// analysis text, interprets it, and stores the result.
func (s *Service) Analyze(ctx context.Context, pdfData []byte, jobURL string) (AnalyzeResult, error) {
	started := time.Now()
	metrics.IncAnalysisStarted()

	ext := s.Extractor.Extract(ctx, pdfData)
	if !ext.Success {
		metrics.IncAnalysisFailed()
		telemetry.Warn("analysis.extraction_failed", map[string]any{
			"reason": ext.Validation.Reason,
		})
		return AnalyzeResult{}, ErrExtractionEmpty
	}
	if utf8.RuneCountInString(ext.Text) < minResumeTextLen {
		metrics.IncAnalysisFailed()
		return AnalyzeResult{}, ErrExtractionTooShort
	}
	metrics.IncExtraction(string(ext.Method))
	if !ext.Validation.IsValid {
		// Resumes come in many shapes, so a failed validation only warns.
		telemetry.Warn("analysis.validation_warning", map[string]any{
			"reason":    ext.Validation.Reason,
			"wordCount": ext.Validation.WordCount,
		})
	}

	job, err := s.Scraper.Extract(ctx, jobURL)
	if err != nil {
		metrics.IncAnalysisFailed()
		metrics.IncScrapeFailed()
		switch {
		case errors.Is(err, scrape.ErrContentTooShort):
			return AnalyzeResult{}, fmt.Errorf("%w: %s", ErrJobContentTooShort, jobURL)
		default:
			return AnalyzeResult{}, fmt.Errorf("%w: %s", ErrJobFetchFailed, jobURL)
		}
	}

	prompt := llm.BuildAnalysisPrompt(ext.Text, job.Text)
	raw, err := s.LLM.Generate(ctx, llm.AnalysisRequest(prompt))
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.generation_failed", map[string]any{"error": err.Error()})
		return AnalyzeResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	out := interpret.Interpret(raw, nil)

	now := time.Now().UTC()
	analysis := Analysis{
		ID:          uuid.NewString(),
		JobURL:      jobURL,
		ResumeText:  ext.Text,
		JobText:     job.Text,
		RawOutput:   raw,
		CoverLetter: out.CoverLetterHTML,
		MatchScore:  out.MatchScore,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return AnalyzeResult{}, fmt.Errorf("store analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("analysis.completed", map[string]any{
		"analysisId":       analysis.ID,
		"extractionMethod": string(ext.Method),
		"matchScore":       out.MatchScore,
		"durationMs":       time.Since(started).Milliseconds(),
	})

	return AnalyzeResult{Analysis: analysis, Extraction: ext, Job: job, Output: out}, nil
}

// Get returns a stored analysis with its interpreted view. The cover
// letter reflects later regenerations and edits rather than the original
// generation.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, interpret.Output, error) {
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, interpret.Output{}, err
	}
	out := interpret.Interpret(analysis.RawOutput, nil)
	out.CoverLetterHTML = analysis.CoverLetter
	return analysis, out, nil
}

// RegenerateCoverLetter produces a fresh cover letter for a stored
// analysis using the given options and persists it.
func (s *Service) RegenerateCoverLetter(ctx context.Context, analysisID string, opts llm.CoverLetterOptions) (string, error) {
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return "", err
	}

	prompt := llm.BuildCoverLetterPrompt(analysis.ResumeText, analysis.JobText, opts)
	raw, err := s.LLM.Generate(ctx, llm.CoverLetterRequest(prompt))
	if err != nil {
		telemetry.Error("cover_letter.generation_failed", map[string]any{
			"analysisId": analysisID,
			"error":      err.Error(),
		})
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	rendered := interpret.FormatCoverLetter(raw)
	if err := s.Repo.UpdateCoverLetter(ctx, analysisID, rendered); err != nil {
		return "", err
	}
	telemetry.Info("cover_letter.regenerated", map[string]any{
		"analysisId": analysisID,
		"tone":       opts.Tone,
		"length":     opts.Length,
	})
	return rendered, nil
}

// UpdateCoverLetter stores a manually edited cover letter.
func (s *Service) UpdateCoverLetter(ctx context.Context, analysisID, coverLetter string) error {
	if strings.TrimSpace(coverLetter) == "" {
		return fmt.Errorf("cover letter content is required")
	}
	return s.Repo.UpdateCoverLetter(ctx, analysisID, coverLetter)
}

// Preview extracts text from a PDF without running an analysis.
func (s *Service) Preview(ctx context.Context, pdfData []byte) extract.Result {
	return s.Extractor.Extract(ctx, pdfData)
}

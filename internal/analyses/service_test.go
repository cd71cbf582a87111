package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"jobpilot-backend/internal/extract"
	"jobpilot-backend/internal/llm"
	"jobpilot-backend/internal/scrape"
)

const fakeGeneratedResponse = `MATCH SCORE: 70/100
The resume covers the core requirements well.

STRENGTHS
- Strong backend background

WAYS TO IMPROVE
It is important to add Kubernetes to your skills section.

COVER LETTER:
Dear Hiring Manager,
I am excited to apply for this position.`

type fakeExtractor struct {
	result extract.Result
}

func (f fakeExtractor) Extract(ctx context.Context, data []byte) extract.Result {
	return f.result
}

type fakeScraper struct {
	content scrape.Content
	err     error
}

func (f fakeScraper) Extract(ctx context.Context, rawURL string) (scrape.Content, error) {
	return f.content, f.err
}

type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.prompts = append(f.prompts, req.Prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func successfulExtraction() extract.Result {
	text := "Jane Doe, software engineer with experience in Go, education at a university, skills in distributed systems."
	return extract.Result{
		Success:       true,
		Text:          text,
		Method:        extract.MethodDirect,
		PageCount:     1,
		RawLength:     len(text),
		CleanedLength: len(text),
		Validation:    extract.Validate(text),
	}
}

func newTestService(client llm.Client) (*Service, *MemoryRepo) {
	repo := NewMemoryRepo()
	svc := NewService(repo, fakeExtractor{result: successfulExtraction()}, fakeScraper{
		content: scrape.Content{Text: strings.Repeat("Backend engineer role requiring Go. ", 10)},
	}, client)
	return svc, repo
}

func TestAnalyzeEndToEnd(t *testing.T) {
	client := &fakeLLM{response: fakeGeneratedResponse}
	svc, repo := newTestService(client)

	result, err := svc.Analyze(context.Background(), []byte("%PDF-"), "https://example.com/job")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Output.MatchScore == nil || *result.Output.MatchScore != 70 {
		t.Fatalf("expected score 70, got %v", result.Output.MatchScore)
	}
	highCount := 0
	for _, imp := range result.Output.Improvements {
		if imp.Priority == "high" {
			highCount++
		}
	}
	if highCount != 1 {
		t.Fatalf("expected exactly one high priority improvement, got %+v", result.Output.Improvements)
	}
	if result.Output.CoverLetterHTML == "" || strings.Contains(result.Output.CoverLetterHTML, "Cover") {
		t.Fatalf("unexpected cover letter %q", result.Output.CoverLetterHTML)
	}

	stored, err := repo.GetByID(context.Background(), result.Analysis.ID)
	if err != nil {
		t.Fatalf("stored analysis missing: %v", err)
	}
	if stored.RawOutput != fakeGeneratedResponse {
		t.Fatalf("expected raw output persisted")
	}
	if stored.ResumeText == "" || stored.JobText == "" {
		t.Fatalf("expected source texts persisted for regeneration")
	}

	if len(client.prompts) != 1 || !strings.Contains(client.prompts[0], "Jane Doe") {
		t.Fatalf("expected resume text in prompt")
	}
}

func TestAnalyzeExtractionFailure(t *testing.T) {
	svc := NewService(NewMemoryRepo(), fakeExtractor{result: extract.Result{Success: false, Method: extract.MethodNone}}, fakeScraper{}, &fakeLLM{})

	_, err := svc.Analyze(context.Background(), []byte("bad"), "https://example.com/job")
	if !errors.Is(err, ErrExtractionEmpty) {
		t.Fatalf("expected ErrExtractionEmpty, got %v", err)
	}
}

func TestAnalyzeScrapeFailures(t *testing.T) {
	cases := []struct {
		name    string
		scrape  error
		wantErr error
	}{
		{"fetch failed", fmt.Errorf("%w: status 500", scrape.ErrFetchFailed), ErrJobFetchFailed},
		{"content too short", scrape.ErrContentTooShort, ErrJobContentTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(NewMemoryRepo(), fakeExtractor{result: successfulExtraction()}, fakeScraper{err: tc.scrape}, &fakeLLM{})
			_, err := svc.Analyze(context.Background(), []byte("%PDF-"), "https://example.com/job")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAnalyzeGenerationFailure(t *testing.T) {
	svc, _ := newTestService(&fakeLLM{err: errors.New("provider down")})

	_, err := svc.Analyze(context.Background(), []byte("%PDF-"), "https://example.com/job")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestRegenerateCoverLetter(t *testing.T) {
	client := &fakeLLM{response: fakeGeneratedResponse}
	svc, repo := newTestService(client)

	result, err := svc.Analyze(context.Background(), []byte("%PDF-"), "https://example.com/job")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	client.response = "Dear Team,\nHere is a **fresh** letter."
	rendered, err := svc.RegenerateCoverLetter(context.Background(), result.Analysis.ID, llm.CoverLetterOptions{
		Tone:       "enthusiastic",
		Length:     "short",
		FocusAreas: []string{"technical skills"},
	})
	if err != nil {
		t.Fatalf("RegenerateCoverLetter: %v", err)
	}
	if rendered != "Dear Team,<br>Here is a fresh letter." {
		t.Fatalf("unexpected rendered letter %q", rendered)
	}

	prompt := client.prompts[len(client.prompts)-1]
	for _, want := range []string{
		"enthusiastic, energetic tone",
		"150-200 words",
		"technical skills",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected prompt to contain %q:\n%s", want, prompt)
		}
	}

	stored, err := repo.GetByID(context.Background(), result.Analysis.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CoverLetter != rendered {
		t.Fatalf("expected regenerated letter persisted")
	}
}

func TestRegenerateCoverLetterUnknownID(t *testing.T) {
	svc, _ := newTestService(&fakeLLM{})
	_, err := svc.RegenerateCoverLetter(context.Background(), "missing", llm.CoverLetterOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCoverLetter(t *testing.T) {
	client := &fakeLLM{response: fakeGeneratedResponse}
	svc, repo := newTestService(client)

	result, err := svc.Analyze(context.Background(), []byte("%PDF-"), "https://example.com/job")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	edited := "Dear Team,<br>Edited by hand."
	if err := svc.UpdateCoverLetter(context.Background(), result.Analysis.ID, edited); err != nil {
		t.Fatalf("UpdateCoverLetter: %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), result.Analysis.ID)
	if stored.CoverLetter != edited {
		t.Fatalf("expected edited letter persisted, got %q", stored.CoverLetter)
	}
}

func TestGetOverlaysStoredCoverLetter(t *testing.T) {
	client := &fakeLLM{response: fakeGeneratedResponse}
	svc, _ := newTestService(client)

	result, err := svc.Analyze(context.Background(), []byte("%PDF-"), "https://example.com/job")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	edited := "Dear Team,<br>Edited."
	if err := svc.UpdateCoverLetter(context.Background(), result.Analysis.ID, edited); err != nil {
		t.Fatalf("UpdateCoverLetter: %v", err)
	}

	_, out, err := svc.Get(context.Background(), result.Analysis.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.CoverLetterHTML != edited {
		t.Fatalf("expected edited letter in view, got %q", out.CoverLetterHTML)
	}
	if out.MatchScore == nil || *out.MatchScore != 70 {
		t.Fatalf("expected score reinterpreted from raw output")
	}
}

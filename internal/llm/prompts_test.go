package llm

import (
	"strings"
	"testing"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := BuildAnalysisPrompt("RESUME BODY", "JOB BODY")

	if !strings.Contains(prompt, "RESUME BODY") || !strings.Contains(prompt, "JOB BODY") {
		t.Fatalf("expected inputs substituted:\n%s", prompt)
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("unsubstituted placeholder remains:\n%s", prompt)
	}
	for _, section := range []string{"MATCH SCORE", "STRENGTHS", "WAYS TO IMPROVE", "COVER LETTER"} {
		if !strings.Contains(prompt, section) {
			t.Fatalf("expected section %q in prompt", section)
		}
	}
}

func TestBuildCoverLetterPromptInstructions(t *testing.T) {
	cases := []struct {
		name string
		opts CoverLetterOptions
		want []string
	}{
		{
			name: "defaults",
			opts: CoverLetterOptions{},
			want: []string{"professional, polished tone", "250-300 words"},
		},
		{
			name: "formal short",
			opts: CoverLetterOptions{Tone: "formal", Length: "short"},
			want: []string{"formal, traditional business tone", "150-200 words"},
		},
		{
			name: "conversational long",
			opts: CoverLetterOptions{Tone: "conversational", Length: "long"},
			want: []string{"conversational yet professional tone", "350-400 words"},
		},
		{
			name: "enthusiastic with focus areas",
			opts: CoverLetterOptions{Tone: "enthusiastic", FocusAreas: []string{"leadership", "cloud"}},
			want: []string{"enthusiastic, energetic tone", "Focus particularly on these areas: leadership, cloud."},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildCoverLetterPrompt("resume", "job", tc.opts)
			for _, want := range tc.want {
				if !strings.Contains(prompt, want) {
					t.Fatalf("expected %q in prompt:\n%s", want, prompt)
				}
			}
		})
	}
}

func TestBuildCoverLetterPromptNoFocusLine(t *testing.T) {
	prompt := BuildCoverLetterPrompt("resume", "job", CoverLetterOptions{})
	if strings.Contains(prompt, "Focus particularly") {
		t.Fatalf("expected no focus line without focus areas:\n%s", prompt)
	}
}

func TestRequestDefaults(t *testing.T) {
	analysis := AnalysisRequest("p")
	if analysis.Temperature != 0.7 || analysis.MaxTokens != 2000 {
		t.Fatalf("unexpected analysis settings: %+v", analysis)
	}
	letter := CoverLetterRequest("p")
	if letter.Temperature != 0.8 || letter.MaxTokens != 1000 {
		t.Fatalf("unexpected letter settings: %+v", letter)
	}
}

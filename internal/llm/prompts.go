package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/analyze.txt
	analyzeTemplate string
	//go:embed prompts/cover_letter.txt
	coverLetterTemplate string
)

// CoverLetterOptions shape a regenerated cover letter. Zero values fall
// back to a professional tone and medium length.
type CoverLetterOptions struct {
	Tone       string   `json:"tone"`
	Length     string   `json:"length"`
	FocusAreas []string `json:"focusAreas"`
}

// BuildAnalysisPrompt fills the analysis template with the resume and job
// description.
func BuildAnalysisPrompt(resumeText, jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{RESUME}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)
	return replacer.Replace(analyzeTemplate)
}

// BuildCoverLetterPrompt fills the cover letter template, translating the
// options into an instruction block.
func BuildCoverLetterPrompt(resumeText, jobDescription string, opts CoverLetterOptions) string {
	instructions := []string{
		"- " + toneInstruction(opts.Tone),
		"- " + lengthInstruction(opts.Length),
	}
	if len(opts.FocusAreas) > 0 {
		instructions = append(instructions, "- Focus particularly on these areas: "+strings.Join(opts.FocusAreas, ", ")+".")
	}

	replacer := strings.NewReplacer(
		"{{INSTRUCTIONS}}", strings.Join(instructions, "\n"),
		"{{RESUME}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)
	return replacer.Replace(coverLetterTemplate)
}

func toneInstruction(tone string) string {
	switch tone {
	case "formal":
		return "Use a very formal, traditional business tone."
	case "conversational":
		return "Use a friendly, conversational yet professional tone."
	case "enthusiastic":
		return "Use an enthusiastic, energetic tone that shows excitement."
	default:
		return "Use a professional, polished tone."
	}
}

func lengthInstruction(length string) string {
	switch length {
	case "short":
		return "Keep it concise, around 150-200 words."
	case "long":
		return "Write a detailed cover letter, around 350-400 words."
	default:
		return "Write a medium-length cover letter, around 250-300 words."
	}
}

package analyses

import "time"

// Analysis is a stored resume-to-job analysis. ResumeText and JobText are
// kept so the cover letter can be regenerated without re-extracting.
type Analysis struct {
	ID          string    `json:"id"`
	JobURL      string    `json:"jobUrl"`
	ResumeText  string    `json:"-"`
	JobText     string    `json:"-"`
	RawOutput   string    `json:"-"`
	CoverLetter string    `json:"coverLetterHtml"`
	MatchScore  *int      `json:"matchScore"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

package analyses

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrExtractionEmpty    = errors.New("extraction produced no text")
	ErrExtractionTooShort = errors.New("extracted text too short")
	ErrJobFetchFailed     = errors.New("job posting fetch failed")
	ErrJobContentTooShort = errors.New("job posting content too short")
	ErrGenerationFailed   = errors.New("generation failed")
)

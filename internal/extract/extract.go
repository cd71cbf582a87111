package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"jobpilot-backend/internal/shared/telemetry"
)

// Method identifies which extraction tier produced the text.
type Method string

const (
	MethodDirect Method = "direct"
	MethodOCR    Method = "ocr"
	MethodNone   Method = "none"
)

const (
	// Minimum cleaned lengths for each tier to count as a success. The OCR
	// floor is lower because recognition output is noisier.
	minDirectTextLen = 50
	minOCRTextLen    = 30

	defaultMaxOCRPages    = 2
	defaultOCRPageTimeout = 30 * time.Second
)

// Result reports the outcome of a document extraction attempt. All failure
// is encoded here; Extract never returns an error.
type Result struct {
	Success       bool   `json:"success"`
	Text          string `json:"-"`
	Method        Method `json:"method"`
	PageCount     int    `json:"pageCount"`
	RawLength     int    `json:"rawLength"`
	CleanedLength int    `json:"cleanedLength"`
	Validation    Report `json:"validation"`
}

// PageRenderer rasterizes one document page into an image file under dir.
type PageRenderer interface {
	RenderPage(ctx context.Context, document []byte, page int, dir string) (string, error)
}

// Recognizer runs optical character recognition over a rendered page image.
type Recognizer interface {
	RecognizeFile(ctx context.Context, path string) (string, error)
}

// Extractor pulls text from resume documents using a tiered strategy:
// direct text extraction first, then OCR over rasterized pages.
type Extractor struct {
	Renderer   PageRenderer
	Recognizer Recognizer
	// MaxOCRPages caps how many pages the OCR tier processes. Zero means 2.
	MaxOCRPages int
	// OCRPageTimeout bounds each page's render+recognize step. Zero means 30s.
	OCRPageTimeout time.Duration
}

// NewExtractor builds an Extractor with the default MuPDF renderer and
// Tesseract recognizer.
func NewExtractor(languages []string) *Extractor {
	return &Extractor{
		Renderer:   FitzRenderer{},
		Recognizer: TesseractRecognizer{Languages: languages},
	}
}

// parsePDFText is a seam for tests; production code parses with ledongthuc/pdf.
var parsePDFText = parsePDF

// Extract returns the best text it can pull from the document. Tiers are
// tried in order and the first success wins. Validation is informational
// and never blocks a successful tier.
func (e *Extractor) Extract(ctx context.Context, document []byte) Result {
	tiers := []func(context.Context, []byte) (Result, bool){
		e.directTier,
		e.ocrTier,
	}
	for _, tier := range tiers {
		if res, ok := tier(ctx, document); ok {
			return res
		}
	}
	return Result{
		Success: false,
		Method:  MethodNone,
		Validation: Report{
			IsValid:         false,
			Reason:          "Could not extract text",
			MatchedKeywords: []string{},
		},
	}
}

func (e *Extractor) directTier(ctx context.Context, document []byte) (Result, bool) {
	if err := ctx.Err(); err != nil {
		return Result{}, false
	}
	raw, pages, err := parsePDFText(document)
	if err != nil {
		telemetry.Info("extract.direct_tier_failed", map[string]any{"error": err.Error()})
		return Result{}, false
	}
	cleaned := normalizeWhitespace(raw)
	if len(cleaned) <= minDirectTextLen {
		return Result{}, false
	}
	return Result{
		Success:       true,
		Text:          cleaned,
		Method:        MethodDirect,
		PageCount:     pages,
		RawLength:     len(raw),
		CleanedLength: len(cleaned),
		Validation:    Validate(cleaned),
	}, true
}

func (e *Extractor) ocrTier(ctx context.Context, document []byte) (Result, bool) {
	if e.Renderer == nil || e.Recognizer == nil {
		return Result{}, false
	}

	dir, err := os.MkdirTemp("", "ocr-pages-")
	if err != nil {
		telemetry.Error("extract.ocr_tempdir_failed", map[string]any{"error": err.Error()})
		return Result{}, false
	}
	// Rendered page images are scoped to this call, success or failure.
	defer os.RemoveAll(dir)

	maxPages := e.MaxOCRPages
	if maxPages <= 0 {
		maxPages = defaultMaxOCRPages
	}
	pageTimeout := e.OCRPageTimeout
	if pageTimeout <= 0 {
		pageTimeout = defaultOCRPageTimeout
	}

	var parts []string
	rendered := 0
	for page := 1; page <= maxPages; page++ {
		text, err := e.recognizePage(ctx, document, page, dir, pageTimeout)
		if err != nil {
			// A failed page yields no text but does not abort the tier.
			telemetry.Info("extract.ocr_page_failed", map[string]any{
				"page":  page,
				"error": err.Error(),
			})
			continue
		}
		rendered++
		parts = append(parts, text)
	}

	raw := strings.Join(parts, "\n")
	cleaned := normalizeWhitespace(raw)
	if len(cleaned) <= minOCRTextLen {
		return Result{}, false
	}
	return Result{
		Success:       true,
		Text:          cleaned,
		Method:        MethodOCR,
		PageCount:     rendered,
		RawLength:     len(raw),
		CleanedLength: len(cleaned),
		Validation:    Validate(cleaned),
	}, true
}

func (e *Extractor) recognizePage(ctx context.Context, document []byte, page int, dir string, timeout time.Duration) (string, error) {
	pageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path, err := e.Renderer.RenderPage(pageCtx, document, page, dir)
	if err != nil {
		return "", fmt.Errorf("render page %d: %w", page, err)
	}
	defer os.Remove(path)

	text, err := e.Recognizer.RecognizeFile(pageCtx, path)
	if err != nil {
		return "", fmt.Errorf("recognize page %d: %w", page, err)
	}
	return text, nil
}

// parsePDF extracts embedded text from a PDF. ledongthuc/pdf panics on some
// malformed inputs, so parse failures of any kind are converted to errors.
func parsePDF(document []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return "", 0, err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", 0, err
	}
	return buf.String(), reader.NumPage(), nil
}

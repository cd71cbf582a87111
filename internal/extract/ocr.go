package extract

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

const defaultRenderDPI = 200

// FitzRenderer rasterizes PDF pages with MuPDF via go-fitz.
type FitzRenderer struct {
	// DPI for rasterization. Zero means 200, enough for OCR without
	// producing oversized images.
	DPI float64
}

// RenderPage renders the 1-based page to a PNG file under dir and returns
// its path. The caller owns the file.
func (r FitzRenderer) RenderPage(ctx context.Context, document []byte, page int, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	if page < 1 || page > doc.NumPage() {
		return "", fmt.Errorf("page %d out of range (document has %d)", page, doc.NumPage())
	}

	dpi := r.DPI
	if dpi <= 0 {
		dpi = defaultRenderDPI
	}
	img, err := doc.ImageDPI(page-1, dpi)
	if err != nil {
		return "", fmt.Errorf("rasterize page %d: %w", page, err)
	}

	f, err := os.CreateTemp(dir, fmt.Sprintf("page-%d-*.png", page))
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("encode page %d: %w", page, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// TesseractRecognizer runs OCR through the gosseract Tesseract binding.
type TesseractRecognizer struct {
	Languages []string
}

// RecognizeFile OCRs a single page image. The gosseract call has no context
// support, so it runs in a goroutine and the result is abandoned if the
// context expires first.
func (r TesseractRecognizer) RecognizeFile(ctx context.Context, path string) (string, error) {
	type recognition struct {
		text string
		err  error
	}
	done := make(chan recognition, 1)

	go func() {
		client := gosseract.NewClient()
		defer client.Close()

		if len(r.Languages) > 0 {
			if err := client.SetLanguage(r.Languages...); err != nil {
				done <- recognition{err: fmt.Errorf("set languages: %w", err)}
				return
			}
		}
		if err := client.SetImage(path); err != nil {
			done <- recognition{err: fmt.Errorf("set image: %w", err)}
			return
		}
		text, err := client.Text()
		done <- recognition{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.text, res.err
	}
}

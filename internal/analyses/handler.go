package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpilot-backend/internal/llm"
	"jobpilot-backend/internal/shared/server/respond"
	"jobpilot-backend/internal/shared/telemetry"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// previewTextLen is how much extracted text the preview endpoint echoes back.
const previewTextLen = 500

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/extractions/preview", h.previewExtraction)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.POST("/analyses/:id/cover-letter/regenerate", h.regenerateCoverLetter)
	rg.PUT("/analyses/:id/cover-letter", h.updateCoverLetter)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	jobURL := strings.TrimSpace(c.PostForm("jobUrl"))
	if jobURL == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job URL is required. Please provide a valid job posting URL.", nil)
		return
	}

	data, ok := readUpload(c, "resume")
	if !ok {
		return
	}

	telemetry.Info("analysis.started", map[string]any{
		"jobUrl":    jobURL,
		"sizeBytes": len(data),
	})

	result, err := h.Svc.Analyze(c.Request.Context(), data, jobURL)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"analysisId":        result.Analysis.ID,
		"matchScore":        result.Output.MatchScore,
		"matchAnalysisHtml": result.Output.MatchAnalysisHTML,
		"strengths":         result.Output.Strengths,
		"improvements":      result.Output.Improvements,
		"coverLetterHtml":   result.Output.CoverLetterHTML,
		"extraction": gin.H{
			"method":     result.Extraction.Method,
			"pageCount":  result.Extraction.PageCount,
			"validation": result.Extraction.Validation,
		},
	})
}

func (h *Handler) respondAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrExtractionEmpty):
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "Could not extract text from the PDF. Please try a different file.", nil)
	case errors.Is(err, ErrExtractionTooShort):
		respond.Error(c, http.StatusBadRequest, "extraction_too_short", "The text extracted from your PDF is too short. Please ensure your resume has some readable content.", nil)
	case errors.Is(err, ErrJobFetchFailed):
		respond.Error(c, http.StatusBadGateway, "job_fetch_failed", "Failed to fetch the job description from the provided URL. Check that the URL is accessible, the site is not blocking automated requests, and the posting still exists.", nil)
	case errors.Is(err, ErrJobContentTooShort):
		respond.Error(c, http.StatusUnprocessableEntity, "job_content_too_short", "The job description appears to be too short or incomplete. Please verify the URL points to a complete job posting.", nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "Analysis generation failed. Please try again.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Server error while analyzing your application.", nil)
	}
}

func (h *Handler) previewExtraction(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	data, ok := readUpload(c, "resume")
	if !ok {
		return
	}

	result := h.Svc.Preview(c.Request.Context(), data)
	preview := result.Text
	if len(preview) > previewTextLen {
		preview = preview[:previewTextLen]
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"result":      result,
		"textPreview": preview,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")

	analysis, out, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"id":                analysis.ID,
		"jobUrl":            analysis.JobURL,
		"matchScore":        out.MatchScore,
		"matchAnalysisHtml": out.MatchAnalysisHTML,
		"strengths":         out.Strengths,
		"improvements":      out.Improvements,
		"coverLetterHtml":   out.CoverLetterHTML,
		"createdAt":         analysis.CreatedAt,
		"updatedAt":         analysis.UpdatedAt,
	})
}

func (h *Handler) regenerateCoverLetter(c *gin.Context) {
	analysisID := c.Param("id")

	var opts llm.CoverLetterOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rendered, err := h.Svc.RegenerateCoverLetter(c.Request.Context(), analysisID, opts)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusBadGateway, "generation_failed", "Cover letter generation failed. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to regenerate cover letter", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"analysisId":      analysisID,
		"coverLetterHtml": rendered,
	})
}

func (h *Handler) updateCoverLetter(c *gin.Context) {
	analysisID := c.Param("id")

	var body struct {
		CoverLetter string `json:"coverLetter"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.CoverLetter) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Cover letter content is required.", nil)
		return
	}

	if err := h.Svc.UpdateCoverLetter(c.Request.Context(), analysisID, body.CoverLetter); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save cover letter", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"analysisId":      analysisID,
		"coverLetterHtml": body.CoverLetter,
	})
}

// readUpload pulls the named multipart file into memory, writing the error
// response itself on failure.
func readUpload(c *gin.Context, field string) ([]byte, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No resume file uploaded. Please select a PDF file.", nil)
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Uploaded file could not be processed. Please try uploading again.", nil)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Uploaded file could not be processed. Please try uploading again.", nil)
		return nil, false
	}
	return data, true
}

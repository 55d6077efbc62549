package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/codelens/codelens/internal/models"
)

type analyzeService interface {
	Analyze(ctx context.Context, fileName, source string) (*models.AnalyzeResponse, error)
}

// AnalyzeHandler serves the upload endpoint. A nil service means the API key
// is missing and the feature is disabled.
type AnalyzeHandler struct {
	service        analyzeService
	maxUploadBytes int64
}

func NewAnalyzeHandler(service analyzeService, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Analyze godoc
// @Summary Analyze an uploaded source file
// @Description Accepts one UTF-8 source-code file, runs the LLM analysis and returns the segmented report plus a standalone HTML export.
// @Tags analyze
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Source-code file (UTF-8 text)"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {string} string "bad upload"
// @Failure 502 {string} string "model error"
// @Failure 503 {string} string "feature disabled"
// @Router /api/analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		http.Error(w, "analysis is disabled: OPENAI_API_KEY is not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid upload (limit %d bytes): %s", h.maxUploadBytes, err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read upload: %s", err), http.StatusBadRequest)
		return
	}

	if !utf8.Valid(data) {
		http.Error(w, fmt.Sprintf("%s is not valid UTF-8 text", header.Filename), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Analyze(r.Context(), header.Filename, string(data))
	if err != nil {
		http.Error(w, fmt.Sprintf("analysis failed: %s", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = sonic.ConfigDefault.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode: %s", err), http.StatusInternalServerError)
		return
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

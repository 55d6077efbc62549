package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"

	"github.com/codelens/codelens/internal/config"
	"github.com/codelens/codelens/internal/export"
	"github.com/codelens/codelens/internal/metrics"
	"github.com/codelens/codelens/internal/models"
	"github.com/codelens/codelens/internal/prompt"
	"github.com/codelens/codelens/internal/segment"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// AnalyzeService runs the report pipeline for one upload: cache lookup,
// chat completion, segmentation, export. One synchronous model call per
// request, no retries.
type AnalyzeService struct {
	logger       *log.Logger
	openaiClient openai.Client
	modelName    string
	temperature  float64
	cache        Cache
}

func NewAnalyzeService(logger *log.Logger, openaiClient openai.Client, cfg config.OpenAIConfig) *AnalyzeService {
	return &AnalyzeService{
		logger:       logger,
		openaiClient: openaiClient,
		modelName:    cfg.Model,
		temperature:  cfg.Temperature,
	}
}

func (s *AnalyzeService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// Analyze produces the full report for one uploaded source file. The export
// document is built from the same segment sequence the interactive view
// receives; export failure is reported in the response, never as an error.
func (s *AnalyzeService) Analyze(ctx context.Context, fileName, source string) (*models.AnalyzeResponse, error) {
	start := time.Now()
	language := prompt.Language(fileName)

	raw, err := s.completion(ctx, fileName, source)
	if err != nil {
		metrics.AnalyzeTotal("error", language)
		metrics.AnalyzeDuration("error", language, time.Since(start))
		return nil, err
	}

	segments := segment.Split(raw)

	resp := &models.AnalyzeResponse{
		FileName: fileName,
		Language: language,
		Segments: make([]models.SegmentView, 0, len(segments)),
	}
	for _, seg := range segments {
		view := models.SegmentView{Kind: string(seg.Kind), Text: seg.Text}
		if seg.Kind == segment.Prose {
			html, err := export.RenderMarkdown(seg.Text)
			if err != nil {
				// The page falls back to plain text when HTML is empty.
				s.logger.Printf("prose render failed: %v\n", err)
			} else {
				view.HTML = html
			}
		}
		resp.Segments = append(resp.Segments, view)
	}

	if doc, err := export.Build(segments, fileName); err != nil {
		s.logger.Printf("report export failed: %v\n", err)
		resp.ExportError = err.Error()
	} else {
		resp.ExportHTML = doc
		resp.ExportFileName = export.FileName(fileName)
	}

	metrics.AnalyzeTotal("success", language)
	metrics.AnalyzeDuration("success", language, time.Since(start))
	return resp, nil
}

func (s *AnalyzeService) completion(ctx context.Context, fileName, source string) (string, error) {
	key := s.cacheKey(fileName, source)

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			s.logger.Printf("analysis for %s served from cache\n", fileName)
			return cached, nil
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(s.modelName),
		Messages:    prompt.Messages(fileName, source),
		Temperature: openai.Float(s.temperature),
	}

	resp, err := s.openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	raw := resp.Choices[0].Message.Content

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, raw); err != nil {
			s.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	return raw, nil
}

func (s *AnalyzeService) cacheKey(fileName, source string) string {
	data := fmt.Sprintf("%s|%s|%f|%s", fileName, s.modelName, s.temperature, source)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

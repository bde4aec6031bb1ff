package locator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

// Service identifies places from photos.
type Service interface {
	Identify(ctx context.Context, image staging.UploadedImage) (Response, error)
}

type VisionClient interface {
	CompleteVision(ctx context.Context, image staging.UploadedImage, instruction string) (completion.Completion, error)
}

type service struct {
	cfg    Config
	client VisionClient
	logger *slog.Logger
}

// NewService is a wire provider for the Location Finder section.
func NewService(cfg Config, client VisionClient, logger *slog.Logger) Service {
	return &service{cfg: cfg, client: client, logger: logger.With("component", "locator.service")}
}

func (s *service) Identify(ctx context.Context, image staging.UploadedImage) (Response, error) {
	if image.Size() == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeMissingInput, "no file is uploaded", nil)
	}

	start := time.Now()
	result, err := s.client.CompleteVision(ctx, image, s.cfg.Prompt)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeProvider, "vision request failed", err)
	}
	text := strings.TrimSpace(result.Text)
	if text == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeProvider, "vision model returned no text", nil)
	}
	elapsed := time.Since(start)
	s.logger.Info("location identified", "mime_type", image.MIMEType, "bytes", image.Size(), "model", result.Model, "latency_ms", elapsed.Milliseconds())

	return Response{
		Description: text,
		Filename:    image.Filename,
		Model:       result.Model,
		DurationMs:  elapsed.Milliseconds(),
		TokenUsage:  result.Usage.Ptr(),
	}, nil
}

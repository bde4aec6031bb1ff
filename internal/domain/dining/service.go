package dining

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

// Service recommends restaurants and hotels for a destination.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

type TextClient interface {
	CompleteText(ctx context.Context, instruction, input string) (completion.Completion, error)
}

type service struct {
	cfg    Config
	client TextClient
	logger *slog.Logger
}

// NewService is a wire provider for the Restaurant & Hotel Planner section.
func NewService(cfg Config, client TextClient, logger *slog.Logger) Service {
	return &service{cfg: cfg, client: client, logger: logger.With("component", "dining.service")}
}

// Recommend sends the location as-is; an empty location still reaches the model.
func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	location := staging.StageText(req.Location)

	start := time.Now()
	result, err := s.client.CompleteText(ctx, s.cfg.Prompt, location)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeProvider, "recommendation request failed", err)
	}
	elapsed := time.Since(start)
	s.logger.Info("recommendations generated", "model", result.Model, "latency_ms", elapsed.Milliseconds())

	return Response{
		Recommendations: strings.TrimSpace(result.Text),
		Model:           result.Model,
		DurationMs:      elapsed.Milliseconds(),
		TokenUsage:      result.Usage.Ptr(),
	}, nil
}

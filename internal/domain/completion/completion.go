// Package completion declares the contracts shared by the text and vision providers.
package completion

import (
	"context"

	"github.com/yanqian/trip-planner/internal/domain/staging"
	"github.com/yanqian/trip-planner/pkg/metrics"
)

// Completion is the unstructured text returned by a model, displayed verbatim.
type Completion struct {
	Text  string
	Model string
	Usage metrics.TokenUsage
}

// TextCompleter answers an instruction applied to free-text input.
type TextCompleter interface {
	CompleteText(ctx context.Context, instruction, input string) (Completion, error)
}

// VisionCompleter answers an instruction applied to an image.
type VisionCompleter interface {
	CompleteVision(ctx context.Context, image staging.UploadedImage, instruction string) (Completion, error)
}

// Provider is a model backend able to serve both request kinds.
type Provider interface {
	TextCompleter
	VisionCompleter
	Close() error
}

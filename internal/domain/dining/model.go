package dining

import "github.com/yanqian/trip-planner/pkg/metrics"

// Config holds the fixed Restaurant & Hotel Planner instruction.
type Config struct {
	Prompt string
}

// Request carries the destination to find places for.
type Request struct {
	Location string `json:"location"`
}

// Response is the rendered recommendation text.
type Response struct {
	Recommendations string              `json:"recommendations"`
	Model           string              `json:"model,omitempty"`
	DurationMs      int64               `json:"durationMs"`
	TokenUsage      *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

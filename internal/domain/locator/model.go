package locator

import "github.com/yanqian/trip-planner/pkg/metrics"

// Config holds the fixed Location Finder instruction.
type Config struct {
	Prompt string
}

// Response is the rendered Location Finder result.
type Response struct {
	Description string              `json:"description"`
	Filename    string              `json:"filename,omitempty"`
	Model       string              `json:"model,omitempty"`
	DurationMs  int64               `json:"durationMs"`
	TokenUsage  *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

package metrics

// TokenUsage captures model token counts reported for a completion.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// Ptr returns nil for empty usage so JSON payloads can omit it.
func (u TokenUsage) Ptr() *TokenUsage {
	if u.IsZero() {
		return nil
	}
	return &u
}

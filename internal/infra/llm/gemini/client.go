package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	"github.com/yanqian/trip-planner/pkg/metrics"
)

// Client serves text and vision completions from Google Gemini.
type Client struct {
	client      *genai.Client
	textModel   string
	visionModel string
	temperature float32
	timeout     time.Duration
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, apiKey, textModel, visionModel string, temperature float32, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &Client{
		client:      client,
		textModel:   textModel,
		visionModel: visionModel,
		temperature: temperature,
		timeout:     timeout,
	}, nil
}

// CompleteText sends the instruction followed by the user input.
func (c *Client) CompleteText(ctx context.Context, instruction, input string) (completion.Completion, error) {
	return c.generate(ctx, c.textModel, genai.Text(instruction), genai.Text(input))
}

// CompleteVision sends the image followed by the instruction.
func (c *Client) CompleteVision(ctx context.Context, image staging.UploadedImage, instruction string) (completion.Completion, error) {
	blob := genai.Blob{MIMEType: image.MIMEType, Data: image.Data}
	return c.generate(ctx, c.visionModel, blob, genai.Text(instruction))
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) generate(ctx context.Context, name string, parts ...genai.Part) (completion.Completion, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := c.client.GenerativeModel(name)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return completion.Completion{}, fmt.Errorf("gemini generate: %w", err)
	}
	text, err := responseText(resp)
	if err != nil {
		return completion.Completion{}, err
	}
	return completion.Completion{
		Text:  text,
		Model: name,
		Usage: usageOf(resp),
	}, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func usageOf(resp *genai.GenerateContentResponse) metrics.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return metrics.TokenUsage{}
	}
	return metrics.TokenUsage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
	}
}

package chatgpt

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	"github.com/yanqian/trip-planner/pkg/metrics"
)

// Completer adapts the chat completion API to the section contracts.
type Completer struct {
	client      *Client
	textModel   string
	visionModel string
	temperature float32
}

// NewCompleter binds the model names used for text and vision requests.
func NewCompleter(client *Client, textModel, visionModel string, temperature float32) *Completer {
	return &Completer{
		client:      client,
		textModel:   textModel,
		visionModel: visionModel,
		temperature: temperature,
	}
}

// CompleteText sends the instruction as the system message and the input as the user turn.
func (c *Completer) CompleteText(ctx context.Context, instruction, input string) (completion.Completion, error) {
	return c.complete(ctx, ChatCompletionRequest{
		Model: c.textModel,
		Messages: []Message{
			{Role: "system", Content: instruction},
			{Role: "user", Content: input},
		},
		Temperature: c.temperature,
	})
}

// CompleteVision sends the image followed by the instruction in a single user turn.
func (c *Completer) CompleteVision(ctx context.Context, image staging.UploadedImage, instruction string) (completion.Completion, error) {
	return c.complete(ctx, ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []Message{
			{Role: "user", Parts: []ContentPart{
				ImagePart(dataURL(image)),
				TextPart(instruction),
			}},
		},
		Temperature: c.temperature,
	})
}

// Close is a no-op; the HTTP client holds no long-lived resources.
func (c *Completer) Close() error {
	return nil
}

func (c *Completer) complete(ctx context.Context, req ChatCompletionRequest) (completion.Completion, error) {
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return completion.Completion{}, err
	}
	if len(resp.Choices) == 0 {
		return completion.Completion{}, errors.New("chatgpt returned no choices")
	}
	model := resp.Model
	if model == "" {
		model = req.Model
	}
	return completion.Completion{
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Model: model,
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func dataURL(image staging.UploadedImage) string {
	return "data:" + image.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(image.Data)
}

package locator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
	"github.com/yanqian/trip-planner/pkg/metrics"
)

func TestIdentifySuccess(t *testing.T) {
	client := &stubVisionClient{result: completion.Completion{
		Text:  "  Taj Mahal, Agra, Uttar Pradesh  ",
		Model: "gemini-1.5-flash",
		Usage: metrics.TokenUsage{PromptTokens: 260, CompletionTokens: 40, TotalTokens: 300},
	}}
	svc := NewService(Config{Prompt: "You are an expert Tourist Guide."}, client, newTestLogger())

	image := staging.UploadedImage{Filename: "taj.jpg", MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
	resp, err := svc.Identify(context.Background(), image)
	require.NoError(t, err)
	require.Equal(t, "Taj Mahal, Agra, Uttar Pradesh", resp.Description)
	require.Equal(t, "taj.jpg", resp.Filename)
	require.Equal(t, "gemini-1.5-flash", resp.Model)
	require.NotNil(t, resp.TokenUsage)
	require.Equal(t, 300, resp.TokenUsage.TotalTokens)

	require.Equal(t, 1, client.calls)
	require.Equal(t, "You are an expert Tourist Guide.", client.lastInstruction)
	require.Equal(t, image.MIMEType, client.lastImage.MIMEType)
}

func TestIdentifyRejectsEmptyImageBeforeProviderCall(t *testing.T) {
	client := &stubVisionClient{}
	svc := NewService(Config{Prompt: "guide"}, client, newTestLogger())

	_, err := svc.Identify(context.Background(), staging.UploadedImage{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeMissingInput))
	require.Zero(t, client.calls)
}

func TestIdentifyProviderFailure(t *testing.T) {
	client := &stubVisionClient{err: errors.New("quota exceeded")}
	svc := NewService(Config{Prompt: "guide"}, client, newTestLogger())

	_, err := svc.Identify(context.Background(), staging.UploadedImage{MIMEType: "image/png", Data: []byte{1}})
	require.True(t, apperrors.IsCode(err, apperrors.CodeProvider))
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestIdentifyEmptyCompletion(t *testing.T) {
	client := &stubVisionClient{result: completion.Completion{Text: "   "}}
	svc := NewService(Config{Prompt: "guide"}, client, newTestLogger())

	_, err := svc.Identify(context.Background(), staging.UploadedImage{MIMEType: "image/png", Data: []byte{1}})
	require.True(t, apperrors.IsCode(err, apperrors.CodeProvider))
}

type stubVisionClient struct {
	result          completion.Completion
	err             error
	calls           int
	lastImage       staging.UploadedImage
	lastInstruction string
}

func (s *stubVisionClient) CompleteVision(ctx context.Context, image staging.UploadedImage, instruction string) (completion.Completion, error) {
	s.calls++
	s.lastImage = image
	s.lastInstruction = instruction
	if s.err != nil {
		return completion.Completion{}, s.err
	}
	return s.result, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

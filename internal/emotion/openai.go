package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/spacesedan/emotiflow/internal/models"
)

const openAISystemPrompt = `You are an emotion classifier. Rate how strongly the user's text expresses each of
the emotions anger, disgust, fear, joy and sadness on a scale from 0 to 1.
Answer with a single JSON object with exactly the keys "anger", "disgust", "fear", "joy" and "sadness"
mapped to numbers. If the text cannot be classified answer with {}.`

// ChatCompleter is the slice of the OpenAI client the detector needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIDetector struct {
	client ChatCompleter
	model  string
}

func NewOpenAIDetector(client ChatCompleter, model string) *OpenAIDetector {
	return &OpenAIDetector{client: client, model: model}
}

func (d *OpenAIDetector) Name() string {
	return "openai"
}

// Detect asks the chat model for the five scores. Answers that are not a
// complete set of scores in [0, 1] yield unclassified Scores.
func (d *OpenAIDetector) Detect(ctx context.Context, text string) (Scores, error) {
	start := time.Now()
	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Scores{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		slog.Warn("[OpenAIDetector] Response carried no choices",
			slog.Duration("elapsed", time.Since(start)))
		return Scores{}, nil
	}

	content := resp.Choices[0].Message.Content
	var answer models.OpenAIEmotionResponse
	if err := json.Unmarshal([]byte(cleanOpenAIResponse(content)), &answer); err != nil {
		slog.Warn("[OpenAIDetector] Failed to unmarshal scores",
			slog.String("error", err.Error()),
			slog.String("finish_reason", string(resp.Choices[0].FinishReason)))
		return Scores{}, nil
	}

	values := []*float64{answer.Anger, answer.Disgust, answer.Fear, answer.Joy, answer.Sadness}
	for _, v := range values {
		if v == nil || *v < 0 || *v > 1 {
			slog.Info("[OpenAIDetector] Model did not classify the text",
				slog.Duration("elapsed", time.Since(start)))
			return Scores{}, nil
		}
	}

	return NewScores(*answer.Anger, *answer.Disgust, *answer.Fear, *answer.Joy, *answer.Sadness), nil
}

// cleanOpenAIResponse strips markdown code fences the model sometimes wraps JSON in.
func cleanOpenAIResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}

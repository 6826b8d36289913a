package emotion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spacesedan/emotiflow/internal/clients"
)

type WatsonDetector struct {
	client *clients.WatsonClient
}

func NewWatsonDetector(client *clients.WatsonClient) *WatsonDetector {
	return &WatsonDetector{client: client}
}

func (d *WatsonDetector) Name() string {
	return "watson"
}

// Detect scores text with the first Watson prediction. A rejected document or
// an empty prediction list yields unclassified Scores.
func (d *WatsonDetector) Detect(ctx context.Context, text string) (Scores, error) {
	resp, err := d.client.EmotionPredict(ctx, text)
	if errors.Is(err, clients.ErrInvalidDocument) {
		return Scores{}, nil
	}
	if err != nil {
		return Scores{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if len(resp.EmotionPredictions) == 0 {
		slog.Warn("[WatsonDetector] Response carried no emotion predictions")
		return Scores{}, nil
	}

	e := resp.EmotionPredictions[0].Emotion
	return NewScores(e.Anger, e.Disgust, e.Fear, e.Joy, e.Sadness), nil
}

func (d *WatsonDetector) HealthCheck(ctx context.Context) bool {
	return d.client.HealthCheck(ctx)
}

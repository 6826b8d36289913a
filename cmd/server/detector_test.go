package main

import (
	"context"
	"testing"

	"github.com/spacesedan/emotiflow/config"
	"github.com/spacesedan/emotiflow/internal/clients"
	"github.com/spacesedan/emotiflow/internal/emotion"
	"github.com/stretchr/testify/require"
)

func TestBuildDetector(t *testing.T) {
	req := require.New(t)

	detector, prober, cleanup, err := buildDetector(context.Background(), config.Config{
		Detector:      config.DetectorWatson,
		WatsonURL:     config.DefaultWatsonURL,
		WatsonModelID: config.DefaultWatsonModelID,
	})
	req.NoError(err)
	defer cleanup()
	req.IsType(&emotion.WatsonDetector{}, detector)
	req.Same(detector, prober)

	detector, prober, cleanup, err = buildDetector(context.Background(), config.Config{
		Detector:     config.DetectorOpenAI,
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-4o-mini",
	})
	req.NoError(err)
	defer cleanup()
	req.IsType(&emotion.OpenAIDetector{}, detector)
	req.IsType(&clients.OpenAIClient{}, prober)

	_, _, _, err = buildDetector(context.Background(), config.Config{Detector: "vader"})
	req.Error(err)
}

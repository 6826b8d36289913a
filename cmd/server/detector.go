package main

import (
	"context"
	"fmt"

	"github.com/spacesedan/emotiflow/config"
	"github.com/spacesedan/emotiflow/internal/clients"
	"github.com/spacesedan/emotiflow/internal/emotion"
	"github.com/spacesedan/emotiflow/internal/monitoring"
)

// buildDetector assembles the configured backend, optionally behind the
// Valkey score cache. The returned prober always targets the backend itself.
func buildDetector(ctx context.Context, cfg config.Config) (emotion.Detector, monitoring.Prober, func(), error) {
	var (
		detector emotion.Detector
		prober   monitoring.Prober
	)

	switch cfg.Detector {
	case config.DetectorWatson:
		watson := emotion.NewWatsonDetector(clients.NewWatsonClient(clients.WatsonOptions{
			Endpoint:     cfg.WatsonURL,
			ModelID:      cfg.WatsonModelID,
			Timeout:      cfg.WatsonTimeout,
			ClientID:     cfg.WatsonClientID,
			ClientSecret: cfg.WatsonClientSecret,
			TokenURL:     cfg.WatsonTokenURL,
		}))
		detector, prober = watson, watson
	case config.DetectorOpenAI:
		client := clients.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		detector, prober = emotion.NewOpenAIDetector(client, cfg.OpenAIModel), client
	default:
		return nil, nil, nil, fmt.Errorf("unknown detector %q", cfg.Detector)
	}

	if !cfg.CacheEnabled {
		return detector, prober, func() {}, nil
	}

	valkeyClient, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
		Address:  cfg.ValkeyAddress,
		Password: cfg.ValkeyPassword,
		TLS:      cfg.ValkeyTLS,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return emotion.NewCachedDetector(detector, valkeyClient, cfg.CacheTTL), prober, valkeyClient.Close, nil
}

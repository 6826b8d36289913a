package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/emotiflow/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	// ErrInvalidDocument is returned when Watson rejects the text itself (HTTP 400).
	ErrInvalidDocument = errors.New("watson rejected the document")
	// ErrUnexpectedStatus is returned for any other non 2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected status from watson")
)

type WatsonOptions struct {
	Endpoint string
	ModelID  string
	Timeout  time.Duration

	// Optional client credentials; requests are sent unauthenticated when ClientID is empty.
	ClientID     string
	ClientSecret string
	TokenURL     string
}

type WatsonClient struct {
	Client   *http.Client
	endpoint string
	modelID  string
}

func NewWatsonClient(opts WatsonOptions) *WatsonClient {
	slog.Info("[WatsonClient] Initializing Client",
		slog.String("endpoint", opts.Endpoint),
		slog.String("model_id", opts.ModelID),
		slog.Duration("timeout", opts.Timeout),
		slog.Bool("oauth", opts.ClientID != ""))

	httpClient := &http.Client{Timeout: opts.Timeout}
	if opts.ClientID != "" {
		oauthConf := &clientcredentials.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			TokenURL:     opts.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: opts.Timeout})
		httpClient = oauthConf.Client(tokenCtx)
		httpClient.Timeout = opts.Timeout
	}

	return &WatsonClient{
		Client:   httpClient,
		endpoint: opts.Endpoint,
		modelID:  opts.ModelID,
	}
}

// EmotionPredict sends text to the Watson emotion workflow. The text is sent as is.
func (w *WatsonClient) EmotionPredict(ctx context.Context, text string) (models.WatsonEmotionResponse, error) {
	var result models.WatsonEmotionResponse
	start := time.Now()

	input := models.WatsonEmotionRequest{
		RawDocument: models.WatsonRawDocument{Text: text},
	}
	if err := w.postJSON(ctx, input, &result); err != nil {
		if !errors.Is(err, ErrInvalidDocument) {
			slog.Error("[WatsonClient] Emotion predict request failed",
				slog.Duration("elapsed", time.Since(start)),
				slog.String("error", err.Error()))
		}
		return result, err
	}

	slog.Debug("[WatsonClient] Emotion predict request successful",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("predictions", len(result.EmotionPredictions)))
	return result, nil
}

// HealthCheck reports whether the Watson endpoint answers at all. Anything
// below 500 counts as up since the probe carries no document.
func (w *WatsonClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, w.endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := w.Client.Do(req)
	if err != nil {
		slog.Warn("[WatsonClient] Health check failed",
			slog.String("error", errMsg(err, resp)))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode < http.StatusInternalServerError
}

func (w *WatsonClient) postJSON(ctx context.Context, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set(WATSON_MODEL_ID_HEADER, w.modelID)

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		slog.Info("[WatsonClient] Document rejected",
			getPreview(respBody))
		return ErrInvalidDocument
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		slog.Warn("[WatsonClient] Unexpected response",
			slog.String("endpoint", w.endpoint),
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, errMsg(nil, resp))
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[WatsonClient] Failed to unmarshal response",
			slog.String("endpoint", w.endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}

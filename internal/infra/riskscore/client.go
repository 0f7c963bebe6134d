package riskscore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
)

type predictResponse struct {
	CancelProbability float64 `json:"cancel_probability"`
}

// Client calls the cancellation-risk model. Every failure degrades to a score of 0.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.RiskScorerConfig, logger *slog.Logger) *Client {
	return &Client{
		url:        strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) Predict(ctx context.Context, features commands.RiskFeatures) float64 {
	if c.url == "" {
		return 0
	}

	p, err := c.predict(ctx, features)
	if err != nil {
		c.logger.Warn("risk scoring unavailable", "error", err.Error())
		return 0
	}
	return clamp(p)
}

func (c *Client) predict(ctx context.Context, features commands.RiskFeatures) (float64, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return 0, errs.Wrap(err, "failed to marshal risk features")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, errs.Wrap(err, "failed to create predict request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "predict request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, errs.Newf("predict returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, errs.Wrap(err, "failed to decode predict response")
	}
	return out.CancelProbability, nil
}

func clamp(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

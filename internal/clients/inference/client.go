// Package inference is the client for the hosted text and image models
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder for image responses
	_ "image/png"  // register PNG decoder for image responses
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

//go:generate mockgen -destination=mock/mock_client.go -package=inferencemock github.com/KirkDiggler/card-forge/internal/clients/inference Client

const (
	// DefaultBaseURL is the hosted inference endpoint
	DefaultBaseURL = "https://api-inference.huggingface.co"
	// DefaultTextModel answers naming prompts
	DefaultTextModel = "mistralai/Mistral-7B-Instruct-v0.1"
	// DefaultImageModel draws card artwork
	DefaultImageModel = "levtech/siennatest5"

	defaultMaxAttempts  = 5
	defaultRetryDelay   = 20 * time.Second
	defaultHTTPTimeout  = 2 * time.Minute
	maxNewTokens        = 70
	answerSeparator     = "\n\n"
	maxErrorBodyPreview = 256
)

// Client defines the calls made to the inference API
type Client interface {
	// GenerateText returns the model's completion for prompt
	GenerateText(ctx context.Context, model, prompt string) (string, error)

	// GenerateImage returns the artwork drawn by the image model
	GenerateImage(ctx context.Context, prompt string) (image.Image, error)
}

// Config contains configuration options for the inference client.
type Config struct {
	// Token is the bearer token sent with every request
	Token string
	// BaseURL (optional, defaults to DefaultBaseURL)
	BaseURL string
	// ImageModel (optional, defaults to DefaultImageModel)
	ImageModel string
	// MaxAttempts per call (optional, defaults to 5)
	MaxAttempts int
	// RetryDelay between attempts (optional, defaults to 20 seconds)
	RetryDelay time.Duration
	// HTTPClient (optional, defaults to a client with a two minute timeout)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(cfg.Token) == "" {
		vb.RequiredField("Token")
	}
	if cfg.MaxAttempts < 0 {
		vb.InvalidField("MaxAttempts", "must not be negative")
	}
	if cfg.RetryDelay < 0 {
		vb.InvalidField("RetryDelay", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return nil
}

type client struct {
	token       string
	baseURL     string
	imageModel  string
	maxAttempts int
	retryDelay  time.Duration
	http        *http.Client
}

// New creates a new inference client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		token:       cfg.Token,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		imageModel:  cfg.ImageModel,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		http:        cfg.HTTPClient,
	}, nil
}

type textRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters textParameters `json:"parameters"`
}

type textParameters struct {
	MaxNewTokens   int  `json:"max_new_tokens"`
	ReturnFullText bool `json:"return_full_text"`
}

type imageRequest struct {
	Inputs string `json:"inputs"`
}

type textResult struct {
	GeneratedText string `json:"generated_text"`
}

func (c *client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		return "", errors.InvalidArgument("model is required")
	}

	body, err := c.post(ctx, model, textRequest{
		Inputs:     prompt,
		Parameters: textParameters{MaxNewTokens: maxNewTokens},
	})
	if err != nil {
		return "", err
	}

	var results []textResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", errors.Wrapf(err, "failed to decode text response from %s", model)
	}
	if len(results) == 0 {
		return "", errors.Internalf("empty text response from %s", model)
	}

	return extractAnswer(results[0].GeneratedText), nil
}

func (c *client) GenerateImage(ctx context.Context, prompt string) (image.Image, error) {
	body, err := c.post(ctx, c.imageModel, imageRequest{Inputs: prompt})
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode artwork from %s", c.imageModel)
	}

	return img, nil
}

// post sends payload to the model endpoint, retrying failed attempts
func (c *client) post(ctx context.Context, model string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, model)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, err := c.do(ctx, url, data)
		if err == nil {
			return body, nil
		}
		lastErr = err

		slog.Warn("Inference request failed",
			"model", model,
			"attempt", attempt,
			"max_attempts", c.maxAttempts,
			"error", err)

		if attempt == c.maxAttempts {
			break
		}

		timer := time.NewTimer(c.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeDeadlineExceeded, "inference retry interrupted")
		case <-timer.C:
		}
	}

	return nil, errors.WrapWithCode(lastErr, errors.CodeUnavailable,
		fmt.Sprintf("model %s unavailable after %d attempts", model, c.maxAttempts))
}

func (c *client) do(ctx context.Context, url string, data []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview := string(body)
		if len(preview) > maxErrorBodyPreview {
			preview = preview[:maxErrorBodyPreview]
		}
		return nil, errors.Newf(codeForStatus(resp.StatusCode), "status %d: %s", resp.StatusCode, preview)
	}

	return body, nil
}

func codeForStatus(status int) errors.Code {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.CodeUnauthenticated
	case http.StatusNotFound:
		return errors.CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.CodeInvalidArgument
	default:
		return errors.CodeUnavailable
	}
}

// extractAnswer drops an echoed prompt: when the completion contains a blank
// line the answer starts there
func extractAnswer(text string) string {
	if idx := strings.Index(text, answerSeparator); idx >= 0 {
		text = strings.ReplaceAll(text[idx:], answerSeparator, "")
	}
	return strings.TrimSpace(text)
}

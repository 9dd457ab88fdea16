package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/appengine-ltd/stop-it/internal/game"
	"github.com/appengine-ltd/stop-it/internal/prompt"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.5-flash"
	maxReplyBytes        = 1 << 20

	requestTemplate = `{"contents":[{"parts":[{"text":""}]}]}`
)

var tracer = otel.Tracer("github.com/appengine-ltd/stop-it/internal/ai")

// GeminiConfig configures the generateContent endpoint and HTTP behavior.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxTries   uint
	RetryWait  time.Duration
	Language   prompt.Language
	HTTPClient *http.Client
}

// Gemini asks a Gemini model for themes and verdicts. Each game call is one
// logical request; transport failures and 5xx/429 replies are retried up to
// MaxTries attempts.
type Gemini struct {
	cfg GeminiConfig
}

func NewGemini(cfg GeminiConfig) *Gemini {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 1
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 500 * time.Millisecond
	}
	return &Gemini{cfg: cfg}
}

func (g *Gemini) GenerateThemes(ctx context.Context, letter rune, count int) (string, error) {
	return g.generate(ctx, "themes", prompt.Themes(g.cfg.Language, letter, count))
}

func (g *Gemini) ValidateAnswers(ctx context.Context, letter rune, pairs []game.AnswerPair) (string, error) {
	return g.generate(ctx, "validation", prompt.Validation(g.cfg.Language, letter, pairs))
}

func (g *Gemini) endpoint() string {
	return strings.TrimRight(g.cfg.BaseURL, "/") + "/models/" + url.PathEscape(g.cfg.Model) + ":generateContent"
}

func (g *Gemini) generate(ctx context.Context, kind string, text string) (string, error) {
	ctx, span := tracer.Start(ctx, "ai.generate", trace.WithAttributes(
		attribute.String("ai.model", g.cfg.Model),
		attribute.String("ai.prompt_kind", kind),
	))
	defer span.End()

	if strings.TrimSpace(g.cfg.APIKey) == "" {
		err := errors.New("api key is required")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	body, err := sjson.SetBytes([]byte(requestTemplate), "contents.0.parts.0.text", text)
	if err != nil {
		return "", fmt.Errorf("build request body: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.cfg.RetryWait
	b.MaxInterval = 4 * g.cfg.RetryWait

	attempts := 0
	endpoint := g.endpoint()
	reply, err := backoff.Retry(ctx, func() (string, error) {
		attempts++
		return g.post(ctx, endpoint, body)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(g.cfg.MaxTries))
	span.SetAttributes(attribute.Int("ai.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return "", err
	}
	return reply, nil
}

func (g *Gemini) post(ctx context.Context, endpoint string, body []byte) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels only in this header and never appears in errors.
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	res, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("read generate reply: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := strings.TrimSpace(gjson.GetBytes(payload, "error.message").String())
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		err := fmt.Errorf("generate request status %d: %s", res.StatusCode, msg)
		if retryableStatus(res.StatusCode) {
			return "", err
		}
		return "", backoff.Permanent(err)
	}
	if msg := gjson.GetBytes(payload, "error.message"); msg.Exists() {
		return "", backoff.Permanent(fmt.Errorf("generate error: %s", msg.String()))
	}

	text := gjson.GetBytes(payload, "candidates.0.content.parts.0.text")
	if text.Type != gjson.String {
		return "", backoff.Permanent(errors.New("generate reply has no text"))
	}
	return text.String(), nil
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

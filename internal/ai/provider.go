// Package ai implements the content providers the game asks for themes and
// answer verdicts.
package ai

import (
	"net/http"

	"github.com/appengine-ltd/stop-it/internal/game"
	"github.com/appengine-ltd/stop-it/internal/prompt"
)

// New builds the provider selected by cfg. seed drives the offline provider.
func New(cfg Config, seed int64, client *http.Client) (game.ContentProvider, string, error) {
	name, err := cfg.ResolveProvider()
	if err != nil {
		return nil, "", err
	}
	lang := prompt.ParseLanguage(cfg.Language)
	if name == ProviderOffline {
		return NewOffline(seed, lang), name, nil
	}
	return NewGemini(GeminiConfig{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		MaxTries:   cfg.MaxTries,
		RetryWait:  cfg.RetryWait,
		Language:   lang,
		HTTPClient: client,
	}), name, nil
}

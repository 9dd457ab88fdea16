package ai

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProviderAuto    = "auto"
	ProviderGemini  = "gemini"
	ProviderOffline = "offline"
)

// Config selects and configures the text service. It is filled from the
// environment by the app config.
type Config struct {
	Provider  string        `env:"STOPIT_AI_PROVIDER" envDefault:"auto"`
	APIKey    string        `env:"STOPIT_GEMINI_API_KEY"`
	Model     string        `env:"STOPIT_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	BaseURL   string        `env:"STOPIT_GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout   time.Duration `env:"STOPIT_AI_TIMEOUT" envDefault:"20s"`
	MaxTries  uint          `env:"STOPIT_AI_MAX_TRIES" envDefault:"2"`
	Language  string        `env:"STOPIT_LANGUAGE" envDefault:"en"`
	RetryWait time.Duration `env:"STOPIT_AI_RETRY_WAIT" envDefault:"500ms"`
}

func NormalizeProvider(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ProviderAuto
	}
	return name
}

// ResolveProvider turns "auto" into a concrete provider name: Gemini when an
// API key is configured, offline otherwise.
func (c Config) ResolveProvider() (string, error) {
	switch NormalizeProvider(c.Provider) {
	case ProviderAuto:
		if strings.TrimSpace(c.APIKey) != "" {
			return ProviderGemini, nil
		}
		return ProviderOffline, nil
	case ProviderGemini:
		if strings.TrimSpace(c.APIKey) == "" {
			return "", fmt.Errorf("gemini provider requires STOPIT_GEMINI_API_KEY")
		}
		return ProviderGemini, nil
	case ProviderOffline:
		return ProviderOffline, nil
	default:
		return "", fmt.Errorf("unknown ai provider %q", c.Provider)
	}
}

// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration. All values come from AMY_*
// environment variables (or defaults); OPENAI_API_KEY is honored as the
// conventional fallback for the backend key.
type Config struct {
	Host  string
	Port  int
	Debug bool

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	// LLMTimeoutSeconds bounds a single backend call.
	LLMTimeoutSeconds int

	// KnowledgeFile optionally points at a text blob injected into the
	// backend context; KnowledgeBudget caps it in tokens.
	KnowledgeFile   string
	KnowledgeBudget int

	MaxSessions int
	MaxTurns    int
}

// Load reads configuration from the environment with defaults applied.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("AMY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("debug", false)
	v.SetDefault("llm_api_key", "")
	v.SetDefault("llm_base_url", "")
	v.SetDefault("llm_model", "gpt-4o")
	v.SetDefault("llm_timeout", 20)
	v.SetDefault("knowledge_file", "")
	v.SetDefault("knowledge_budget", 4096)
	v.SetDefault("max_sessions", 512)
	v.SetDefault("max_turns", 50)

	cfg := &Config{
		Host:              v.GetString("host"),
		Port:              v.GetInt("port"),
		Debug:             v.GetBool("debug"),
		LLMAPIKey:         v.GetString("llm_api_key"),
		LLMBaseURL:        v.GetString("llm_base_url"),
		LLMModel:          v.GetString("llm_model"),
		LLMTimeoutSeconds: v.GetInt("llm_timeout"),
		KnowledgeFile:     v.GetString("knowledge_file"),
		KnowledgeBudget:   v.GetInt("knowledge_budget"),
		MaxSessions:       v.GetInt("max_sessions"),
		MaxTurns:          v.GetInt("max_turns"),
	}

	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg
}

// Mode reports how chat requests resolve: "ai" when a generative backend is
// configured, "demo" for pure rule-based resolution.
func (c *Config) Mode() string {
	if c.LLMAPIKey != "" {
		return "ai"
	}
	return "demo"
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is resolved in three layers: built-in defaults, then an
// optional YAML file named by STUDYPDF_CONFIG, then environment
// overrides. Secrets only come from the environment.
type Config struct {
	APIPort  string `yaml:"api_port"`
	LogLevel string `yaml:"log_level"`
	APIKey   string `yaml:"-"`

	GroqAPIKey            string  `yaml:"-"`
	GroqBaseURL           string  `yaml:"groq_base_url"`
	GroqModel             string  `yaml:"groq_model"`
	GroqTimeoutSeconds    int     `yaml:"groq_timeout_seconds"`
	GroqRequestsPerSecond float64 `yaml:"groq_requests_per_second"`
	GroqBurst             int     `yaml:"groq_burst"`

	ChunkSize            int    `yaml:"chunk_size"`
	ChunkOverlap         int    `yaml:"chunk_overlap"`
	MaxContextSize       int    `yaml:"max_context_size"`
	SelectorBackend      string `yaml:"selector_backend"`
	SummaryMaxSections   int    `yaml:"summary_max_sections"`
	AnswerTimeoutSeconds int    `yaml:"answer_timeout_seconds"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
	MaxConcurrent  int     `yaml:"max_concurrent"`
}

func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("STUDYPDF_CONFIG"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIPort:  "8080",
		LogLevel: "info",

		GroqBaseURL:        "https://api.groq.com/openai/v1",
		GroqModel:          "llama-3.1-8b-instant",
		GroqTimeoutSeconds: 120,
		GroqBurst:          1,

		ChunkSize:          1200,
		ChunkOverlap:       200,
		MaxContextSize:     14000,
		SelectorBackend:    "lexical",
		SummaryMaxSections: 5,

		RateLimitRPS:   10,
		RateLimitBurst: 20,
		MaxConcurrent:  32,
	}
}

// applyFile overlays cfg with the keys present in the YAML file. Absent
// keys keep their current values.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.APIPort = mustEnv("API_PORT", cfg.APIPort)
	cfg.LogLevel = mustEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.APIKey = mustEnv("API_KEY", cfg.APIKey)

	cfg.GroqAPIKey = mustEnv("GROQ_API_KEY", cfg.GroqAPIKey)
	cfg.GroqBaseURL = mustEnv("GROQ_BASE_URL", cfg.GroqBaseURL)
	cfg.GroqModel = mustEnv("GROQ_MODEL", cfg.GroqModel)
	cfg.GroqTimeoutSeconds = mustEnvInt("GROQ_TIMEOUT_SECONDS", cfg.GroqTimeoutSeconds)
	cfg.GroqRequestsPerSecond = mustEnvFloat("GROQ_REQUESTS_PER_SECOND", cfg.GroqRequestsPerSecond)
	cfg.GroqBurst = mustEnvInt("GROQ_BURST", cfg.GroqBurst)

	cfg.ChunkSize = mustEnvInt("CHUNK_SIZE", cfg.ChunkSize)
	cfg.ChunkOverlap = mustEnvInt("CHUNK_OVERLAP", cfg.ChunkOverlap)
	cfg.MaxContextSize = mustEnvInt("MAX_CONTEXT_SIZE", cfg.MaxContextSize)
	cfg.SelectorBackend = mustEnv("SELECTOR_BACKEND", cfg.SelectorBackend)
	cfg.SummaryMaxSections = mustEnvInt("SUMMARY_MAX_SECTIONS", cfg.SummaryMaxSections)
	cfg.AnswerTimeoutSeconds = mustEnvInt("ANSWER_TIMEOUT_SECONDS", cfg.AnswerTimeoutSeconds)

	cfg.RateLimitRPS = mustEnvFloat("HTTP_RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = mustEnvInt("HTTP_RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.MaxConcurrent = mustEnvInt("HTTP_MAX_CONCURRENT", cfg.MaxConcurrent)
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	LLM       LLMConfig
	Extractor ExtractorConfig
	Redis     RedisConfig
	Batch     BatchConfig
	Defaults  DefaultsConfig
	ResultTTL time.Duration
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Env   string
	Level string
}

// LLMConfig selects the language-model provider.
// Provider is one of "googleai" (langchaingo), "genai" (Google SDK), "ollama" or "openai".
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	ServerURL   string
	Timeout     time.Duration
	Temperature float64
}

type ExtractorConfig struct {
	WebsiteTimeout     time.Duration
	TranscriptTimeout  time.Duration
	UserAgent          string
	PreferredLanguages []string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type BatchConfig struct {
	Concurrency int
	OutputDir   string
}

type DefaultsConfig struct {
	QuestionCount int
	TimeLimit     int
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 120)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.body_limit_mb", 20)
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("llm.provider", "googleai")
	v.SetDefault("llm.model", "gemini-1.5-flash-latest")
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.timeout", 90)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("extractor.website_timeout", 10)
	v.SetDefault("extractor.transcript_timeout", 30)
	v.SetDefault("extractor.user_agent", defaultUserAgent)
	v.SetDefault("extractor.preferred_languages", []string{"ko", "en"})
	v.SetDefault("redis.db", 0)
	v.SetDefault("result_ttl", "30m")
	v.SetDefault("batch.concurrency", 2)
	v.SetDefault("batch.output_dir", "./out")
	v.SetDefault("defaults.question_count", 5)
	v.SetDefault("defaults.time_limit", 20)
}

// LoadConfig reads config.yaml (optional), a local .env file (optional) and the environment.
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load builds a Config from the given viper instance. Flags bound to v by callers win over file values.
func Load(v *viper.Viper) (*Config, error) {
	// .env is optional; real environment variables take precedence over it.
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	resultTTL, err := parseDuration(v.GetString("result_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid result_ttl: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			ServerURL:   v.GetString("llm.server"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
			Temperature: v.GetFloat64("llm.temperature"),
		},
		Extractor: ExtractorConfig{
			WebsiteTimeout:     time.Duration(v.GetInt("extractor.website_timeout")) * time.Second,
			TranscriptTimeout:  time.Duration(v.GetInt("extractor.transcript_timeout")) * time.Second,
			UserAgent:          v.GetString("extractor.user_agent"),
			PreferredLanguages: v.GetStringSlice("extractor.preferred_languages"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Batch: BatchConfig{
			Concurrency: v.GetInt("batch.concurrency"),
			OutputDir:   v.GetString("batch.output_dir"),
		},
		Defaults: DefaultsConfig{
			QuestionCount: v.GetInt("defaults.question_count"),
			TimeLimit:     v.GetInt("defaults.time_limit"),
		},
		ResultTTL: resultTTL,
	}

	// Override with environment variables if set
	if config.LLM.APIKey == "" {
		config.LLM.APIKey = providerAPIKey(config.LLM.Provider)
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config, nil
}

// providerAPIKey reads the provider's conventional key variable.
func providerAPIKey(provider string) string {
	switch provider {
	case "googleai", "genai":
		return os.Getenv("GEMINI_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

// Validate reports configuration that makes the whole process unusable.
// A missing model credential is fatal at startup, not a per-request error.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "googleai", "genai", "openai":
		if strings.TrimSpace(c.LLM.APIKey) == "" {
			return fmt.Errorf("llm.api_key (or GEMINI_API_KEY) is required for provider %q", c.LLM.Provider)
		}
	case "ollama":
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("llm.server is required for provider ollama")
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Batch.Concurrency < 1 {
		c.Batch.Concurrency = 1
	}
	return nil
}

// parseDuration accepts Go durations ("30m") and bare seconds ("1800").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var secs int
	if _, err := fmt.Sscanf(s, "%d", &secs); err != nil {
		return 0, fmt.Errorf("cannot parse %q as duration", s)
	}
	return time.Duration(secs) * time.Second, nil
}

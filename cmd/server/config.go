package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/card-forge/internal/clients/inference"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/printing"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
	"github.com/KirkDiggler/card-forge/internal/repositories/namecache"
)

const envPrefix = "CARD_FORGE"

// Config keys
const (
	keyConfigFile     = "config"
	keyPort           = "port"
	keyAssetsDir      = "assets_dir"
	keySeed           = "seed"
	keyRandomPolicy   = "random_policy"
	keyAIEnabled      = "ai.enabled"
	keyAIToken        = "ai.token"
	keyAIBaseURL      = "ai.base_url"
	keyAITextModel    = "ai.text_model"
	keyAIImageModel   = "ai.image_model"
	keyAIMaxAttempts  = "ai.max_attempts"
	keyAIRetryDelay   = "ai.retry_delay"
	keyRedisAddr      = "redis.addr"
	keyCacheTTL       = "cache.ttl"
	keyNamesFile      = "names_file"
	keyArtworkTimeout = "artwork_timeout"
)

// Config is the process configuration assembled from flags, env and file
type Config struct {
	Port      int
	AssetsDir string

	// Seed makes generation reproducible; zero rolls dice
	Seed uint64

	RandomPolicy random.Policy

	AI AIConfig

	RedisAddr string
	CacheTTL  time.Duration
	NamesFile string

	ArtworkTimeout time.Duration
}

// AIConfig configures the hosted inference API
type AIConfig struct {
	Enabled     bool
	Token       string
	BaseURL     string
	TextModel   string
	ImageModel  string
	MaxAttempts int
	RetryDelay  time.Duration
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Port <= 0 || c.Port > 65535 {
		vb.Field(keyPort, "must be a valid TCP port")
	}
	if c.AssetsDir == "" {
		vb.RequiredField(keyAssetsDir)
	}
	if c.AI.Enabled && strings.TrimSpace(c.AI.Token) == "" {
		vb.Field(keyAIToken, "is required when ai.enabled is set")
	}
	if c.CacheTTL < 0 {
		vb.InvalidField(keyCacheTTL, "must not be negative")
	}
	if c.ArtworkTimeout < 0 {
		vb.InvalidField(keyArtworkTimeout, "must not be negative")
	}
	return vb.Build()
}

func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(keyConfigFile, "", "config file (yaml, json or toml)")
	flags.Int(keyPort, 50051, "gRPC server port")
	flags.String("assets-dir", "assets", "directory holding templates/, elements/ and fonts/")
	flags.Uint64(keySeed, 0, "seed for reproducible generation (dice are used when unset)")
	flags.String("random-policy", random.PolicyExcludeLast.String(), "random policy: exclude-last or full")
	flags.Bool("ai", false, "enable generated names, descriptions and artwork")
	flags.String("ai-token", "", "inference API token")
	flags.String("ai-base-url", inference.DefaultBaseURL, "inference API base URL")
	flags.String("ai-text-model", inference.DefaultTextModel, "text model for names and descriptions")
	flags.String("ai-image-model", inference.DefaultImageModel, "image model for artwork")
	flags.Int("ai-max-attempts", 5, "attempts per inference call")
	flags.Duration("ai-retry-delay", 20*time.Second, "wait between inference attempts")
	flags.String("redis-addr", "", "redis address for the name cache (in-memory when empty)")
	flags.Duration("cache-ttl", namecache.DefaultTTL, "name cache entry lifetime")
	flags.String("names-file", "", "YAML file overriding the built-in ability names")
	flags.Duration("artwork-timeout", printing.DefaultTimeout, "artwork and render timeout per card")

	for key, flag := range map[string]string{
		keyConfigFile:     keyConfigFile,
		keyPort:           keyPort,
		keyAssetsDir:      "assets-dir",
		keySeed:           keySeed,
		keyRandomPolicy:   "random-policy",
		keyAIEnabled:      "ai",
		keyAIToken:        "ai-token",
		keyAIBaseURL:      "ai-base-url",
		keyAITextModel:    "ai-text-model",
		keyAIImageModel:   "ai-image-model",
		keyAIMaxAttempts:  "ai-max-attempts",
		keyAIRetryDelay:   "ai-retry-delay",
		keyRedisAddr:      "redis-addr",
		keyCacheTTL:       "cache-ttl",
		keyNamesFile:      "names-file",
		keyArtworkTimeout: "artwork-timeout",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// initConfig wires env and the optional config file into viper
func initConfig() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if file := viper.GetString(keyConfigFile); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	return nil
}

// loadConfig reads the resolved configuration out of v
func loadConfig(v *viper.Viper) (*Config, error) {
	policy, err := random.ParsePolicy(v.GetString(keyRandomPolicy))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid random_policy")
	}

	cfg := &Config{
		Port:         v.GetInt(keyPort),
		AssetsDir:    v.GetString(keyAssetsDir),
		Seed:         v.GetUint64(keySeed),
		RandomPolicy: policy,
		AI: AIConfig{
			Enabled:     v.GetBool(keyAIEnabled),
			Token:       v.GetString(keyAIToken),
			BaseURL:     v.GetString(keyAIBaseURL),
			TextModel:   v.GetString(keyAITextModel),
			ImageModel:  v.GetString(keyAIImageModel),
			MaxAttempts: v.GetInt(keyAIMaxAttempts),
			RetryDelay:  v.GetDuration(keyAIRetryDelay),
		},
		RedisAddr:      v.GetString(keyRedisAddr),
		CacheTTL:       v.GetDuration(keyCacheTTL),
		NamesFile:      v.GetString(keyNamesFile),
		ArtworkTimeout: v.GetDuration(keyArtworkTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	cardsorch "github.com/KirkDiggler/card-forge/internal/orchestrators/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	v.Set(keyPort, 50051)
	v.Set(keyAssetsDir, "assets")
	v.Set(keyAIRetryDelay, "20s")
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(newTestViper(nil))
		require.NoError(t, err)
		assert.Equal(t, 50051, cfg.Port)
		assert.Equal(t, random.PolicyExcludeLast, cfg.RandomPolicy)
		assert.False(t, cfg.AI.Enabled)
		assert.Equal(t, 20*time.Second, cfg.AI.RetryDelay)
		assert.Zero(t, cfg.Seed)
	})

	t.Run("full policy and seed", func(t *testing.T) {
		cfg, err := loadConfig(newTestViper(map[string]any{
			keyRandomPolicy: "full",
			keySeed:         42,
		}))
		require.NoError(t, err)
		assert.Equal(t, random.PolicyFullRange, cfg.RandomPolicy)
		assert.Equal(t, uint64(42), cfg.Seed)
	})

	t.Run("ai requires a token", func(t *testing.T) {
		_, err := loadConfig(newTestViper(map[string]any{keyAIEnabled: true}))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := loadConfig(newTestViper(map[string]any{keyRandomPolicy: "sometimes"}))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := loadConfig(newTestViper(map[string]any{keyPort: 0}))
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestCardFileName(t *testing.T) {
	assert.Equal(t, "01_emberling.png", cardFileName(0, "Emberling"))
	assert.Equal(t, "12_unnamed_ability.png", cardFileName(11, " Unnamed Ability "))
	assert.Equal(t, "03_card.png", cardFileName(2, ""))
}

func TestNewAppWithoutAI(t *testing.T) {
	cfg, err := loadConfig(newTestViper(nil))
	require.NoError(t, err)

	application, err := newApp(cfg)
	require.NoError(t, err)
	defer application.Close()

	assert.NotNil(t, application.cards)
	assert.Nil(t, application.printing)
}

func TestNewAppAuditsGeneratedCards(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(previous)

	cfg, err := loadConfig(newTestViper(nil))
	require.NoError(t, err)

	application, err := newApp(cfg)
	require.NoError(t, err)
	defer application.Close()

	out, err := application.cards.GenerateCard(context.Background(), &cardsorch.GenerateCardInput{
		Element: cards.ElementFire,
		Rarity:  cards.RarityUncommon,
	})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `msg="Creature generated"`)
	assert.Contains(t, logs.String(), "card_id="+out.Creature.ID)
}

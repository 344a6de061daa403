package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestShippedGameConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig(), cfg)
}

func TestDefaultGameConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultGameConfig().Validate())
}

func TestLoadGameConfig(t *testing.T) {
	t.Run("部分覆盖保留默认值", func(t *testing.T) {
		path := writeTemp(t, "game.yaml", `
startingLives: 5
spawner:
  mode: budget
`)
		cfg, err := LoadGameConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.StartingLives)
		assert.Equal(t, SpawnerBudget, cfg.Spawner.Mode)
		assert.Equal(t, 400.0, cfg.PlayArea.Width, "untouched fields keep defaults")
		assert.Equal(t, 30, cfg.Spawner.FirstSpawnTime)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("YAML 语法错误", func(t *testing.T) {
		path := writeTemp(t, "broken.yaml", "playArea: [unterminated")
		_, err := LoadGameConfig(path)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
	}{
		{"零宽度", func(c *GameConfig) { c.PlayArea.Width = 0 }},
		{"无初始生命", func(c *GameConfig) { c.StartingLives = 0 }},
		{"阻尼为零", func(c *GameConfig) { c.Player.Drag = 0 }},
		{"阻尼大于一", func(c *GameConfig) { c.Player.Drag = 1.5 }},
		{"未知生成模式", func(c *GameConfig) { c.Spawner.Mode = "random" }},
		{"比例上下限颠倒", func(c *GameConfig) { c.Spawner.Budget.MaxUsageFactor = 0.001 }},
		{"重试上限为零", func(c *GameConfig) { c.Spawner.Budget.RetryLimit = 0 }},
		{"权重全为零", func(c *GameConfig) { c.Spawner.Level.Weights = ArchetypeWeights{} }},
		{"负权重", func(c *GameConfig) { c.Spawner.Level.Weights.Big = -1 }},
		{"子弹间隔颠倒", func(c *GameConfig) { c.Projectile.IntervalMax = 1 }},
		{"道具间隔为零", func(c *GameConfig) { c.Pickup.IntervalMin = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadGameConfigWrapsValidationError(t *testing.T) {
	path := writeTemp(t, "game.yaml", "player:\n  drag: 2\n")
	_, err := LoadGameConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

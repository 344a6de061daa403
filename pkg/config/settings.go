package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
)

// DefaultSettingsPath 默认启动设置文件
const DefaultSettingsPath = "settings.toml"

// Settings 启动设置（settings.toml，可选）
type Settings struct {
	Seed        string          `toml:"seed"`         // 随机种子，空字符串表示使用当前时间
	GameConfig  string          `toml:"game_config"`  // 游戏数值配置路径
	LevelTable  string          `toml:"level_table"`  // 关卡表路径
	SpawnerMode string          `toml:"spawner_mode"` // 覆盖 game.yaml 中的 spawner.mode
	WindowScale int             `toml:"window_scale"` // 窗口放大倍数
	SaveAppName string          `toml:"save_app_name"`
	Logging     LoggingSettings `toml:"logging"`
}

// LoggingSettings 日志设置
type LoggingSettings struct {
	Level  string `toml:"level"`  // debug | info | warn | error
	Format string `toml:"format"` // console | json
}

// DefaultSettings 返回默认启动设置
func DefaultSettings() *Settings {
	return &Settings{
		GameConfig:  DefaultGameConfigPath,
		LevelTable:  DefaultLevelTablePath,
		WindowScale: 2,
		SaveAppName: "scrapshot",
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadSettings 从 TOML 文件加载启动设置
// 文件不存在时返回默认设置
//
// 参数：
//
//	path - 设置文件路径
//
// 返回：
//
//	*Settings - 解析后的设置（未出现的字段保留默认值）
//	error - 如果文件存在但无法读取或解析，返回错误信息
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if settings.SpawnerMode != "" {
		switch SpawnerMode(settings.SpawnerMode) {
		case SpawnerLevel, SpawnerBudget:
		default:
			return nil, fmt.Errorf("%w: unknown spawner_mode %q in %s", ErrInvalidConfig, settings.SpawnerMode, path)
		}
	}
	if settings.WindowScale < 1 {
		settings.WindowScale = 1
	}

	return settings, nil
}

// SeedFromString 将文本种子转换为数值种子
// 纯数字直接解析，其他文本取 xxhash 摘要，保证同一文本得到同一局游戏
func SeedFromString(seed string) uint64 {
	seed = strings.TrimSpace(seed)
	if n, err := strconv.ParseUint(seed, 10, 64); err == nil {
		return n
	}
	return xxhash.Sum64String(seed)
}

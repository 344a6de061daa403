package config

import (
	"fmt"
	"sort"

	"github.com/gonewx/scrapshot/pkg/embedded"
	"github.com/gonewx/scrapshot/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultLevelTablePath 默认嵌入的关卡表
const DefaultLevelTablePath = "data/levels.yaml"

// LevelEntry 手工编排关卡中的一个出生条目
type LevelEntry struct {
	Time int                  `yaml:"time"` // 触发时间（tick）
	Type types.EnemyArchetype `yaml:"type"` // 敌机类型
}

// LevelSchedule 一个手工编排的关卡
type LevelSchedule struct {
	Level     int          `yaml:"level"`
	TotalTime int          `yaml:"totalTime"` // 时间预算（tick）
	Entries   []LevelEntry `yaml:"entries"`
}

// LevelTable 关卡表（data/levels.yaml）
type LevelTable struct {
	Levels []LevelSchedule `yaml:"levels"`
}

// LoadLevelTable 从 YAML 文件加载手工编排的关卡表
// 参数：
//
//	path - 配置文件路径（"data/" 开头时读取嵌入数据）
//
// 返回：
//
//	*LevelTable - 解析后的关卡表
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadLevelTable(path string) (*LevelTable, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level table %s: %w", path, err)
	}

	var table LevelTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse level table YAML from %s: %w", path, err)
	}

	if err := validateLevelTable(&table); err != nil {
		return nil, fmt.Errorf("invalid level table in %s: %w", path, err)
	}

	return &table, nil
}

// validateLevelTable 验证关卡表：关卡编号唯一，条目按时间升序且落在时间预算内
func validateLevelTable(table *LevelTable) error {
	seen := make(map[int]bool, len(table.Levels))
	for _, level := range table.Levels {
		if level.Level < 1 {
			return fmt.Errorf("%w: level number must be at least 1, got %d", ErrInvalidConfig, level.Level)
		}
		if seen[level.Level] {
			return fmt.Errorf("%w: level %d defined twice", ErrInvalidConfig, level.Level)
		}
		seen[level.Level] = true

		if level.TotalTime < 1 {
			return fmt.Errorf("%w: level %d: totalTime must be at least 1, got %d",
				ErrInvalidConfig, level.Level, level.TotalTime)
		}
		sorted := sort.SliceIsSorted(level.Entries, func(i, j int) bool {
			return level.Entries[i].Time < level.Entries[j].Time
		})
		if !sorted {
			return fmt.Errorf("%w: level %d: entries must be sorted by time", ErrInvalidConfig, level.Level)
		}
		for _, entry := range level.Entries {
			if entry.Time < 0 || entry.Time >= level.TotalTime {
				return fmt.Errorf("%w: level %d: entry time %d outside [0, %d)",
					ErrInvalidConfig, level.Level, entry.Time, level.TotalTime)
			}
		}
	}
	return nil
}

// Lookup 返回指定关卡的手工编排，未编排时返回 false
func (t *LevelTable) Lookup(level int) (LevelSchedule, bool) {
	if t == nil {
		return LevelSchedule{}, false
	}
	for _, l := range t.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return LevelSchedule{}, false
}

// DefaultLevelTable 返回与 data/levels.yaml 相同的关卡表
func DefaultLevelTable() *LevelTable {
	small, medium, big := types.EnemySmall, types.EnemyMedium, types.EnemyBig
	return &LevelTable{Levels: []LevelSchedule{
		{Level: 1, TotalTime: 900, Entries: []LevelEntry{
			{30, small}, {180, small}, {330, small}, {480, small}, {630, small},
		}},
		{Level: 2, TotalTime: 1200, Entries: []LevelEntry{
			{30, small}, {150, small}, {270, small}, {390, small},
			{510, medium},
			{690, small}, {780, small}, {870, small}, {960, small},
		}},
		{Level: 3, TotalTime: 1500, Entries: []LevelEntry{
			{30, small}, {120, small}, {210, small}, {300, medium},
			{480, small}, {540, small}, {600, small}, {660, small},
			{780, medium},
			{960, small}, {1020, small}, {1080, small}, {1140, small}, {1200, small},
		}},
		{Level: 4, TotalTime: 1800, Entries: []LevelEntry{
			{30, small}, {90, small}, {150, small}, {210, medium},
			{390, small}, {450, small}, {510, small},
			{600, big},
			{1080, small}, {1140, small}, {1200, medium},
			{1380, small}, {1440, small}, {1500, small}, {1560, small},
		}},
	}}
}

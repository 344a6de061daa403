package game

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	recordObject   = "records"
	recordProperty = "best_run"
)

// RunRecord 一局游戏的成绩
type RunRecord struct {
	RunID            string    `yaml:"runId"`
	Level            int       `yaml:"level"`            // 到达的关卡
	ScrapEarned      int       `yaml:"scrapEarned"`      // 本局累计获得的废料
	EnemiesDestroyed int       `yaml:"enemiesDestroyed"` // 本局击毁的敌机
	FinishedAt       time.Time `yaml:"finishedAt"`
}

// Better 比较成绩：关卡优先，其次废料
func (r RunRecord) Better(other RunRecord) bool {
	if r.Level != other.Level {
		return r.Level > other.Level
	}
	return r.ScrapEarned > other.ScrapEarned
}

// RecordFromState 从模拟上下文生成本局成绩
func RecordFromState(gs *GameState, now time.Time) RunRecord {
	return RunRecord{
		RunID:            gs.RunID.String(),
		Level:            gs.Level,
		ScrapEarned:      gs.Stats.ScrapEarned,
		EnemiesDestroyed: gs.Stats.EnemiesDestroyed,
		FinishedAt:       now,
	}
}

// SaveManager 最佳成绩存档
//
// 职责：
//   - 启动时加载历史最佳成绩
//   - 每局结束（GameOver）时比较并保存
//
// 架构说明：
//   - 数据通过 gdata 跨平台持久化（YAML 格式，与项目其他配置文件保持一致）
//   - gdataManager 为 nil 时进入降级模式，只在内存中记录
//   - 只被外层（app）调用，模拟核心本身没有任何 IO
type SaveManager struct {
	gdataManager *gdata.Manager
	best         *RunRecord
	logger       *zap.Logger
}

// OpenStorage 打开 gdata 存储
//
// 参数：
//   - appName: 应用名，决定存档目录
//
// 返回：
//   - *gdata.Manager: 存储管理器
//   - error: 当前平台无法打开存储时返回错误
func OpenStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save storage %q: %w", appName, err)
	}
	return m, nil
}

// NewSaveManager 创建存档管理器并加载历史最佳成绩
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
//   - logger: 日志器
//
// 返回：
//   - *SaveManager: 存档管理器实例（加载失败时仍可用，只是没有历史成绩）
func NewSaveManager(gdataManager *gdata.Manager, logger *zap.Logger) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		logger:       logger.Named("SaveManager"),
	}
	if err := sm.Load(); err != nil {
		// 存档损坏不是致命错误，忽略历史成绩
		sm.logger.Warn("failed to load best run, starting fresh", zap.Error(err))
	}
	return sm
}

// Load 从 gdata 加载最佳成绩
func (sm *SaveManager) Load() error {
	sm.best = nil
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load best run: %w", err)
	}

	var record RunRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal best run: %w", err)
	}
	sm.best = &record
	sm.logger.Debug("best run loaded", zap.Int("level", record.Level), zap.Int("scrap", record.ScrapEarned))
	return nil
}

// Best 返回历史最佳成绩
func (sm *SaveManager) Best() (RunRecord, bool) {
	if sm.best == nil {
		return RunRecord{}, false
	}
	return *sm.best, true
}

// Submit 提交一局成绩，优于历史最佳时保存
//
// 返回：
//   - bool: 是否刷新了最佳成绩
//   - error: 序列化或保存失败时返回错误（内存中的最佳成绩仍会更新）
func (sm *SaveManager) Submit(record RunRecord) (bool, error) {
	if sm.best != nil && !record.Better(*sm.best) {
		return false, nil
	}
	sm.best = &record
	sm.logger.Info("new best run",
		zap.String("run", record.RunID),
		zap.Int("level", record.Level),
		zap.Int("scrap", record.ScrapEarned))

	if sm.gdataManager == nil {
		return true, nil
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return true, fmt.Errorf("failed to marshal best run: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return true, fmt.Errorf("failed to save best run: %w", err)
	}
	return true, nil
}

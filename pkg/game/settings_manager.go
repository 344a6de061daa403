package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// 窗口放大倍数范围
const (
	MinWindowScale = 1
	MaxWindowScale = 6
)

// DisplaySettings 玩家的显示偏好
// 与 settings.toml 不同，这些值由玩家在游戏中修改并跨启动保留
type DisplaySettings struct {
	Fullscreen  bool `yaml:"fullscreen"`  // 启动时是否全屏
	WindowScale int  `yaml:"windowScale"` // 窗口放大倍数，0 表示使用 settings.toml 的值
}

// SettingsManager 显示偏好管理器
// 负责显示偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     DisplaySettings
	logger       *zap.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建显示偏好管理器并加载已保存的偏好
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - logger: 日志器
//
// 返回：
//   - *SettingsManager: 管理器实例（加载失败时使用默认偏好）
func NewSettingsManager(gdataManager *gdata.Manager, logger *zap.Logger) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		logger:       logger.Named("SettingsManager"),
	}
	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load display settings, using defaults", zap.Error(err))
	}
	return sm
}

// Load 从 gdata 加载显示偏好
// 数据不存在或无法解析时恢复默认偏好
func (sm *SettingsManager) Load() error {
	sm.settings = DisplaySettings{}
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load display settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal display settings: %w", err)
	}
	if loaded.WindowScale != 0 {
		loaded.WindowScale = clampWindowScale(loaded.WindowScale)
	}
	sm.settings = loaded
	return nil
}

// Save 保存显示偏好到 gdata
// gdataManager 为 nil 时不报错（降级模式）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal display settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save display settings: %w", err)
	}
	sm.logger.Debug("display settings saved",
		zap.Bool("fullscreen", sm.settings.Fullscreen),
		zap.Int("windowScale", sm.settings.WindowScale))
	return nil
}

// Settings 返回当前显示偏好
func (sm *SettingsManager) Settings() DisplaySettings {
	return sm.settings
}

// SetFullscreen 设置全屏偏好（需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowScale 设置窗口放大倍数（需调用 Save 持久化）
// 超出范围的值被限制在 [MinWindowScale, MaxWindowScale]
func (sm *SettingsManager) SetWindowScale(scale int) {
	sm.settings.WindowScale = clampWindowScale(scale)
}

// WindowScale 返回生效的窗口放大倍数：已保存的偏好优先，否则使用 fallback
func (sm *SettingsManager) WindowScale(fallback int) int {
	if sm.settings.WindowScale != 0 {
		return sm.settings.WindowScale
	}
	return clampWindowScale(fallback)
}

func clampWindowScale(scale int) int {
	return min(max(scale, MinWindowScale), MaxWindowScale)
}

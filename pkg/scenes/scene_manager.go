package scenes

import (
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneManager 按当前阶段选择要绘制的场景
// 同一时刻只绘制一个场景；没有为某个阶段注册场景时使用 fallback
type SceneManager struct {
	scenes   map[game.Phase]Scene
	fallback Scene
	current  game.Phase
	started  bool
	logger   *zap.Logger
}

// NewSceneManager 创建场景管理器
//
// 参数:
//   - fallback: 未注册阶段使用的场景，可为 nil（不绘制）
//   - logger: 日志
func NewSceneManager(fallback Scene, logger *zap.Logger) *SceneManager {
	return &SceneManager{
		scenes:   make(map[game.Phase]Scene),
		fallback: fallback,
		logger:   logger.Named("SceneManager"),
	}
}

// Register 为一个或多个阶段注册场景
func (sm *SceneManager) Register(scene Scene, phases ...game.Phase) {
	for _, p := range phases {
		sm.scenes[p] = scene
	}
}

// SceneFor 返回阶段对应的场景
func (sm *SceneManager) SceneFor(p game.Phase) Scene {
	if scene, ok := sm.scenes[p]; ok {
		return scene
	}
	return sm.fallback
}

// Draw 绘制当前阶段的场景
func (sm *SceneManager) Draw(screen *ebiten.Image, frame Frame) {
	phase := frame.HUD.Phase
	if !sm.started || phase != sm.current {
		sm.logger.Debug("scene switched",
			zap.Stringer("from", sm.current),
			zap.Stringer("to", phase))
		sm.current = phase
		sm.started = true
	}

	if scene := sm.SceneFor(phase); scene != nil {
		scene.Draw(screen, frame)
	}
}

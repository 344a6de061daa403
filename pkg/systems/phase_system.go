package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// PhaseSystem 阶段状态机的条件判断
//
// 在每个 tick 的 Flush 之后运行，只提出切换请求，由模拟驱动器在下一个 tick 开始时应用：
//   - Menu / GameOver：开始键或点击 → Initialize
//   - Play / WaitingForLastEnemy：生命耗尽 → GameOver（优先）
//   - Play：关卡发射器没有剩余条目 → WaitingForLastEnemy
//   - WaitingForLastEnemy：场上没有敌机 → Setup
type PhaseSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewPhaseSystem 创建阶段系统
func NewPhaseSystem(em *ecs.EntityManager, logger *zap.Logger) *PhaseSystem {
	return &PhaseSystem{
		em:     em,
		logger: logger.Named("PhaseSystem"),
	}
}

// Update 评估切换条件
func (s *PhaseSystem) Update(gs *game.GameState) {
	switch gs.Phase {
	case game.PhaseMenu, game.PhaseGameOver:
		if gs.Input.Start || gs.Input.Clicked {
			s.request(gs, game.PhaseInitialize)
		}

	case game.PhasePlay:
		if gs.Lives.IsDead() {
			s.request(gs, game.PhaseGameOver)
			return
		}
		if pending, _, _ := PendingSpawns(s.em); pending == 0 {
			s.request(gs, game.PhaseWaitingForLastEnemy)
		}

	case game.PhaseWaitingForLastEnemy:
		if gs.Lives.IsDead() {
			s.request(gs, game.PhaseGameOver)
			return
		}
		if len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.em)) == 0 {
			s.request(gs, game.PhaseSetup)
		}
	}
}

func (s *PhaseSystem) request(gs *game.GameState, next game.Phase) {
	if pending, ok := gs.PendingPhase(); ok && pending == next {
		return
	}
	s.logger.Debug("phase change requested",
		zap.Stringer("from", gs.Phase),
		zap.Stringer("to", next))
	gs.RequestPhase(next)
}

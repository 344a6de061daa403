package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// BreachSystem 左边界突破
// 敌机或子弹到达 x <= 0 时生命 -1，触发红色闪屏并删除该实体
type BreachSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewBreachSystem 创建突破检测系统
func NewBreachSystem(em *ecs.EntityManager, logger *zap.Logger) *BreachSystem {
	return &BreachSystem{
		em:     em,
		logger: logger.Named("BreachSystem"),
	}
}

// Update 检测越过左边界的敌机和子弹
func (s *BreachSystem) Update(gs *game.GameState) {
	s.check(gs, ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em))
	s.check(gs, ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em))
}

func (s *BreachSystem) check(gs *game.GameState, ids []ecs.EntityID) {
	for _, id := range ids {
		// 本 tick 已被摧毁的实体不再扣生命
		if s.em.IsMarkedForDeletion(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.X > 0 {
			continue
		}

		gs.Lives.Reduce()
		gs.Stats.Breaches++
		entities.NewScreenFlash(s.em, entities.FlashRed, gs.Config.Effects.BreachFlashTicks)
		s.em.DestroyEntity(id)

		s.logger.Info("left edge breached",
			zap.Uint64("entity", uint64(id)),
			zap.Int("lives", gs.Lives.Count()))
	}
}

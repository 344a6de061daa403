package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// LifetimeSystem 倒计时删除临时实体（闪屏、爆炸发射器）
// 每个 tick TicksLeft -1，降到 0 时删除整个实体
type LifetimeSystem struct {
	em *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{em: em}
}

// Update 推进倒计时
func (s *LifetimeSystem) Update(*game.GameState) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		lifetime.TicksLeft--
		if lifetime.TicksLeft <= 0 {
			s.em.DestroyEntity(id)
		}
	}
}

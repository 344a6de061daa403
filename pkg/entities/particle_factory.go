package entities

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/types"
)

// NewParticle 创建一个装饰粒子（不参与碰撞）
func NewParticle(em *ecs.EntityManager, x, y, vx, vy float64, lifetime int, sprite types.SpriteHandle) ecs.EntityID {
	id := em.ReserveEntity()
	em.Insert(id, &components.ParticleComponent{TimeLeft: lifetime})
	em.Insert(id, &components.PositionComponent{X: x, Y: y})
	em.Insert(id, &components.VelocityComponent{X: vx, Y: vy})
	em.Insert(id, &components.SpriteComponent{Handle: sprite})
	return id
}

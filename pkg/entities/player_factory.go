package entities

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// NewPlayer 创建玩家飞船实体
// 飞船停在左侧出生点，只能上下移动，受阻尼影响逐渐停下
//
// 参数:
//   - em: 实体管理器（使用延迟插入，Flush 后可见）
//   - cfg: 游戏配置
//   - sprites: 本局精灵
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig, sprites *game.Sprites) ecs.EntityID {
	p := cfg.Player
	id := em.ReserveEntity()

	em.Insert(id, &components.PlayerComponent{})
	em.Insert(id, &components.PositionComponent{X: p.SpawnX, Y: p.SpawnY})
	em.Insert(id, &components.VelocityComponent{})
	em.Insert(id, &components.BoundingBoxComponent{Width: p.Width, Height: p.Height})
	em.Insert(id, &components.DragComponent{Factor: p.Drag})
	em.Insert(id, &components.SpeedComponent{Value: p.Speed})
	em.Insert(id, &components.SpriteComponent{Handle: sprites.Player})

	// 引擎尾焰
	em.Insert(id, &components.ParticleEmitterComponent{
		Amount:     1,
		Lifetime:   p.ParticleLifetime,
		Dispersion: p.ParticleDispersion,
		OffsetY:    p.Height / 2,
		Sprite:     sprites.Particle,
	})

	return id
}

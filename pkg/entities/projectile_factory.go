package entities

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/types"
)

// ProjectileParams 子弹参数
type ProjectileParams struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Sprite        types.SpriteHandle
	SplitSprite   types.SpriteHandle // NoSprite 表示不可分裂
}

// NewProjectile 创建子弹实体
// 子弹带有一个短寿命的尾迹粒子发射器
//
// 参数:
//   - em: 实体管理器（使用延迟插入，Flush 后可见）
//   - cfg: 游戏配置（尾迹参数）
//   - sprites: 本局精灵（尾迹粒子）
//   - p: 子弹参数
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
func NewProjectile(em *ecs.EntityManager, cfg *config.GameConfig, sprites *game.Sprites, p ProjectileParams) ecs.EntityID {
	id := em.ReserveEntity()

	em.Insert(id, &components.ProjectileComponent{})
	em.Insert(id, &components.PositionComponent{X: p.X, Y: p.Y})
	em.Insert(id, &components.VelocityComponent{X: p.VX, Y: p.VY})
	em.Insert(id, &components.BoundingBoxComponent{Width: p.Width, Height: p.Height})
	em.Insert(id, &components.SpriteComponent{Handle: p.Sprite})

	if p.SplitSprite.IsValid() {
		em.Insert(id, &components.SplitIntoComponent{Sprite: p.SplitSprite})
	}

	em.Insert(id, &components.ParticleEmitterComponent{
		Amount:     1,
		Lifetime:   cfg.Projectile.ParticleLifetime,
		Dispersion: cfg.Projectile.ParticleDispersion,
		OffsetX:    p.Width / 2,
		OffsetY:    p.Height / 2,
		Sprite:     sprites.Particle,
	})

	return id
}

package entities

import (
	"image/color"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// 屏幕闪光颜色
var (
	FlashRed   = color.RGBA{R: 0xFF, A: 0xFF}
	FlashGreen = color.RGBA{G: 0xFF, A: 0xFF}
)

// NewScreenFlash 创建全屏闪光效果实体，ticks 后自动消失
func NewScreenFlash(em *ecs.EntityManager, c color.RGBA, ticks int) ecs.EntityID {
	id := em.ReserveEntity()
	em.Insert(id, &components.ScreenFlashComponent{Color: c, Duration: ticks})
	em.Insert(id, &components.LifetimeComponent{TicksLeft: ticks})
	return id
}

// NewDeathBurst 创建敌机被摧毁时的爆炸粒子发射器
// 发射器位于敌机碰撞盒中心，存活几个 tick 后消失
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（爆炸参数）
//   - sprites: 本局精灵
//   - cx, cy: 爆炸中心
//
// 返回:
//   - ecs.EntityID: 发射器实体ID
func NewDeathBurst(em *ecs.EntityManager, cfg *config.GameConfig, sprites *game.Sprites, cx, cy float64) ecs.EntityID {
	fx := cfg.Effects
	id := em.ReserveEntity()
	em.Insert(id, &components.PositionComponent{X: cx, Y: cy})
	em.Insert(id, &components.ParticleEmitterComponent{
		Amount:     fx.DeathAmount,
		Lifetime:   fx.DeathParticleLifetime,
		Dispersion: fx.DeathDispersion,
		Sprite:     sprites.Particle,
	})
	em.Insert(id, &components.LifetimeComponent{TicksLeft: fx.DeathEmitterTicks})
	return id
}

package entities

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/types"
)

// EnemyBlueprint 一个属性已完全确定的敌机
// 由波次生成器根据资源量或敌机类型换算得到，工厂只负责组装组件
type EnemyBlueprint struct {
	Archetype types.EnemyArchetype
	X, Y      float64
	VX, VY    float64

	// Zigzag 非 nil 时使用之字形移动，VY 由移动系统覆盖
	Zigzag *components.ZigzagComponent

	Money int

	ParticleAmount     int
	ParticleLifetime   int
	ParticleDispersion float64

	ProjectileSpeed  float64
	ProjectileSpread float64
	ShootInterval    int // 首次射击间隔
	ShootCurrent     int // 首次射击前已累计的时间（错开同批敌机的开火时机）
	ShootIntervalMin int // 之后射击间隔的随机范围，0 表示使用全局配置
	ShootIntervalMax int
	BigProjectile    bool

	// Escort 非 nil 时敌机携带护航发射器（大型敌机）
	Escort *components.EnemyEmitterComponent
}

// NewEnemy 根据蓝图创建敌机实体
//
// 参数:
//   - em: 实体管理器（使用延迟插入，Flush 后可见）
//   - cfg: 游戏配置（子弹尺寸、射击间隔范围）
//   - sprites: 本局精灵
//   - bp: 敌机蓝图
//
// 返回:
//   - ecs.EntityID: 敌机实体ID
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, sprites *game.Sprites, bp EnemyBlueprint) ecs.EntityID {
	stats := bp.Archetype.Stats()
	id := em.ReserveEntity()

	em.Insert(id, &components.EnemyComponent{Archetype: bp.Archetype})
	em.Insert(id, &components.PositionComponent{X: bp.X, Y: bp.Y})
	em.Insert(id, &components.VelocityComponent{X: bp.VX, Y: bp.VY})
	em.Insert(id, &components.BoundingBoxComponent{Width: stats.Width, Height: stats.Height})
	em.Insert(id, &components.SpriteComponent{Handle: sprites.Enemy(bp.Archetype)})
	em.Insert(id, &components.MoneyComponent{Amount: bp.Money})

	if bp.Zigzag != nil {
		zigzag := *bp.Zigzag
		em.Insert(id, &zigzag)
	}

	// 引擎尾焰：从碰撞盒中心发射
	cx, cy := stats.Width/2, stats.Height/2
	em.Insert(id, &components.ParticleEmitterComponent{
		Amount:     bp.ParticleAmount,
		Lifetime:   bp.ParticleLifetime,
		Dispersion: bp.ParticleDispersion,
		OffsetX:    cx,
		OffsetY:    cy,
		Sprite:     sprites.Particle,
	})

	intervalMin, intervalMax := cfg.Projectile.IntervalMin, cfg.Projectile.IntervalMax
	if bp.ShootIntervalMin > 0 && bp.ShootIntervalMax >= bp.ShootIntervalMin {
		intervalMin, intervalMax = bp.ShootIntervalMin, bp.ShootIntervalMax
	}

	size, sprite, split := cfg.Projectile.SmallSize, sprites.SmallProjectile, types.NoSprite
	if bp.BigProjectile {
		size, sprite, split = cfg.Projectile.BigSize, sprites.BigProjectile, sprites.SplitProjectile
	}
	em.Insert(id, &components.ProjectileEmitterComponent{
		Interval:        bp.ShootInterval,
		CurrentInterval: bp.ShootCurrent,
		IntervalMin:     intervalMin,
		IntervalMax:     intervalMax,
		Speed:           bp.ProjectileSpeed,
		Spread:          bp.ProjectileSpread,
		OffsetX:         cx,
		OffsetY:         cy,
		Width:           size,
		Height:          size,
		Sprite:          sprite,
		SplitSprite:     split,
	})

	if bp.Escort != nil {
		escort := *bp.Escort
		escort.Entries = append([]components.SpawnEntry(nil), bp.Escort.Entries...)
		em.Insert(id, &escort)
	}

	return id
}

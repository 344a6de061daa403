package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// PickupEmitterSystem 定时在右边界生成生命道具
type PickupEmitterSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewPickupEmitterSystem 创建道具生成系统
func NewPickupEmitterSystem(em *ecs.EntityManager, logger *zap.Logger) *PickupEmitterSystem {
	return &PickupEmitterSystem{
		em:     em,
		logger: logger.Named("PickupEmitterSystem"),
	}
}

// Update 推进道具发射器计时
func (s *PickupEmitterSystem) Update(gs *game.GameState) {
	cfg := gs.Config
	for _, id := range ecs.GetEntitiesWith1[*components.PickupEmitterComponent](s.em) {
		emitter, _ := ecs.GetComponent[*components.PickupEmitterComponent](s.em, id)

		emitter.CurrentTime++
		if emitter.CurrentTime < emitter.Interval {
			continue
		}
		emitter.CurrentTime = 0
		emitter.Interval = gs.Random.IntRange(emitter.IntervalMin, emitter.IntervalMax)

		y := gs.Random.Range(cfg.Pickup.MarginTop, cfg.PlayArea.Height-cfg.Pickup.MarginBottom)
		pickup := entities.NewHealthPickup(s.em, cfg, &gs.Sprites, cfg.PlayArea.Width, y)
		s.logger.Debug("pickup spawned", zap.Uint64("entity", uint64(pickup)), zap.Float64("y", y))
	}
}

// PickupSystem 道具结算
//   - 漂出左边界的道具被静默删除（不扣生命）
//   - 任意方向的子弹击中道具：两者都被删除，生命 +1，触发绿色闪屏
type PickupSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewPickupSystem 创建道具结算系统
func NewPickupSystem(em *ecs.EntityManager, logger *zap.Logger) *PickupSystem {
	return &PickupSystem{
		em:     em,
		logger: logger.Named("PickupSystem"),
	}
}

// Update 结算道具
func (s *PickupSystem) Update(gs *game.GameState) {
	pickups := ecs.GetEntitiesWith3[
		*components.PickupComponent,
		*components.PositionComponent,
		*components.BoundingBoxComponent,
	](s.em)
	projectiles := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.BoundingBoxComponent,
	](s.em)

	for _, pickup := range pickups {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, pickup)
		if pos.X <= 0 {
			s.em.DestroyEntity(pickup)
			continue
		}

		pickupBox, _ := entityAABR(s.em, pickup)
		for _, projectile := range projectiles {
			projectileBox, _ := entityAABR(s.em, projectile)
			if !pickupBox.Collides(projectileBox) {
				continue
			}
			s.em.DestroyEntity(projectile)
			s.collect(gs, pickup)
		}
	}
}

// collect 拾取道具，同一 tick 内只结算一次
func (s *PickupSystem) collect(gs *game.GameState, pickup ecs.EntityID) {
	if s.em.IsMarkedForDeletion(pickup) {
		return
	}
	s.em.DestroyEntity(pickup)

	kind := components.PickupHealth
	if p, ok := ecs.GetComponent[*components.PickupComponent](s.em, pickup); ok {
		kind = p.Kind
	}
	if kind == components.PickupHealth {
		gs.Lives.Increase()
		entities.NewScreenFlash(s.em, entities.FlashGreen, gs.Config.Effects.PickupFlashTicks)
	}

	s.logger.Info("pickup collected", zap.Int("lives", gs.Lives.Count()))
}

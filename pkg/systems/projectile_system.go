package systems

import (
	"math"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// ProjectileEmitterSystem 敌机射击
//
// 每个 tick CurrentInterval +1；超过 Interval 且载体位于开火区域
// (FireMinX, Width-FireEdgeMargin) 内时，从载体位置加偏移处向左发射一颗子弹，
// 垂直速度在 ±Spread 内随机，然后重新随机下一次的间隔。
type ProjectileEmitterSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewProjectileEmitterSystem 创建敌机射击系统
func NewProjectileEmitterSystem(em *ecs.EntityManager, logger *zap.Logger) *ProjectileEmitterSystem {
	return &ProjectileEmitterSystem{
		em:     em,
		logger: logger.Named("ProjectileEmitterSystem"),
	}
}

// Update 推进射击计时并发射子弹
func (s *ProjectileEmitterSystem) Update(gs *game.GameState) {
	cfg := gs.Config
	maxX := cfg.PlayArea.Width - cfg.Projectile.FireEdgeMargin

	ids := ecs.GetEntitiesWith2[*components.ProjectileEmitterComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		emitter, _ := ecs.GetComponent[*components.ProjectileEmitterComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		emitter.CurrentInterval++
		if emitter.CurrentInterval <= emitter.Interval {
			continue
		}
		if pos.X <= cfg.Projectile.FireMinX || pos.X >= maxX {
			continue
		}

		emitter.CurrentInterval = 0
		emitter.Interval = gs.Random.IntRange(emitter.IntervalMin, emitter.IntervalMax)

		entities.NewProjectile(s.em, cfg, &gs.Sprites, entities.ProjectileParams{
			X:           pos.X + emitter.OffsetX,
			Y:           pos.Y + emitter.OffsetY,
			VX:          -emitter.Speed,
			VY:          gs.Random.Range(-emitter.Spread, emitter.Spread),
			Width:       emitter.Width,
			Height:      emitter.Height,
			Sprite:      emitter.Sprite,
			SplitSprite: emitter.SplitSprite,
		})
	}
}

// ProjectileSystem 子弹与玩家的交互
//
//   - 被吸住的子弹跟随玩家，松开鼠标时以原速度向右释放
//   - 越过右边界的子弹被删除
//   - 向左飞行的子弹碰到玩家时被反弹：方向为子弹位置减去玩家中心（向左偏移 DeflectOffsetX），
//     速度大小不变；拥有吸附升级且按住鼠标时改为吸住；
//     拥有分裂升级且子弹可分裂时，原子弹被三颗绕反弹角扇形分布的小子弹取代
type ProjectileSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, logger *zap.Logger) *ProjectileSystem {
	return &ProjectileSystem{
		em:     em,
		logger: logger.Named("ProjectileSystem"),
	}
}

// Update 更新子弹
func (s *ProjectileSystem) Update(gs *game.GameState) {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.BoundingBoxComponent,
	](s.em)

	s.updateHeld(gs, players)
	s.removeOffscreen(gs)

	for _, player := range players {
		playerBox, _ := entityAABR(s.em, player)
		s.deflect(gs, playerBox)
	}
}

// updateHeld 移动被吸住的子弹，松开鼠标后释放
func (s *ProjectileSystem) updateHeld(gs *game.GameState, players []ecs.EntityID) {
	ids := ecs.GetEntitiesWith3[
		*components.HeldComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.em)

	for _, id := range ids {
		held, _ := ecs.GetComponent[*components.HeldComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		if len(players) == 0 || !gs.Input.MouseDown || !gs.Upgrades.Hold {
			vel.X, vel.Y = held.Speed, 0
			ecs.RemoveDeferred[*components.HeldComponent](s.em, id)
			s.logger.Debug("projectile released", zap.Uint64("entity", uint64(id)))
			continue
		}

		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, players[0])
		playerBox, _ := ecs.GetComponent[*components.BoundingBoxComponent](s.em, players[0])
		height := 0.0
		if box, ok := ecs.GetComponent[*components.BoundingBoxComponent](s.em, id); ok {
			height = box.Height
		}
		pos.X = playerPos.X + gs.Config.Projectile.HoldOffsetX
		pos.Y = playerPos.Y + playerBox.Height/2 - height/2
		vel.X, vel.Y = 0, 0
	}
}

// removeOffscreen 删除越过右边界的子弹
func (s *ProjectileSystem) removeOffscreen(gs *game.GameState) {
	width := gs.Config.PlayArea.Width
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.X > width {
			s.em.DestroyEntity(id)
		}
	}
}

// deflect 反弹碰到玩家的子弹
func (s *ProjectileSystem) deflect(gs *game.GameState, playerBox AABR) {
	cfg := gs.Config.Projectile
	cx, cy := playerBox.Center()
	originX := cx + cfg.DeflectOffsetX

	ids := ecs.GetEntitiesWith4[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.BoundingBoxComponent,
	](s.em)

	for _, id := range ids {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		// 已经向右飞行的子弹不再反弹
		if vel.X > 0 || s.em.IsMarkedForDeletion(id) || ecs.HasComponent[*components.HeldComponent](s.em, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		box, _ := ecs.GetComponent[*components.BoundingBoxComponent](s.em, id)
		if !NewAABR(pos, box).Collides(playerBox) {
			continue
		}

		speed := math.Hypot(vel.X, vel.Y)
		dx, dy := pos.X-originX, pos.Y-cy
		if length := math.Hypot(dx, dy); length > 0 {
			dx, dy = dx/length, dy/length
		} else {
			dx, dy = 1, 0
		}

		if gs.Upgrades.Hold && gs.Input.MouseDown {
			vel.X, vel.Y = 0, 0
			s.em.Insert(id, &components.HeldComponent{Speed: speed})
			s.logger.Debug("projectile captured", zap.Uint64("entity", uint64(id)))
			continue
		}

		vel.X, vel.Y = dx*speed, dy*speed

		split, canSplit := ecs.GetComponent[*components.SplitIntoComponent](s.em, id)
		if !gs.Upgrades.Split || !canSplit {
			continue
		}

		s.em.DestroyEntity(id)
		angle := math.Atan2(dy, dx)
		for i := -1; i <= 1; i++ {
			a := angle + float64(i)*cfg.SplitAngle
			entities.NewProjectile(s.em, gs.Config, &gs.Sprites, entities.ProjectileParams{
				X:      pos.X,
				Y:      pos.Y,
				VX:     math.Cos(a) * speed,
				VY:     math.Sin(a) * speed,
				Width:  box.Width,
				Height: box.Height,
				Sprite: split.Sprite,
			})
		}
		s.logger.Debug("projectile split", zap.Uint64("entity", uint64(id)))
	}
}

package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// EnemyCollisionSystem 碰撞与经济结算
//
// 检测两类碰撞：
//   - 玩家 × 敌机：敌机被摧毁
//   - 向右飞行的子弹 × 敌机：子弹和敌机都被摧毁
//
// 每一对碰撞独立处理：一颗子弹可以同时击毁多架敌机。
// 敌机在同一 tick 内无论被击中几次，奖励和爆炸效果都只结算一次。
type EnemyCollisionSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewEnemyCollisionSystem 创建碰撞结算系统
func NewEnemyCollisionSystem(em *ecs.EntityManager, logger *zap.Logger) *EnemyCollisionSystem {
	return &EnemyCollisionSystem{
		em:     em,
		logger: logger.Named("EnemyCollisionSystem"),
	}
}

// Update 检测并结算本 tick 的碰撞
func (s *EnemyCollisionSystem) Update(gs *game.GameState) {
	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.BoundingBoxComponent,
	](s.em)
	if len(enemies) == 0 {
		return
	}

	// 玩家撞击敌机
	for _, player := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.em) {
		playerBox, ok := entityAABR(s.em, player)
		if !ok {
			continue
		}
		for _, enemy := range enemies {
			enemyBox, _ := entityAABR(s.em, enemy)
			if enemyBox.Collides(playerBox) {
				s.destroyEnemy(gs, enemy, enemyBox)
			}
		}
	}

	// 反弹后的子弹击中敌机
	projectiles := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.VelocityComponent](s.em)
	for _, projectile := range projectiles {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, projectile)
		if vel.X <= 0 {
			continue
		}
		projectileBox, ok := entityAABR(s.em, projectile)
		if !ok {
			continue
		}
		for _, enemy := range enemies {
			enemyBox, _ := entityAABR(s.em, enemy)
			if enemyBox.Collides(projectileBox) {
				s.em.DestroyEntity(projectile)
				s.destroyEnemy(gs, enemy, enemyBox)
			}
		}
	}
}

// destroyEnemy 摧毁敌机并结算奖励
// 已在本 tick 被摧毁的敌机不会重复结算
func (s *EnemyCollisionSystem) destroyEnemy(gs *game.GameState, enemy ecs.EntityID, box AABR) {
	if s.em.IsMarkedForDeletion(enemy) {
		return
	}
	s.em.DestroyEntity(enemy)

	money := 0
	if m, ok := ecs.GetComponent[*components.MoneyComponent](s.em, enemy); ok {
		money = m.Amount
		gs.Credit(money)
	}
	gs.Stats.EnemiesDestroyed++

	cx, cy := box.Center()
	entities.NewDeathBurst(s.em, gs.Config, &gs.Sprites, cx, cy)

	s.logger.Debug("enemy destroyed",
		zap.Uint64("entity", uint64(enemy)),
		zap.Int("money", money),
		zap.Int("wallet", gs.Wallet.Money()))
}

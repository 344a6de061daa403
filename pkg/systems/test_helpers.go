package systems

import (
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/stretchr/testify/require"
)

// newTestState 创建测试用的模拟上下文：默认配置、固定精灵、固定种子
func newTestState(t *testing.T) *game.GameState {
	t.Helper()
	gs := game.NewGameState(config.DefaultGameConfig(), config.DefaultLevelTable(), 1)
	sprites, err := game.StaticSpriteProvider{}.BuildRoster(0)
	require.NoError(t, err)
	gs.Sprites = sprites
	gs.Level = 1
	return gs
}

// spawnBox 立即创建一个带位置和碰撞盒的实体
func spawnBox(em *ecs.EntityManager, x, y, w, h float64, extra ...interface{}) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.BoundingBoxComponent{Width: w, Height: h})
	for _, c := range extra {
		em.AddComponent(id, c)
	}
	return id
}

// spawnEnemy 立即创建一个静止的小型敌机
func spawnEnemy(em *ecs.EntityManager, x, y float64, money int) ecs.EntityID {
	return spawnBox(em, x, y, 10, 16,
		&components.EnemyComponent{},
		&components.VelocityComponent{},
		&components.MoneyComponent{Amount: money},
	)
}

// spawnProjectile 立即创建一颗 3x3 的子弹
func spawnProjectile(em *ecs.EntityManager, x, y, vx, vy float64, extra ...interface{}) ecs.EntityID {
	parts := append([]interface{}{
		&components.ProjectileComponent{},
		&components.VelocityComponent{X: vx, Y: vy},
	}, extra...)
	return spawnBox(em, x, y, 3, 3, parts...)
}

// spawnPlayer 立即创建位于出生点的玩家
func spawnPlayer(em *ecs.EntityManager) ecs.EntityID {
	return spawnBox(em, 5, 200, 10, 40,
		&components.PlayerComponent{},
		&components.VelocityComponent{},
		&components.DragComponent{Factor: 0.85},
		&components.SpeedComponent{Value: 1},
	)
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

package systems

import (
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Wallet 从 0 开始，玩家撞毁带 50 奖励的敌机，Flush 后余额为 50
func TestPlayerDestroysEnemyAndCreditsMoney(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewEnemyCollisionSystem(em, zaptest.NewLogger(t))

	spawnPlayer(em)
	enemy := spawnEnemy(em, 10, 210, 50)
	require.Equal(t, 0, gs.Wallet.Money())

	system.Update(gs)
	em.Flush()

	assert.Equal(t, 50, gs.Wallet.Money())
	assert.False(t, em.IsAlive(enemy))
	assert.Equal(t, 1, gs.Stats.EnemiesDestroyed)

	// 爆炸发射器位于敌机碰撞盒中心，带有寿命
	bursts := ecs.GetEntitiesWith2[*components.ParticleEmitterComponent, *components.LifetimeComponent](em)
	require.Len(t, bursts, 1)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, bursts[0])
	assert.Equal(t, 15.0, pos.X)
	assert.Equal(t, 218.0, pos.Y)
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, bursts[0])
	assert.Equal(t, gs.Config.Effects.DeathEmitterTicks, lifetime.TicksLeft)
}

// 向攻击方向（+x）飞行的子弹击中敌机：子弹和敌机都被摧毁，奖励只结算一次
func TestAttackingProjectileDestroysEnemyOnce(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewEnemyCollisionSystem(em, zaptest.NewLogger(t))

	enemy := spawnEnemy(em, 100, 100, 50)
	first := spawnProjectile(em, 101, 101, 3, 0)
	second := spawnProjectile(em, 105, 110, 2, 1)

	system.Update(gs)
	em.Flush()

	assert.False(t, em.IsAlive(enemy))
	assert.False(t, em.IsAlive(first))
	assert.False(t, em.IsAlive(second), "every overlapping projectile is consumed")
	assert.Equal(t, 50, gs.Wallet.Money(), "money is credited exactly once")
	assert.Equal(t, 1, gs.Stats.EnemiesDestroyed)
	assert.Equal(t, 1, countWith[*components.LifetimeComponent](em), "one death burst per enemy")
}

func TestOneProjectileMayDestroySeveralEnemies(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewEnemyCollisionSystem(em, zaptest.NewLogger(t))

	a := spawnEnemy(em, 100, 100, 10)
	b := spawnEnemy(em, 103, 105, 40)
	projectile := spawnProjectile(em, 104, 110, 3, 0)

	system.Update(gs)
	em.Flush()

	assert.False(t, em.IsAlive(a))
	assert.False(t, em.IsAlive(b))
	assert.False(t, em.IsAlive(projectile))
	assert.Equal(t, 50, gs.Wallet.Money())
}

func TestHostileProjectilesDoNotHitEnemies(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewEnemyCollisionSystem(em, zaptest.NewLogger(t))

	enemy := spawnEnemy(em, 100, 100, 50)
	hostile := spawnProjectile(em, 101, 101, -3, 0)
	held := spawnProjectile(em, 102, 102, 0, 0)

	system.Update(gs)
	em.Flush()

	assert.True(t, em.IsAlive(enemy))
	assert.True(t, em.IsAlive(hostile))
	assert.True(t, em.IsAlive(held))
	assert.Zero(t, gs.Wallet.Money())
}

func TestEnemyWithoutMoneyStillDestroyed(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewEnemyCollisionSystem(em, zaptest.NewLogger(t))

	spawnPlayer(em)
	enemy := spawnBox(em, 8, 200, 10, 16, &components.EnemyComponent{})

	system.Update(gs)
	em.Flush()

	assert.False(t, em.IsAlive(enemy))
	assert.Zero(t, gs.Wallet.Money())
}

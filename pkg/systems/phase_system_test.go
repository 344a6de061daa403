package systems

import (
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func pending(gs *game.GameState) (game.Phase, bool) {
	return gs.PendingPhase()
}

func TestPhaseSystemStartFromMenuAndGameOver(t *testing.T) {
	for _, from := range []game.Phase{game.PhaseMenu, game.PhaseGameOver} {
		t.Run(from.String(), func(t *testing.T) {
			gs := newTestState(t)
			em := ecs.NewEntityManager()
			system := NewPhaseSystem(em, zaptest.NewLogger(t))
			gs.Phase = from

			system.Update(gs)
			_, ok := pending(gs)
			assert.False(t, ok, "no request without a start trigger")

			gs.Input.Start = true
			system.Update(gs)
			next, ok := pending(gs)
			assert.True(t, ok)
			assert.Equal(t, game.PhaseInitialize, next)
		})
	}
}

func TestPhaseSystemWaitsForLastEnemy(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewPhaseSystem(em, zaptest.NewLogger(t))
	gs.Phase = game.PhasePlay

	level := em.CreateEntity()
	emitter := &components.EnemyEmitterComponent{
		Entries:   []components.SpawnEntry{{Time: 10}},
		TotalTime: 100,
	}
	em.AddComponent(level, emitter)

	system.Update(gs)
	_, ok := pending(gs)
	assert.False(t, ok, "entries are still pending")

	// 载机上的发射器不影响判断
	spawnBox(em, 200, 100, 22, 24,
		&components.EnemyComponent{},
		&components.EnemyEmitterComponent{Entries: make([]components.SpawnEntry, 4), TotalTime: 100},
	)
	emitter.Entries = nil
	system.Update(gs)
	next, ok := pending(gs)
	assert.True(t, ok)
	assert.Equal(t, game.PhaseWaitingForLastEnemy, next)
}

func TestPhaseSystemSetupAfterLastEnemy(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewPhaseSystem(em, zaptest.NewLogger(t))
	gs.Phase = game.PhaseWaitingForLastEnemy

	enemy := spawnEnemy(em, 200, 100, 10)
	system.Update(gs)
	_, ok := pending(gs)
	assert.False(t, ok)

	em.DestroyEntity(enemy)
	em.Flush()
	system.Update(gs)
	next, ok := pending(gs)
	assert.True(t, ok)
	assert.Equal(t, game.PhaseSetup, next)
}

func TestPhaseSystemGameOverOnlyWhenDead(t *testing.T) {
	for _, from := range []game.Phase{game.PhasePlay, game.PhaseWaitingForLastEnemy} {
		t.Run(from.String(), func(t *testing.T) {
			gs := newTestState(t)
			em := ecs.NewEntityManager()
			system := NewPhaseSystem(em, zaptest.NewLogger(t))
			gs.Phase = from

			// 保持有待出场条目和存活敌机，避免其他切换
			em.AddComponent(em.CreateEntity(), &components.EnemyEmitterComponent{
				Entries: make([]components.SpawnEntry, 1), TotalTime: 100,
			})
			spawnEnemy(em, 200, 100, 10)

			gs.Lives.Reduce()
			gs.Lives.Reduce()
			system.Update(gs)
			_, ok := pending(gs)
			assert.False(t, ok, "one life left is not game over")

			gs.Lives.Reduce()
			system.Update(gs)
			next, ok := pending(gs)
			assert.True(t, ok)
			assert.Equal(t, game.PhaseGameOver, next)
		})
	}
}

func TestPhaseSystemIgnoresShop(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewPhaseSystem(em, zaptest.NewLogger(t))
	gs.Phase = game.PhaseSetup
	gs.Input.Start = true

	system.Update(gs)
	_, ok := pending(gs)
	assert.False(t, ok, "leaving the shop is the shop's decision")
}

package systems

import (
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEmptyEmitterExpiresAtTotalTime(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewWaveSpawnSystem(em, zaptest.NewLogger(t))

	id := entities.NewLevelEmitter(em, components.EnemyEmitterComponent{TotalTime: 300})
	em.Flush()

	for tick := 1; tick <= 300; tick++ {
		require.NotPanics(t, func() { system.Update(gs) })
		em.Flush()
		require.True(t, em.IsAlive(id), "emitter must survive until current time reaches 300 (tick %d)", tick)
	}

	emitter, _ := ecs.GetComponent[*components.EnemyEmitterComponent](em, id)
	assert.Equal(t, 300, emitter.CurrentTime)

	system.Update(gs)
	em.Flush()
	assert.False(t, em.IsAlive(id), "emitter expires once current time reaches total time")
	assert.Zero(t, countWith[*components.EnemyComponent](em))
}

func TestEmitterPopsEntriesInOrder(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewWaveSpawnSystem(em, zaptest.NewLogger(t))

	entries := []components.SpawnEntry{
		{Time: 2, Kind: components.SpawnByArchetype, Archetype: types.EnemySmall},
		{Time: 2, Kind: components.SpawnByArchetype, Archetype: types.EnemyMedium},
		{Time: 5, Kind: components.SpawnByArchetype, Archetype: types.EnemySmall},
	}
	id := entities.NewLevelEmitter(em, components.EnemyEmitterComponent{Entries: entries, TotalTime: 10})
	em.Flush()

	spawnedAfter := func(ticks int) int {
		for i := 0; i < ticks; i++ {
			system.Update(gs)
			em.Flush()
		}
		return countWith[*components.EnemyComponent](em)
	}

	assert.Equal(t, 0, spawnedAfter(2), "an entry fires only once current time passes its trigger")
	assert.Equal(t, 2, spawnedAfter(1), "all entries with passed triggers fire in the same tick")
	emitter, _ := ecs.GetComponent[*components.EnemyEmitterComponent](em, id)
	require.Len(t, emitter.Entries, 1)
	assert.Equal(t, 5, emitter.Entries[0].Time)

	assert.Equal(t, 3, spawnedAfter(3))
	assert.Empty(t, emitter.Entries)

	for _, enemy := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, enemy)
		require.True(t, ok)
		assert.Equal(t, gs.Config.PlayArea.Width-gs.Config.Spawner.SpawnMarginX, pos.X)
		assert.GreaterOrEqual(t, pos.Y, 0.0)
		assert.Less(t, pos.Y, gs.Config.PlayArea.Height)
	}
}

func TestCarrierEmitterSpawnsAtCarrierAndIsNotDeleted(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewWaveSpawnSystem(em, zaptest.NewLogger(t))

	carrier := spawnBox(em, 250, 120, 22, 24,
		&components.EnemyComponent{Archetype: types.EnemyBig},
		&components.EnemyEmitterComponent{
			Entries: []components.SpawnEntry{
				{Time: 0, Kind: components.SpawnByArchetype, Archetype: types.EnemySmall, Escort: true},
			},
			TotalTime: 2,
		},
	)

	for i := 0; i < 5; i++ {
		system.Update(gs)
		em.Flush()
	}

	assert.True(t, em.IsAlive(carrier), "carrier emitters expire with their carrier")
	assert.True(t, ecs.HasComponent[*components.EnemyEmitterComponent](em, carrier))

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	require.Len(t, enemies, 2)
	escort := enemies[1]
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, escort)
	assert.Equal(t, 250.0, pos.X)
	assert.Equal(t, 120.0, pos.Y)
	assert.False(t, ecs.HasComponent[*components.EnemyEmitterComponent](em, escort))
}

func TestPendingSpawnsAndEnemiesLeft(t *testing.T) {
	em := ecs.NewEntityManager()

	level := em.CreateEntity()
	em.AddComponent(level, &components.EnemyEmitterComponent{
		Entries: make([]components.SpawnEntry, 3), TotalTime: 100,
	})
	spawnBox(em, 200, 100, 22, 24,
		&components.EnemyComponent{Archetype: types.EnemyBig},
		&components.EnemyEmitterComponent{Entries: make([]components.SpawnEntry, 2), TotalTime: 100},
	)
	spawnEnemy(em, 300, 50, 10)

	pendingLevel, total, active := PendingSpawns(em)
	assert.Equal(t, 3, pendingLevel)
	assert.Equal(t, 5, total)
	assert.True(t, active)
	assert.Equal(t, 7, EnemiesLeft(em))

	em.DestroyEntity(level)
	em.Flush()
	_, _, active = PendingSpawns(em)
	assert.False(t, active)
}

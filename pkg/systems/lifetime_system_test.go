package systems

import (
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifetimeDestroysExpiredEntities(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	short := em.CreateEntity()
	em.AddComponent(short, &components.LifetimeComponent{TicksLeft: 1})
	long := em.CreateEntity()
	em.AddComponent(long, &components.LifetimeComponent{TicksLeft: 3})

	system.Update(gs)
	assert.True(t, em.IsMarkedForDeletion(short))
	assert.True(t, em.IsAlive(short), "destruction waits for flush")
	em.Flush()

	assert.False(t, em.IsAlive(short))
	require.True(t, em.IsAlive(long))
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, long)
	assert.Equal(t, 2, lifetime.TicksLeft)

	for range 2 {
		system.Update(gs)
		em.Flush()
	}
	assert.False(t, em.IsAlive(long))
	assert.Zero(t, em.EntityCount())
}

func TestParticleEmitterSpawnsAmountPerTick(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewParticleEmitterSystem(em)

	spawnBox(em, 100, 50, 0, 0, &components.ParticleEmitterComponent{
		Amount:     4,
		Lifetime:   10,
		Dispersion: 2,
		OffsetX:    5,
		OffsetY:    -5,
	})

	system.Update(gs)
	assert.Zero(t, countWith[*components.ParticleComponent](em), "particles appear after flush")
	em.Flush()

	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](em)
	require.Len(t, particles, 4)
	for _, id := range particles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		assert.Equal(t, 105.0, pos.X)
		assert.Equal(t, 45.0, pos.Y)
		assert.InDelta(t, 0, vel.X, 2)
		assert.InDelta(t, 0, vel.Y, 2)
		assert.Equal(t, 10, particle.TimeLeft)
	}

	system.Update(gs)
	em.Flush()
	assert.Equal(t, 8, countWith[*components.ParticleComponent](em))
}

func TestParticleEmitterDoesNotTouchGameplayRandom(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	spawnBox(em, 0, 0, 0, 0, &components.ParticleEmitterComponent{Amount: 10, Lifetime: 1, Dispersion: 1})

	reference := newTestState(t)
	NewParticleEmitterSystem(em).Update(gs)

	assert.Equal(t, reference.Random.Uint64(), gs.Random.Uint64())
}

func TestParticleSystemExpiresParticles(t *testing.T) {
	gs := newTestState(t)
	em := ecs.NewEntityManager()
	system := NewParticleSystem(em)

	a := em.CreateEntity()
	em.AddComponent(a, &components.ParticleComponent{TimeLeft: 1})
	b := em.CreateEntity()
	em.AddComponent(b, &components.ParticleComponent{TimeLeft: 2})

	system.Update(gs)
	em.Flush()
	assert.False(t, em.IsAlive(a))
	assert.True(t, em.IsAlive(b))

	system.Update(gs)
	em.Flush()
	assert.False(t, em.IsAlive(b))
}

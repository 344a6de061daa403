package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
)

// ParticleEmitterSystem 粒子发射
// 每个 tick 在发射器位置（加偏移）生成 Amount 个粒子，速度在 ±Dispersion 内随机
//
// 粒子使用装饰随机源，不会改变玩法随机序列。
type ParticleEmitterSystem struct {
	em *ecs.EntityManager
}

// NewParticleEmitterSystem 创建粒子发射系统
func NewParticleEmitterSystem(em *ecs.EntityManager) *ParticleEmitterSystem {
	return &ParticleEmitterSystem{em: em}
}

// Update 发射粒子
func (s *ParticleEmitterSystem) Update(gs *game.GameState) {
	rng := gs.Effects
	ids := ecs.GetEntitiesWith2[*components.ParticleEmitterComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		emitter, _ := ecs.GetComponent[*components.ParticleEmitterComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		d := emitter.Dispersion
		for i := 0; i < emitter.Amount; i++ {
			entities.NewParticle(s.em,
				pos.X+emitter.OffsetX, pos.Y+emitter.OffsetY,
				rng.Range(-d, d), rng.Range(-d, d),
				emitter.Lifetime, emitter.Sprite)
		}
	}
}

// ParticleSystem 粒子寿命
// 每个 tick TimeLeft -1，降到 0 时删除
type ParticleSystem struct {
	em *ecs.EntityManager
}

// NewParticleSystem 创建粒子寿命系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{em: em}
}

// Update 更新粒子寿命
func (s *ParticleSystem) Update(*game.GameState) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](s.em) {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		particle.TimeLeft--
		if particle.TimeLeft <= 0 {
			s.em.DestroyEntity(id)
		}
	}
}

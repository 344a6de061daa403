package entities

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// NewLevelEmitter 创建关卡级敌机发射器实体
// 发射器没有位置：敌机从右边界随机高度出场，时间耗尽后发射器自行删除
func NewLevelEmitter(em *ecs.EntityManager, emitter components.EnemyEmitterComponent) ecs.EntityID {
	id := em.ReserveEntity()
	emitter.Entries = append([]components.SpawnEntry(nil), emitter.Entries...)
	em.Insert(id, &emitter)
	return id
}

// NewPickupEmitter 创建道具发射器实体
func NewPickupEmitter(em *ecs.EntityManager, cfg *config.GameConfig, rng *game.Random) ecs.EntityID {
	id := em.ReserveEntity()
	em.Insert(id, &components.PickupEmitterComponent{
		Interval:    rng.IntRange(cfg.Pickup.IntervalMin, cfg.Pickup.IntervalMax),
		IntervalMin: cfg.Pickup.IntervalMin,
		IntervalMax: cfg.Pickup.IntervalMax,
	})
	return id
}

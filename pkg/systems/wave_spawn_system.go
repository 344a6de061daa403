package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"go.uber.org/zap"
)

// WaveSpawnSystem 推进所有敌机发射器的时钟并生成敌机
//
// 每个 tick：
//   - CurrentTime >= TotalTime 的发射器过期：关卡发射器（无位置）被删除，
//     挂在载机上的发射器保持不动，随载机一起删除
//   - 否则 CurrentTime +1，并按顺序弹出所有 Time < CurrentTime 的条目，每个条目生成一个敌机
//
// 关卡发射器的敌机从右边界随机高度出场，载机发射器的敌机从载机位置出场。
type WaveSpawnSystem struct {
	em     *ecs.EntityManager
	logger *zap.Logger
}

// NewWaveSpawnSystem 创建波次生成系统
func NewWaveSpawnSystem(em *ecs.EntityManager, logger *zap.Logger) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		em:     em,
		logger: logger.Named("WaveSpawnSystem"),
	}
}

// Update 推进发射器时钟
func (s *WaveSpawnSystem) Update(gs *game.GameState) {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyEmitterComponent](s.em) {
		emitter, _ := ecs.GetComponent[*components.EnemyEmitterComponent](s.em, id)
		carrier, anchored := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if emitter.CurrentTime >= emitter.TotalTime {
			if !anchored {
				s.logger.Debug("level emitter expired",
					zap.Int("currentTime", emitter.CurrentTime),
					zap.Int("discarded", len(emitter.Entries)))
				s.em.DestroyEntity(id)
			}
			continue
		}
		emitter.CurrentTime++

		for len(emitter.Entries) > 0 && emitter.Entries[0].Time < emitter.CurrentTime {
			entry := emitter.Entries[0]
			emitter.Entries = emitter.Entries[1:]
			s.spawn(gs, entry, carrier)
		}
	}
}

// spawn 按条目生成一个敌机，carrier 为 nil 时从右边界出场
func (s *WaveSpawnSystem) spawn(gs *game.GameState, entry components.SpawnEntry, carrier *components.PositionComponent) {
	cfg := gs.Config
	bp := BlueprintFor(gs.Random, cfg, entry)

	if carrier != nil {
		bp.X, bp.Y = carrier.X, carrier.Y
	} else {
		bp.X = cfg.PlayArea.Width - cfg.Spawner.SpawnMarginX
		bp.Y = gs.Random.Range(0, cfg.PlayArea.Height)
	}

	id := entities.NewEnemy(s.em, cfg, &gs.Sprites, bp)
	s.logger.Debug("enemy spawned",
		zap.Uint64("entity", uint64(id)),
		zap.Stringer("archetype", bp.Archetype),
		zap.Int("triggerTime", entry.Time),
		zap.Int("money", bp.Money),
		zap.Bool("escort", carrier != nil))
}

// PendingSpawns 统计发射器中尚未出场的条目
//
// 返回:
//   - level: 关卡发射器（无位置）的剩余条目数
//   - total: 所有发射器（包括载机携带的）的剩余条目数
//   - active: 是否还有关卡发射器存在
func PendingSpawns(em *ecs.EntityManager) (level, total int, active bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyEmitterComponent](em) {
		emitter, _ := ecs.GetComponent[*components.EnemyEmitterComponent](em, id)
		total += len(emitter.Entries)
		if !ecs.HasComponent[*components.PositionComponent](em, id) {
			level += len(emitter.Entries)
			active = true
		}
	}
	return level, total, active
}

// EnemiesLeft 返回 HUD 显示的剩余敌机数：未出场的条目 + 存活的敌机
func EnemiesLeft(em *ecs.EntityManager) int {
	_, pending, _ := PendingSpawns(em)
	return pending + len(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
}

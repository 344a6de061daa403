package systems

import (
	"slices"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/types"
)

// GenerateBudgetSchedule 按资源预算生成出生时间表（预算模式）
//
// 算法：
//  1. 反复从 [resources*MinUsageFactor, resources*MaxUsageFactor) 抽取单个敌机的资源量，
//     低于 MinEntryCost 的抽取被丢弃但仍计入用量，直到用量达到预算或抽取次数达到 RetryLimit
//  2. 条目均匀分布在 totalTime 上（间隔 totalTime/N），每个条目加 ±TimeJitter 的扰动
//  3. 第一个条目固定在 firstSpawn
//  4. 扰动后的时间被限制在 [min(firstSpawn, totalTime-1), totalTime-1] 内并重新排序，
//     保证所有条目都能在发射器过期前出场
//
// 最后一次抽取可能让累计用量超出预算，超出量不会大于一次抽取的上限。
//
// 参数:
//   - rng: 玩法随机源
//   - cfg: 预算模式参数
//   - firstSpawn: 第一个敌机的出场时间
//   - resources: 资源预算
//   - totalTime: 时间预算（tick）
//
// 返回:
//   - components.EnemyEmitterComponent: CurrentTime 为 0 的发射器
func GenerateBudgetSchedule(rng *game.Random, cfg config.BudgetSpawnConfig, firstSpawn int, resources float64, totalTime int) components.EnemyEmitterComponent {
	emitter := components.EnemyEmitterComponent{TotalTime: totalTime}

	var costs []float64
	used := 0.0
	for draws := 0; used < resources && draws < cfg.RetryLimit; draws++ {
		cost := rng.Range(resources*cfg.MinUsageFactor, resources*cfg.MaxUsageFactor)
		if cost > cfg.MinEntryCost {
			costs = append(costs, cost)
		}
		used += cost
	}
	if len(costs) == 0 {
		return emitter
	}

	latest := max(totalTime-1, 0)
	earliest := min(firstSpawn, latest)
	dist := float64(totalTime) / float64(len(costs))
	jitter := float64(cfg.TimeJitter)

	emitter.Entries = make([]components.SpawnEntry, len(costs))
	for i, cost := range costs {
		t := int(float64(i)*dist + rng.Range(-jitter, jitter))
		emitter.Entries[i] = components.SpawnEntry{
			Time:      clampInt(t, earliest, latest),
			Kind:      components.SpawnByResources,
			Resources: cost,
		}
	}
	emitter.Entries[0].Time = earliest

	slices.SortStableFunc(emitter.Entries, func(a, b components.SpawnEntry) int {
		return a.Time - b.Time
	})
	return emitter
}

// BudgetForLevel 返回预算模式下指定关卡的资源和时间预算（随关卡线性增长）
func BudgetForLevel(cfg config.BudgetSpawnConfig, level int) (float64, int) {
	n := max(level-1, 0)
	return cfg.BaseResources + cfg.ResourcesPerLevel*float64(n), cfg.BaseTime + cfg.TimePerLevel*n
}

// GenerateLevelSchedule 按关卡编号生成出生时间表（关卡模式）
//
// 关卡表中有手工编排的关卡直接使用编排；其余关卡程序生成 level²/2 个条目，
// 均匀分布在 BaseTime + TimePerLevel*level 上，类型按权重抽取。
// 中型和大型敌机出场前后的休整时间会累加到之后的所有条目上。
func GenerateLevelSchedule(rng *game.Random, cfg *config.GameConfig, table *config.LevelTable, level int) components.EnemyEmitterComponent {
	if authored, ok := table.Lookup(level); ok {
		emitter := components.EnemyEmitterComponent{
			TotalTime: authored.TotalTime,
			Entries:   make([]components.SpawnEntry, 0, len(authored.Entries)),
		}
		for _, e := range authored.Entries {
			emitter.Entries = append(emitter.Entries, components.SpawnEntry{
				Time:      e.Time,
				Kind:      components.SpawnByArchetype,
				Archetype: e.Type,
			})
		}
		return emitter
	}

	spawner := cfg.Spawner
	count := level * level / 2
	budget := spawner.Level.BaseTime + spawner.Level.TimePerLevel*level
	emitter := components.EnemyEmitterComponent{TotalTime: budget}
	if count <= 0 {
		return emitter
	}

	dist := float64(budget) / float64(count)
	offset := 0
	emitter.Entries = make([]components.SpawnEntry, 0, count)
	for i := 0; i < count; i++ {
		archetype := drawArchetype(rng, spawner.Level.Weights)
		stats := archetype.Stats()

		offset += stats.RestBefore
		emitter.Entries = append(emitter.Entries, components.SpawnEntry{
			Time:      spawner.FirstSpawnTime + int(float64(i)*dist) + offset,
			Kind:      components.SpawnByArchetype,
			Archetype: archetype,
		})
		offset += stats.RestAfter
	}
	emitter.Entries[0].Time = spawner.FirstSpawnTime

	last := emitter.Entries[len(emitter.Entries)-1].Time
	emitter.TotalTime = max(budget+offset, last+1)
	return emitter
}

// ScheduleForLevel 按配置的生成方式生成关卡的出生时间表
func ScheduleForLevel(rng *game.Random, cfg *config.GameConfig, table *config.LevelTable, level int) components.EnemyEmitterComponent {
	if cfg.Spawner.Mode == config.SpawnerBudget {
		resources, totalTime := BudgetForLevel(cfg.Spawner.Budget, level)
		return GenerateBudgetSchedule(rng, cfg.Spawner.Budget, cfg.Spawner.FirstSpawnTime, resources, totalTime)
	}
	return GenerateLevelSchedule(rng, cfg, table, level)
}

// drawArchetype 按权重抽取敌机类型
func drawArchetype(rng *game.Random, w config.ArchetypeWeights) types.EnemyArchetype {
	total := w.Total()
	if total <= 0 {
		return types.EnemySmall
	}
	roll := rng.Range(0, total)
	switch {
	case roll < w.Small:
		return types.EnemySmall
	case roll < w.Small+w.Medium:
		return types.EnemyMedium
	default:
		return types.EnemyBig
	}
}

// BlueprintFromResources 将资源量换算为敌机属性（预算模式）
//
// 资源量决定类型：高于 BigThreshold 时有一半概率生成大型敌机，
// 超出阈值的部分交给它携带的护航发射器；高于 MediumThreshold 时有一半概率生成中型敌机。
// 剩余资源依次分配给水平速度、垂直漂移或之字形振幅，最后剩下的部分作为击毁奖励。
//
// 蓝图不包含位置，由调用方填写。
func BlueprintFromResources(rng *game.Random, cfg *config.GameConfig, resources float64) entities.EnemyBlueprint {
	budget := cfg.Spawner.Budget
	ec := cfg.Enemy
	bp := entities.EnemyBlueprint{Archetype: types.EnemySmall}

	switch {
	case resources > budget.BigThreshold && rng.Bool():
		escort := GenerateBudgetSchedule(rng, budget, cfg.Spawner.FirstSpawnTime, resources-budget.BigThreshold, budget.EscortTime)
		bp.Archetype = types.EnemyBig
		bp.Escort = &escort
		resources = budget.BigResources
	case resources > budget.MediumThreshold && rng.Bool():
		bp.Archetype = types.EnemyMedium
		resources -= budget.MediumCost
	}

	stats := bp.Archetype.Stats()
	bp.ParticleAmount = stats.ParticleAmount
	bp.ParticleLifetime = ec.EngineParticleLifetime + int(resources/100)
	bp.ParticleDispersion = max(1-resources/200, 0.1)
	bp.BigProjectile = stats.BigProjectile
	bp.ProjectileSpread = stats.ShootSpread

	xResources := rng.Range(ec.VelocityFactorXMin, ec.VelocityFactorXMax) * resources
	resources -= xResources
	speedX := xResources*ec.SpeedX + ec.MinSpeed
	bp.VX = -speedX

	if rng.Bool() {
		yResources := rng.Range(ec.VelocityFactorYMin, ec.VelocityFactorYMax) * resources
		resources -= yResources
		bp.VY = yResources * ec.SpeedY
	} else {
		zResources := rng.Range(ec.ZigzagFactorMin, ec.ZigzagFactorMax) * resources
		resources -= zResources
		bp.Zigzag = &components.ZigzagComponent{
			Amount:  zResources * ec.ZigzagSpeed,
			TimeDiv: rng.Range(ec.ZigzagDivMin, ec.ZigzagDivMax),
		}
	}

	bp.ProjectileSpeed = speedX + cfg.Projectile.SpeedBonus
	bp.ShootInterval = rng.IntRange(cfg.Projectile.IntervalMin, cfg.Projectile.IntervalMax)
	bp.ShootCurrent = rng.IntRange(0, bp.ShootInterval)

	bp.Money = max(int(resources), 0)
	return bp
}

// BlueprintFromArchetype 按敌机类型的属性包生成敌机（关卡模式）
// escort 为 true 时是大型敌机放出的护航小飞机，不再携带护航发射器
func BlueprintFromArchetype(rng *game.Random, cfg *config.GameConfig, archetype types.EnemyArchetype, escort bool) entities.EnemyBlueprint {
	stats := archetype.Stats()
	ec := cfg.Enemy

	speedX := rng.Range(stats.SpeedXMin, stats.SpeedXMax)
	bp := entities.EnemyBlueprint{
		Archetype:          archetype,
		VX:                 -speedX,
		Money:              stats.Money,
		ParticleAmount:     stats.ParticleAmount,
		ParticleLifetime:   ec.EngineParticleLifetime,
		ParticleDispersion: 1,
		ProjectileSpeed:    speedX + cfg.Projectile.SpeedBonus,
		ProjectileSpread:   stats.ShootSpread,
		ShootIntervalMin:   stats.ShootIntervalMin,
		ShootIntervalMax:   stats.ShootIntervalMax,
		BigProjectile:      stats.BigProjectile,
	}

	if rng.Bool() {
		bp.VY = rng.Range(-stats.DriftYMax, stats.DriftYMax)
	} else {
		bp.Zigzag = &components.ZigzagComponent{
			Amount:  rng.Range(stats.ZigzagAmplitudeMin, stats.ZigzagAmplitudeMax),
			TimeDiv: rng.Range(ec.ZigzagDivMin, ec.ZigzagDivMax),
		}
	}

	bp.ShootInterval = rng.IntRange(stats.ShootIntervalMin, stats.ShootIntervalMax)
	bp.ShootCurrent = rng.IntRange(0, bp.ShootInterval)

	if stats.Escorts > 0 && !escort {
		bp.Escort = escortSchedule(stats)
	}
	return bp
}

// escortSchedule 大型敌机的护航发射器：Escorts 架小飞机均匀分布在 EscortWindow 内
func escortSchedule(stats types.EnemyStats) *components.EnemyEmitterComponent {
	emitter := &components.EnemyEmitterComponent{
		TotalTime: stats.EscortWindow + 1,
		Entries:   make([]components.SpawnEntry, stats.Escorts),
	}
	for i := range emitter.Entries {
		emitter.Entries[i] = components.SpawnEntry{
			Time:      i * stats.EscortWindow / stats.Escorts,
			Kind:      components.SpawnByArchetype,
			Archetype: types.EnemySmall,
			Escort:    true,
		}
	}
	return emitter
}

// BlueprintFor 根据出生条目生成敌机蓝图
func BlueprintFor(rng *game.Random, cfg *config.GameConfig, entry components.SpawnEntry) entities.EnemyBlueprint {
	if entry.Kind == components.SpawnByResources {
		return BlueprintFromResources(rng, cfg, entry.Resources)
	}
	return BlueprintFromArchetype(rng, cfg, entry.Archetype, entry.Escort)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

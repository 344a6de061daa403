package systems

import (
	"testing"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSorted(t *testing.T, entries []components.SpawnEntry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Time, entries[i].Time, "entries must be sorted by trigger time")
	}
}

func TestBudgetScheduleIsDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig().Spawner.Budget

	a := GenerateBudgetSchedule(game.NewRandom(7), cfg, 30, 1500, 2400)
	b := GenerateBudgetSchedule(game.NewRandom(7), cfg, 30, 1500, 2400)
	c := GenerateBudgetSchedule(game.NewRandom(8), cfg, 30, 1500, 2400)

	require.NotEmpty(t, a.Entries)
	assert.Equal(t, a, b, "same seed and budget yield the same schedule")
	assert.NotEqual(t, a.Entries, c.Entries)
}

func TestBudgetScheduleShape(t *testing.T) {
	cfg := config.DefaultGameConfig().Spawner.Budget

	for seed := uint64(0); seed < 50; seed++ {
		emitter := GenerateBudgetSchedule(game.NewRandom(seed), cfg, 30, 1000, 1800)
		require.NotEmpty(t, emitter.Entries, "seed %d", seed)

		assert.Equal(t, 1800, emitter.TotalTime)
		assert.Equal(t, 0, emitter.CurrentTime)
		assert.Equal(t, 30, emitter.Entries[0].Time, "first enemy spawns at the fixed time")
		assertSorted(t, emitter.Entries)

		for _, e := range emitter.Entries {
			assert.Equal(t, components.SpawnByResources, e.Kind)
			assert.Greater(t, e.Resources, cfg.MinEntryCost, "below-floor draws are discarded")
			assert.GreaterOrEqual(t, e.Time, 30)
			assert.Less(t, e.Time, emitter.TotalTime, "every entry fires before the emitter expires")
		}
	}
}

func TestBudgetScheduleOvershootIsBounded(t *testing.T) {
	cfg := config.DefaultGameConfig().Spawner.Budget
	const resources = 1000.0
	maxDraw := resources * cfg.MaxUsageFactor

	for seed := uint64(0); seed < 200; seed++ {
		emitter := GenerateBudgetSchedule(game.NewRandom(seed), cfg, 30, resources, 1800)
		sum := 0.0
		for _, e := range emitter.Entries {
			sum += e.Resources
		}
		assert.LessOrEqual(t, sum, resources+maxDraw, "seed %d", seed)
	}
}

func TestBudgetScheduleDegenerateInputs(t *testing.T) {
	cfg := config.DefaultGameConfig().Spawner.Budget

	t.Run("零预算", func(t *testing.T) {
		emitter := GenerateBudgetSchedule(game.NewRandom(1), cfg, 30, 0, 300)
		assert.Empty(t, emitter.Entries)
		assert.Equal(t, 300, emitter.TotalTime)
	})

	t.Run("抽取恒为零时受重试上限约束", func(t *testing.T) {
		stuck := cfg
		stuck.MinUsageFactor, stuck.MaxUsageFactor = 0, 0
		stuck.RetryLimit = 100
		emitter := GenerateBudgetSchedule(game.NewRandom(1), stuck, 30, 1000, 300)
		assert.Empty(t, emitter.Entries)
	})

	t.Run("时间预算小于首次出场时间", func(t *testing.T) {
		emitter := GenerateBudgetSchedule(game.NewRandom(1), cfg, 30, 1000, 10)
		require.NotEmpty(t, emitter.Entries)
		for _, e := range emitter.Entries {
			assert.Equal(t, 9, e.Time)
		}
	})
}

func TestBudgetForLevel(t *testing.T) {
	cfg := config.DefaultGameConfig().Spawner.Budget

	res, total := BudgetForLevel(cfg, 1)
	assert.Equal(t, 1000.0, res)
	assert.Equal(t, 1800, total)

	res, total = BudgetForLevel(cfg, 3)
	assert.Equal(t, 2000.0, res)
	assert.Equal(t, 3000, total)
}

func TestLevelScheduleUsesAuthoredLevels(t *testing.T) {
	cfg := config.DefaultGameConfig()
	table := config.DefaultLevelTable()

	emitter := GenerateLevelSchedule(game.NewRandom(1), cfg, table, 4)
	authored, _ := table.Lookup(4)

	assert.Equal(t, authored.TotalTime, emitter.TotalTime)
	require.Len(t, emitter.Entries, len(authored.Entries))
	for i, e := range emitter.Entries {
		assert.Equal(t, authored.Entries[i].Time, e.Time)
		assert.Equal(t, authored.Entries[i].Type, e.Archetype)
		assert.Equal(t, components.SpawnByArchetype, e.Kind)
	}
}

func TestLevelScheduleProcedural(t *testing.T) {
	cfg := config.DefaultGameConfig()
	table := config.DefaultLevelTable()

	for _, level := range []int{5, 8, 12} {
		emitter := GenerateLevelSchedule(game.NewRandom(uint64(level)), cfg, table, level)

		require.Len(t, emitter.Entries, level*level/2, "level %d", level)
		assert.Equal(t, cfg.Spawner.FirstSpawnTime, emitter.Entries[0].Time)
		assertSorted(t, emitter.Entries)

		budget := cfg.Spawner.Level.BaseTime + cfg.Spawner.Level.TimePerLevel*level
		assert.GreaterOrEqual(t, emitter.TotalTime, budget, "rest periods only extend the budget")
		assert.Less(t, emitter.Entries[len(emitter.Entries)-1].Time, emitter.TotalTime)
	}

	again := GenerateLevelSchedule(game.NewRandom(8), cfg, table, 8)
	assert.Equal(t, GenerateLevelSchedule(game.NewRandom(8), cfg, table, 8), again)
}

func TestLevelScheduleRestPeriods(t *testing.T) {
	cfg := config.DefaultGameConfig()
	// 只生成中型敌机：每个条目之后的间隔都包含休整时间
	cfg.Spawner.Level.Weights = config.ArchetypeWeights{Medium: 1}

	emitter := GenerateLevelSchedule(game.NewRandom(3), cfg, nil, 5)
	require.Len(t, emitter.Entries, 12)

	rest := types.EnemyMedium.Stats()
	dist := float64(cfg.Spawner.Level.BaseTime+cfg.Spawner.Level.TimePerLevel*5) / 12
	for i := 2; i < len(emitter.Entries); i++ {
		gap := emitter.Entries[i].Time - emitter.Entries[i-1].Time
		assert.GreaterOrEqual(t, gap, int(dist)+rest.RestBefore+rest.RestAfter-1)
	}
}

func TestDrawArchetypeWeights(t *testing.T) {
	rng := game.NewRandom(99)
	counts := map[types.EnemyArchetype]int{}
	for i := 0; i < 10000; i++ {
		counts[drawArchetype(rng, config.ArchetypeWeights{Small: 90, Medium: 8, Big: 2})]++
	}
	assert.Greater(t, counts[types.EnemySmall], 8500)
	assert.Greater(t, counts[types.EnemyMedium], counts[types.EnemyBig])
	assert.Positive(t, counts[types.EnemyBig])

	assert.Equal(t, types.EnemySmall, drawArchetype(rng, config.ArchetypeWeights{}))
}

func TestBlueprintFromResources(t *testing.T) {
	cfg := config.DefaultGameConfig()
	seen := map[types.EnemyArchetype]bool{}

	for seed := uint64(0); seed < 200; seed++ {
		bp := BlueprintFromResources(game.NewRandom(seed), cfg, 300)
		seen[bp.Archetype] = true

		assert.Less(t, bp.VX, 0.0, "enemies fly towards the left edge")
		assert.GreaterOrEqual(t, bp.Money, 0)
		assert.Greater(t, bp.ProjectileSpeed, -bp.VX)
		assert.GreaterOrEqual(t, bp.ParticleDispersion, 0.1)
		assert.GreaterOrEqual(t, bp.ShootCurrent, 0)
		assert.LessOrEqual(t, bp.ShootCurrent, bp.ShootInterval)

		if bp.Zigzag == nil {
			assert.GreaterOrEqual(t, bp.VY, 0.0)
		} else {
			assert.Zero(t, bp.VY)
			assert.Positive(t, bp.Zigzag.Amount)
		}

		switch bp.Archetype {
		case types.EnemyBig:
			require.NotNil(t, bp.Escort)
			assert.Equal(t, cfg.Spawner.Budget.EscortTime, bp.Escort.TotalTime)
			assert.True(t, bp.BigProjectile)
			// 大型敌机自身只保留固定资源，奖励不会超过它
			assert.LessOrEqual(t, bp.Money, int(cfg.Spawner.Budget.BigResources))
		case types.EnemyMedium:
			assert.Nil(t, bp.Escort)
			assert.True(t, bp.BigProjectile)
		default:
			assert.Nil(t, bp.Escort)
			assert.False(t, bp.BigProjectile)
		}
	}

	assert.True(t, seen[types.EnemySmall])
	assert.True(t, seen[types.EnemyMedium])
	assert.True(t, seen[types.EnemyBig])

	// 低资源只会生成小型敌机
	for seed := uint64(0); seed < 20; seed++ {
		bp := BlueprintFromResources(game.NewRandom(seed), cfg, 40)
		assert.Equal(t, types.EnemySmall, bp.Archetype)
	}
}

func TestBlueprintFromArchetype(t *testing.T) {
	cfg := config.DefaultGameConfig()

	for _, a := range types.AllEnemyArchetypes {
		stats := a.Stats()
		bp := BlueprintFromArchetype(game.NewRandom(5), cfg, a, false)

		assert.Equal(t, a, bp.Archetype)
		assert.Equal(t, stats.Money, bp.Money)
		assert.LessOrEqual(t, -bp.VX, stats.SpeedXMax)
		assert.GreaterOrEqual(t, -bp.VX, stats.SpeedXMin)
		assert.GreaterOrEqual(t, bp.ShootInterval, stats.ShootIntervalMin)
		assert.LessOrEqual(t, bp.ShootInterval, stats.ShootIntervalMax)
		assert.Equal(t, stats.Escorts > 0, bp.Escort != nil, a.String())
	}

	big := BlueprintFromArchetype(game.NewRandom(5), cfg, types.EnemyBig, false)
	stats := types.EnemyBig.Stats()
	require.Len(t, big.Escort.Entries, stats.Escorts)
	assertSorted(t, big.Escort.Entries)
	for _, e := range big.Escort.Entries {
		assert.True(t, e.Escort)
		assert.Equal(t, types.EnemySmall, e.Archetype)
		assert.Less(t, e.Time, big.Escort.TotalTime)
	}

	escort := BlueprintFromArchetype(game.NewRandom(5), cfg, types.EnemyBig, true)
	assert.Nil(t, escort.Escort, "escorts never nest further emitters")
}

// Package simulation 驱动固定步长的游戏模拟
package simulation

import (
	"fmt"

	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/entities"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/systems"
	"go.uber.org/zap"
)

// System 每个 tick 运行一次的系统
type System interface {
	Update(gs *game.GameState)
}

// Simulation 模拟驱动器
//
// 每个 tick 的固定顺序：
//  1. 轮询输入
//  2. 消费上一个 tick 提出的阶段切换请求（进入 Initialize/Setup/Play 前清空世界）
//  3. 按阶段运行系统：Play/WaitingForLastEnemy 运行全部玩法系统，Setup 运行商店
//  4. Flush：应用本 tick 排队的创建和删除
//  5. 阶段系统评估切换条件，更新 HUD 数值
//
// 单线程运行，系统之间不并发。
type Simulation struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	input    game.InputProvider
	sprites  game.SpriteProvider
	gameplay []System
	shop     System
	phase    System
	logger   *zap.Logger

	// OnGameOver 进入 GameOver 时调用（外壳用于保存最佳记录）
	OnGameOver func(gs *game.GameState)
}

// New 创建模拟驱动器
//
// 参数:
//   - gs: 模拟上下文
//   - input: 输入源（nil 表示没有输入）
//   - sprites: 精灵服务（nil 表示使用固定句柄）
//   - logger: 日志
//
// 返回:
//   - *Simulation: 处于 gs.Phase 阶段、世界为空的模拟
func New(gs *game.GameState, input game.InputProvider, sprites game.SpriteProvider, logger *zap.Logger) *Simulation {
	if input == nil {
		input = game.NewScriptedInput()
	}
	if sprites == nil {
		sprites = game.StaticSpriteProvider{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	em := ecs.NewEntityManager()
	return &Simulation{
		em:      em,
		gs:      gs,
		input:   input,
		sprites: sprites,
		gameplay: []System{
			systems.NewPlayerSystem(em),
			systems.NewWaveSpawnSystem(em, logger),
			systems.NewPickupEmitterSystem(em, logger),
			systems.NewProjectileEmitterSystem(em, logger),
			systems.NewZigzagSystem(em),
			systems.NewPhysicsSystem(em),
			systems.NewEnemyCollisionSystem(em, logger),
			systems.NewProjectileSystem(em, logger),
			systems.NewBreachSystem(em, logger),
			systems.NewPickupSystem(em, logger),
			systems.NewParticleEmitterSystem(em),
			systems.NewParticleSystem(em),
			systems.NewLifetimeSystem(em),
		},
		shop:   systems.NewShopSystem(logger),
		phase:  systems.NewPhaseSystem(em, logger),
		logger: logger.Named("Simulation"),
	}
}

// State 返回模拟上下文
func (s *Simulation) State() *game.GameState {
	return s.gs
}

// World 返回实体管理器（渲染端只读）
func (s *Simulation) World() *ecs.EntityManager {
	return s.em
}

// Tick 推进一个 tick
// 只有进入 Initialize 时生成精灵失败才会返回错误，此时模拟不能继续
func (s *Simulation) Tick() error {
	gs := s.gs
	gs.Tick++
	gs.Input = s.input.Poll()

	if next, ok := gs.TakePhaseRequest(); ok {
		if err := s.enterPhase(next); err != nil {
			return err
		}
	}

	switch {
	case gs.Phase.IsGameplay():
		for _, sys := range s.gameplay {
			sys.Update(gs)
		}
	case gs.Phase == game.PhaseSetup:
		s.shop.Update(gs)
	}

	s.em.Flush()
	s.phase.Update(gs)
	gs.EnemiesLeft = systems.EnemiesLeft(s.em)
	return nil
}

// enterPhase 应用阶段切换
func (s *Simulation) enterPhase(next game.Phase) error {
	gs := s.gs
	prev := gs.Phase

	if !game.CanTransition(prev, next) {
		s.logger.Warn("illegal phase transition ignored",
			zap.Stringer("from", prev),
			zap.Stringer("to", next))
		return nil
	}
	if next == game.PhaseGameOver && !gs.Lives.IsDead() {
		s.logger.Warn("game over requested while alive", zap.Int("lives", gs.Lives.Count()))
		return nil
	}

	if next.ResetsWorld() {
		s.em.Clear()
	}
	gs.Phase = next
	s.logger.Info("phase changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Int("level", gs.Level),
		zap.Uint64("tick", gs.Tick))

	switch next {
	case game.PhaseInitialize:
		gs.StartRun()
		roster, err := s.sprites.BuildRoster(gs.Random.Uint64())
		if err != nil {
			return fmt.Errorf("build ship roster: %w", err)
		}
		gs.Sprites = roster
		s.logger.Info("run started", zap.Stringer("runID", gs.RunID))
		return s.enterPhase(game.PhasePlay)

	case game.PhasePlay:
		if prev == game.PhaseSetup {
			gs.Level++
		}
		s.setupLevel()

	case game.PhaseGameOver:
		s.logger.Info("game over",
			zap.Stringer("runID", gs.RunID),
			zap.Int("level", gs.Level),
			zap.Int("scrap", gs.Stats.ScrapEarned),
			zap.Int("destroyed", gs.Stats.EnemiesDestroyed))
		if s.OnGameOver != nil {
			s.OnGameOver(gs)
		}
	}
	return nil
}

// setupLevel 生成玩家、关卡发射器和道具发射器，并立即 Flush 使其在本 tick 可见
func (s *Simulation) setupLevel() {
	gs := s.gs
	entities.NewPlayer(s.em, gs.Config, &gs.Sprites)

	schedule := systems.ScheduleForLevel(gs.Random, gs.Config, gs.Levels, gs.Level)
	entities.NewLevelEmitter(s.em, schedule)
	entities.NewPickupEmitter(s.em, gs.Config, gs.Random)
	s.em.Flush()

	s.logger.Info("level started",
		zap.Int("level", gs.Level),
		zap.Int("entries", len(schedule.Entries)),
		zap.Int("totalTime", schedule.TotalTime))
}

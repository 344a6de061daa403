package game

import (
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/google/uuid"
)

// GameState 模拟上下文
//
// 钱包、生命、阶段、升级等跨系统共享的状态都是这里的显式字段，
// 以引用方式传给每个系统。约定每个字段在一个 tick 内只有一个写入者：
//   - Wallet: 碰撞系统（加）、商店系统（减）
//   - Lives: 敌机/子弹突破（减）、道具系统（加）
//   - Phase: 只由模拟驱动器和阶段系统修改，其他系统通过 RequestPhase 提出请求
type GameState struct {
	Config *config.GameConfig
	Levels *config.LevelTable

	Phase   Phase
	request *Phase // 待消费的阶段切换请求

	Level       int // 当前关卡（从 1 开始）
	Wallet      Wallet
	Lives       Lives
	Upgrades    Upgrades
	EnemiesLeft int // HUD：剩余敌机（未出场 + 存活）

	Random  *Random // 玩法随机源（波次、敌机属性、道具）
	Effects *Random // 装饰随机源（粒子），不影响玩法的可复现性
	Input   InputState
	Sprites Sprites

	RunID uuid.UUID // 每局唯一标识（Initialize 时生成）
	Tick  uint64    // 全局 tick 计数
	Stats RunStats
}

// RunStats 本局统计
type RunStats struct {
	EnemiesDestroyed int
	ScrapEarned      int
	Breaches         int
}

// NewGameState 创建模拟上下文，初始阶段为主菜单
func NewGameState(cfg *config.GameConfig, levels *config.LevelTable, seed uint64) *GameState {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	return &GameState{
		Config:  cfg,
		Levels:  levels,
		Phase:   PhaseMenu,
		Lives:   NewLives(cfg.StartingLives),
		Random:  NewRandom(seed),
		Effects: NewRandom(seed + 1),
	}
}

// RequestPhase 请求切换阶段
// 请求在下一个 tick 开始时被消费；同一 tick 内的多次请求以最后一次为准
func (gs *GameState) RequestPhase(p Phase) {
	gs.request = &p
}

// PendingPhase 返回待消费的请求
func (gs *GameState) PendingPhase() (Phase, bool) {
	if gs.request == nil {
		return gs.Phase, false
	}
	return *gs.request, true
}

// TakePhaseRequest 取出并清除待消费的请求
func (gs *GameState) TakePhaseRequest() (Phase, bool) {
	p, ok := gs.PendingPhase()
	gs.request = nil
	return p, ok
}

// StartRun 重置每局状态（钱包、升级、生命、关卡、统计）并生成新的局ID
func (gs *GameState) StartRun() {
	gs.Wallet.Reset()
	gs.Upgrades.Reset()
	gs.Lives.Reset(gs.Config.StartingLives)
	gs.Level = 1
	gs.EnemiesLeft = 0
	gs.Stats = RunStats{}
	gs.RunID = uuid.New()
}

// Credit 计入击毁奖励
func (gs *GameState) Credit(money int) {
	gs.Wallet.Add(money)
	if money > 0 {
		gs.Stats.ScrapEarned += money
	}
}

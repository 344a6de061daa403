package simulation

import "github.com/gonewx/scrapshot/pkg/game"

// HUD 渲染端读取的标量
type HUD struct {
	Phase       game.Phase
	Level       int
	Lives       int
	Money       int
	EnemiesLeft int
	Hold        bool
	Split       bool
}

// HUD 返回当前 tick 结束时的 HUD 快照
func (s *Simulation) HUD() HUD {
	gs := s.gs
	return HUD{
		Phase:       gs.Phase,
		Level:       gs.Level,
		Lives:       gs.Lives.Count(),
		Money:       gs.Wallet.Money(),
		EnemiesLeft: gs.EnemiesLeft,
		Hold:        gs.Upgrades.Hold,
		Split:       gs.Upgrades.Split,
	}
}

package scenes

import (
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏阶段的画面
// 场景只读取模拟结果，不修改世界
type Scene interface {
	Draw(screen *ebiten.Image, frame Frame)
}

// Frame 一帧需要渲染的只读数据
type Frame struct {
	World *ecs.EntityManager
	State *game.GameState
	HUD   simulation.HUD
	Best  *game.RunRecord // 历史最佳成绩，可为 nil
}

// FrameOf 从模拟中取出当前帧
func FrameOf(sim *simulation.Simulation, best *game.RunRecord) Frame {
	return Frame{
		World: sim.World(),
		State: sim.State(),
		HUD:   sim.HUD(),
		Best:  best,
	}
}

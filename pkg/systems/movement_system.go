package systems

import (
	"math"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// ZigzagSystem 之字形移动
// 内部时钟 +1 后，用 sin(Time*TimeDiv)*Amount 覆盖垂直速度
type ZigzagSystem struct {
	em *ecs.EntityManager
}

// NewZigzagSystem 创建之字形移动系统
func NewZigzagSystem(em *ecs.EntityManager) *ZigzagSystem {
	return &ZigzagSystem{em: em}
}

// Update 更新所有之字形实体的垂直速度
func (s *ZigzagSystem) Update(*game.GameState) {
	for _, id := range ecs.GetEntitiesWith2[*components.ZigzagComponent, *components.VelocityComponent](s.em) {
		zigzag, _ := ecs.GetComponent[*components.ZigzagComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		zigzag.Time++
		vel.Y = math.Sin(zigzag.Time*zigzag.TimeDiv) * zigzag.Amount
	}
}

// PlayerSystem 玩家控制
// 按住上/下时每个 tick 向垂直速度施加推力，松开后由阻尼减速
type PlayerSystem struct {
	em *ecs.EntityManager
}

// NewPlayerSystem 创建玩家控制系统
func NewPlayerSystem(em *ecs.EntityManager) *PlayerSystem {
	return &PlayerSystem{em: em}
}

// Update 根据本 tick 的输入更新玩家速度
func (s *PlayerSystem) Update(gs *game.GameState) {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.VelocityComponent,
		*components.SpeedComponent,
	](s.em)

	for _, id := range ids {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		speed, _ := ecs.GetComponent[*components.SpeedComponent](s.em, id)

		if gs.Input.Up {
			vel.Y -= speed.Value
		}
		if gs.Input.Down {
			vel.Y += speed.Value
		}
	}
}

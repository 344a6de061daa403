package simulation

import (
	"math"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// 玩家中心与目标的高度差在该范围内时不再移动
const autopilotDeadZone = 2

// Autopilot 无头运行时代替玩家的输入源
//
// 策略：
//   - 菜单：开始游戏
//   - 游戏中：把玩家中心对准最近的来袭子弹，没有子弹时对准最近的敌机
//   - 商店：买得起且未拥有时依次购买分裂、吸附，然后开始下一关
//   - 结束画面：不再输入
type Autopilot struct {
	sim *Simulation
}

// NewAutopilot 创建自动驾驶输入源，Attach 之前只返回空输入
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Attach 绑定要驾驶的模拟
func (a *Autopilot) Attach(sim *Simulation) {
	a.sim = sim
}

// Poll 实现 game.InputProvider
func (a *Autopilot) Poll() game.InputState {
	if a.sim == nil {
		return game.InputState{}
	}
	gs := a.sim.State()
	switch gs.Phase {
	case game.PhaseMenu:
		return game.InputState{Start: true}
	case game.PhaseSetup:
		return a.shop(gs)
	case game.PhasePlay, game.PhaseWaitingForLastEnemy:
		return a.steer()
	default:
		return game.InputState{}
	}
}

// shop 购买买得起的升级，否则开始下一关
func (a *Autopilot) shop(gs *game.GameState) game.InputState {
	for _, button := range game.ShopButtons(gs.Config.PlayArea) {
		kind, isUpgrade := button.Action.Upgrade()
		if !isUpgrade || gs.Upgrades.Has(kind) {
			continue
		}
		if gs.Wallet.Money() < game.UpgradePrice(gs.Config.Economy, kind) {
			continue
		}
		return game.InputState{
			MouseX:    int(button.X + button.Width/2),
			MouseY:    int(button.Y + button.Height/2),
			MouseDown: true,
			Clicked:   true,
		}
	}
	return game.InputState{Start: true}
}

// steer 上下移动玩家对准目标
func (a *Autopilot) steer() game.InputState {
	em := a.sim.World()
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(players) == 0 {
		return game.InputState{}
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, players[0])
	centerY := pos.Y
	if box, ok := ecs.GetComponent[*components.BoundingBoxComponent](em, players[0]); ok {
		centerY += box.Height / 2
	}

	targetY, ok := nearestIncoming(em, pos.X)
	if !ok {
		targetY, ok = nearestOf[*components.EnemyComponent](em, pos.X)
	}
	if !ok {
		return game.InputState{}
	}
	return game.InputState{
		Up:   targetY < centerY-autopilotDeadZone,
		Down: targetY > centerY+autopilotDeadZone,
	}
}

// nearestIncoming 返回离玩家最近的向左飞行的子弹中心高度
func nearestIncoming(em *ecs.EntityManager, playerX float64) (float64, bool) {
	best, bestY, found := math.Inf(1), 0.0, false
	for _, id := range ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](em) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		if vel.X >= 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := pos.X - playerX; d >= 0 && d < best {
			best, bestY, found = d, centerOf(em, id, pos), true
		}
	}
	return bestY, found
}

// nearestOf 返回离玩家最近的 T 实体中心高度
func nearestOf[T any](em *ecs.EntityManager, playerX float64) (float64, bool) {
	best, bestY, found := math.Inf(1), 0.0, false
	for _, id := range ecs.GetEntitiesWith2[T, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := math.Abs(pos.X - playerX); d < best {
			best, bestY, found = d, centerOf(em, id, pos), true
		}
	}
	return bestY, found
}

func centerOf(em *ecs.EntityManager, id ecs.EntityID, pos *components.PositionComponent) float64 {
	if box, ok := ecs.GetComponent[*components.BoundingBoxComponent](em, id); ok {
		return pos.Y + box.Height/2
	}
	return pos.Y
}

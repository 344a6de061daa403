package game

// Phase 游戏阶段
//
// 任意时刻只有一个阶段生效。阶段切换请求在 tick 中提出，
// 由模拟驱动器在下一个 tick 开始时统一消费（见 GameState.RequestPhase）。
type Phase int

const (
	PhaseMenu                Phase = iota // 主菜单
	PhaseInitialize                       // 新一局初始化（重置钱包、升级、生命，生成舰船外观）
	PhaseSetup                            // 关卡间的商店
	PhasePlay                             // 波次进行中
	PhaseWaitingForLastEnemy              // 时间表已耗尽，等待最后一个敌机
	PhaseGameOver                         // 生命耗尽
)

// String 返回阶段名称（用于日志和 HUD）
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseInitialize:
		return "Initialize"
	case PhaseSetup:
		return "Setup"
	case PhasePlay:
		return "Play"
	case PhaseWaitingForLastEnemy:
		return "WaitingForLastEnemy"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// IsGameplay 返回该阶段是否运行游戏系统（移动、碰撞、生成）
func (p Phase) IsGameplay() bool {
	return p == PhasePlay || p == PhaseWaitingForLastEnemy
}

// ResetsWorld 返回进入该阶段时是否需要清空所有临时实体
func (p Phase) ResetsWorld() bool {
	return p == PhaseInitialize || p == PhaseSetup || p == PhasePlay
}

// legalTransitions 合法的阶段切换
var legalTransitions = map[Phase][]Phase{
	PhaseMenu:                {PhaseInitialize},
	PhaseInitialize:          {PhasePlay},
	PhasePlay:                {PhaseWaitingForLastEnemy, PhaseGameOver},
	PhaseWaitingForLastEnemy: {PhaseSetup, PhaseGameOver},
	PhaseSetup:               {PhasePlay},
	PhaseGameOver:            {PhaseInitialize},
}

// CanTransition 检查从 from 切换到 to 是否合法
func CanTransition(from, to Phase) bool {
	for _, p := range legalTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

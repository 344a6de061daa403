package components

// PlayerComponent 标记玩家控制的飞船
type PlayerComponent struct{}

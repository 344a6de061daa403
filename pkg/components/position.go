package components

// PositionComponent 实体在世界坐标中的位置
// 左上角为原点，x 向右、y 向下
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 每个 tick 的位移量
// 由玩家输入、之字形摆动、阻尼和碰撞反弹修改
type VelocityComponent struct {
	X float64
	Y float64
}

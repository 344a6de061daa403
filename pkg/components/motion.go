package components

// DragComponent 速度阻尼
// 每个 tick 速度乘以 Factor，Factor 取值 (0, 1]
type DragComponent struct {
	Factor float64
}

// SpeedComponent 玩家每个 tick 施加到垂直速度上的推力
type SpeedComponent struct {
	Value float64
}

// ZigzagComponent 之字形移动修饰
//
// 每个 tick 内部时钟 +1，垂直速度被覆盖为 sin(Time*TimeDiv) * Amount，
// 与位置无关，因此轨迹是确定的。
type ZigzagComponent struct {
	Time    float64 // 内部时钟（tick）
	Amount  float64 // 振幅
	TimeDiv float64 // 角频率除数
}

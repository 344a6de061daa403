package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理临时实体（死亡爆炸发射器、屏幕闪光）
// TicksLeft 每 tick 减 1，<= 0 时删除实体
type LifetimeComponent struct {
	TicksLeft int
}

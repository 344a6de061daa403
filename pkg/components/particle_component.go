package components

// ParticleComponent 单个装饰粒子
// 不参与碰撞，TimeLeft 每 tick 减 1，<= 0 时删除
type ParticleComponent struct {
	TimeLeft int
}

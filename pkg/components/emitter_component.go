package components

import "github.com/gonewx/scrapshot/pkg/types"

// ParticleEmitterComponent 粒子发射器
//
// 只有同时拥有 PositionComponent 的发射器才会工作：
// 每个 tick 在 (位置 + 偏移) 处发射 Amount 个粒子，
// 粒子速度在 ±Dispersion 范围内随机。
type ParticleEmitterComponent struct {
	Amount     int     // 每 tick 发射的粒子数量
	Lifetime   int     // 粒子存活时间（tick）
	Dispersion float64 // 粒子最大速度
	OffsetX    float64 // 发射点偏移
	OffsetY    float64
	Sprite     types.SpriteHandle
}

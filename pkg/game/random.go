package game

import "math/rand/v2"

// Random 可复现的随机数源
// 同一个种子产生同一局游戏（波次时间表、敌机属性、道具位置）
type Random struct {
	rng *rand.Rand
}

// NewRandom 使用种子创建随机数源
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Range 返回 [min, max) 内的均匀随机数，min == max 时返回 min
func (r *Random) Range(min, max float64) float64 {
	return r.rng.Float64()*(max-min) + min
}

// IntRange 返回 [min, max] 内的均匀随机整数
func (r *Random) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.IntN(max-min+1)
}

// Bool 返回等概率的布尔值
func (r *Random) Bool() bool {
	return r.rng.IntN(2) == 1
}

// Intn 返回 [0, n) 内的随机整数，n <= 0 时返回 0
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Uint64 返回一个随机 uint64（用于派生子种子）
func (r *Random) Uint64() uint64 {
	return r.rng.Uint64()
}

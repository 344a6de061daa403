package game

import "github.com/gonewx/scrapshot/pkg/types"

// Sprites 一局游戏使用的精灵句柄
type Sprites struct {
	Player          types.SpriteHandle
	Enemies         [3]types.SpriteHandle // 按 EnemyArchetype 索引
	SmallProjectile types.SpriteHandle
	BigProjectile   types.SpriteHandle
	SplitProjectile types.SpriteHandle // 分裂后的小子弹
	Particle        types.SpriteHandle
	HealthPickup    types.SpriteHandle
}

// Enemy 返回敌机类型对应的精灵
func (s *Sprites) Enemy(a types.EnemyArchetype) types.SpriteHandle {
	if int(a) < 0 || int(a) >= len(s.Enemies) {
		return types.NoSprite
	}
	return s.Enemies[a]
}

// SpriteProvider 外部精灵生成服务
//
// 每局开始（Initialize）时调用一次 BuildRoster 生成新的舰船外观。
// 生成失败是启动级错误，模拟不会在缺少精灵的情况下继续。
type SpriteProvider interface {
	BuildRoster(seed uint64) (Sprites, error)
}

// StaticSpriteProvider 返回固定句柄的精灵服务（无头运行和测试使用）
type StaticSpriteProvider struct{}

// BuildRoster 实现 SpriteProvider
func (StaticSpriteProvider) BuildRoster(uint64) (Sprites, error) {
	return Sprites{
		Player:          1,
		Enemies:         [3]types.SpriteHandle{2, 3, 4},
		SmallProjectile: 5,
		BigProjectile:   6,
		SplitProjectile: 7,
		Particle:        8,
		HealthPickup:    9,
	}, nil
}

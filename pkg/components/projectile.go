package components

import "github.com/gonewx/scrapshot/pkg/types"

// ProjectileComponent 标记子弹实体
type ProjectileComponent struct{}

// SplitIntoComponent 可分裂子弹携带的分裂精灵
// 拥有分裂升级时，被玩家反弹会分裂成三颗子弹
type SplitIntoComponent struct {
	Sprite types.SpriteHandle
}

// HeldComponent 被玩家吸住的子弹（需要 Hold 升级）
// 松开鼠标时以原速度向右释放
type HeldComponent struct {
	Speed float64
}

// ProjectileEmitterComponent 敌机的子弹发射器
//
// 每个 tick CurrentInterval +1，超过 Interval 且载体位于开火区域内时发射，
// 随后重新随机下一次的间隔。
type ProjectileEmitterComponent struct {
	Interval        int // 当前射击间隔（tick）
	CurrentInterval int // 距离上次射击的时间（tick）
	IntervalMin     int // 间隔随机下限
	IntervalMax     int // 间隔随机上限

	Speed  float64 // 子弹水平速度（向左）
	Spread float64 // 子弹垂直速度随机范围 ±Spread

	OffsetX float64 // 发射点相对载体左上角的偏移
	OffsetY float64
	Width   float64 // 子弹碰撞盒
	Height  float64

	Sprite      types.SpriteHandle // 子弹精灵
	SplitSprite types.SpriteHandle // 分裂精灵，NoSprite 表示不可分裂
}

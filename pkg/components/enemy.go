package components

import "github.com/gonewx/scrapshot/pkg/types"

// EnemyComponent 标记敌机实体
type EnemyComponent struct {
	Archetype types.EnemyArchetype
}

// MoneyComponent 被玩家摧毁时计入钱包的奖励（非负）
type MoneyComponent struct {
	Amount int
}

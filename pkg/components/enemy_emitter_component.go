package components

import "github.com/gonewx/scrapshot/pkg/types"

// SpawnKind 出生条目的解释方式
type SpawnKind int

const (
	// SpawnByResources 按资源量换算敌机类型与属性（预算模式）
	SpawnByResources SpawnKind = iota
	// SpawnByArchetype 直接指定敌机类型（关卡模式）
	SpawnByArchetype
)

// SpawnEntry 出生时间表中的一条记录
type SpawnEntry struct {
	Time      int                  `yaml:"time"`                // 触发时间（tick）
	Kind      SpawnKind            `yaml:"-"`                   // 解释方式
	Resources float64              `yaml:"resources,omitempty"` // 资源量（SpawnByResources）
	Archetype types.EnemyArchetype `yaml:"type"`                // 敌机类型（SpawnByArchetype）
	Escort    bool                 `yaml:"escort,omitempty"`    // 是否为护航小飞机
}

// EnemyEmitterComponent 敌机发射器
//
// 可以挂在关卡实体上（无 PositionComponent，敌机从右侧随机高度出场），
// 也可以挂在大型敌机上（敌机从载机位置出场）。
//
// 约束：Entries 按 Time 升序排列，只能从头部按顺序消费。
type EnemyEmitterComponent struct {
	Entries     []SpawnEntry
	CurrentTime int // 当前时间（tick）
	TotalTime   int // 时间预算（tick），到达后发射器过期
}

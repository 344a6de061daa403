// Package types 定义共享的基础类型
package types

import "fmt"

// EnemyArchetype 定义敌机的类型
//
// 封闭枚举：所有按类型区分的数值都集中在 Stats() 中，
// 新增类型时只需要在这里补充一个分支。
type EnemyArchetype int

const (
	EnemySmall  EnemyArchetype = iota // 小型敌机
	EnemyMedium                       // 中型敌机
	EnemyBig                          // 大型敌机（携带护航发射器）
)

// AllEnemyArchetypes 按从小到大排列的全部敌机类型
var AllEnemyArchetypes = []EnemyArchetype{EnemySmall, EnemyMedium, EnemyBig}

// EnemyStats 敌机类型的属性包
//
// 所有时间单位为 tick，速度单位为 单位/tick。
type EnemyStats struct {
	Width  float64 // 碰撞盒宽度
	Height float64 // 碰撞盒高度

	SpeedXMin float64 // 水平速度下限（向左）
	SpeedXMax float64 // 水平速度上限
	DriftYMax float64 // 直线模式下垂直漂移速度上限

	ZigzagAmplitudeMin float64 // 之字形振幅下限
	ZigzagAmplitudeMax float64 // 之字形振幅上限

	ShootIntervalMin int     // 射击间隔下限
	ShootIntervalMax int     // 射击间隔上限
	ShootSpread      float64 // 子弹垂直散布
	BigProjectile    bool    // 是否发射大号（可分裂）子弹

	Money          int // 击毁奖励
	ParticleAmount int // 引擎粒子每 tick 发射数量

	Escorts      int // 护航小飞机数量（仅大型）
	EscortWindow int // 护航小飞机分布的时间窗口

	RestBefore int // 出场前的休整时间（叠加到后续所有条目）
	RestAfter  int // 出场后的休整时间
}

// Stats 返回敌机类型对应的属性包（纯函数）
func (a EnemyArchetype) Stats() EnemyStats {
	switch a {
	case EnemyMedium:
		return EnemyStats{
			Width:              13,
			Height:             20,
			SpeedXMin:          0.25,
			SpeedXMax:          0.45,
			DriftYMax:          0.3,
			ZigzagAmplitudeMin: 0.3,
			ZigzagAmplitudeMax: 0.8,
			ShootIntervalMin:   180,
			ShootIntervalMax:   320,
			ShootSpread:        0.6,
			BigProjectile:      true,
			Money:              40,
			ParticleAmount:     2,
			RestBefore:         60,
			RestAfter:          60,
		}
	case EnemyBig:
		return EnemyStats{
			Width:              22,
			Height:             24,
			SpeedXMin:          0.15,
			SpeedXMax:          0.25,
			DriftYMax:          0.1,
			ZigzagAmplitudeMin: 0.2,
			ZigzagAmplitudeMax: 0.5,
			ShootIntervalMin:   120,
			ShootIntervalMax:   240,
			ShootSpread:        1.0,
			BigProjectile:      true,
			Money:              150,
			ParticleAmount:     4,
			Escorts:            6,
			EscortWindow:       180,
			RestBefore:         240,
			RestAfter:          300,
		}
	default:
		return EnemyStats{
			Width:              10,
			Height:             16,
			SpeedXMin:          0.3,
			SpeedXMax:          0.6,
			DriftYMax:          0.5,
			ZigzagAmplitudeMin: 0.3,
			ZigzagAmplitudeMax: 1.0,
			ShootIntervalMin:   240,
			ShootIntervalMax:   420,
			ShootSpread:        0.3,
			Money:              10,
			ParticleAmount:     1,
		}
	}
}

// String 返回类型名称
func (a EnemyArchetype) String() string {
	switch a {
	case EnemySmall:
		return "small"
	case EnemyMedium:
		return "medium"
	case EnemyBig:
		return "big"
	default:
		return fmt.Sprintf("EnemyArchetype(%d)", int(a))
	}
}

// ParseEnemyArchetype 将名称解析为敌机类型
func ParseEnemyArchetype(name string) (EnemyArchetype, error) {
	for _, a := range AllEnemyArchetypes {
		if a.String() == name {
			return a, nil
		}
	}
	return EnemySmall, fmt.Errorf("unknown enemy archetype %q", name)
}

// MarshalText 实现 encoding.TextMarshaler（YAML 输出使用名称）
func (a EnemyArchetype) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler（YAML 配置中使用名称）
func (a *EnemyArchetype) UnmarshalText(text []byte) error {
	parsed, err := ParseEnemyArchetype(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

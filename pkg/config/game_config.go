package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/scrapshot/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置内容不合法
var ErrInvalidConfig = errors.New("invalid config")

// SpawnerMode 波次生成方式
type SpawnerMode string

const (
	// SpawnerLevel 按关卡编号生成（1-4 关手工编排，之后程序生成）
	SpawnerLevel SpawnerMode = "level"
	// SpawnerBudget 按资源预算生成
	SpawnerBudget SpawnerMode = "budget"
)

// DefaultGameConfigPath 默认嵌入的游戏数据文件
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏数值配置（data/game.yaml）
type GameConfig struct {
	PlayArea      PlayAreaConfig   `yaml:"playArea"`
	StartingLives int              `yaml:"startingLives"`
	Player        PlayerConfig     `yaml:"player"`
	Economy       EconomyConfig    `yaml:"economy"`
	Spawner       SpawnerConfig    `yaml:"spawner"`
	Enemy         EnemyConfig      `yaml:"enemy"`
	Projectile    ProjectileConfig `yaml:"projectile"`
	Pickup        PickupConfig     `yaml:"pickup"`
	Effects       EffectsConfig    `yaml:"effects"`
}

// PlayAreaConfig 游戏区域尺寸
type PlayAreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家飞船
type PlayerConfig struct {
	SpawnX             float64 `yaml:"spawnX"`
	SpawnY             float64 `yaml:"spawnY"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Drag               float64 `yaml:"drag"`  // 速度阻尼 (0, 1]
	Speed              float64 `yaml:"speed"` // 每 tick 推力
	ParticleLifetime   int     `yaml:"particleLifetime"`
	ParticleDispersion float64 `yaml:"particleDispersion"`
}

// EconomyConfig 商店价格
type EconomyConfig struct {
	HoldPrice  int `yaml:"holdPrice"`
	SplitPrice int `yaml:"splitPrice"`
}

// SpawnerConfig 波次生成
type SpawnerConfig struct {
	Mode           SpawnerMode       `yaml:"mode"`
	FirstSpawnTime int               `yaml:"firstSpawnTime"` // 第一个敌机的固定出场时间
	SpawnMarginX   float64           `yaml:"spawnMarginX"`   // 出场点距右边界的距离
	Budget         BudgetSpawnConfig `yaml:"budget"`
	Level          LevelSpawnConfig  `yaml:"level"`
}

// BudgetSpawnConfig 资源预算模式
type BudgetSpawnConfig struct {
	BaseResources     float64 `yaml:"baseResources"`
	ResourcesPerLevel float64 `yaml:"resourcesPerLevel"`
	BaseTime          int     `yaml:"baseTime"`
	TimePerLevel      int     `yaml:"timePerLevel"`

	MinUsageFactor float64 `yaml:"minUsageFactor"` // 单个敌机占剩余预算的比例下限
	MaxUsageFactor float64 `yaml:"maxUsageFactor"` // 单个敌机占剩余预算的比例上限
	MinEntryCost   float64 `yaml:"minEntryCost"`   // 低于此值的抽取被丢弃
	TimeJitter     int     `yaml:"timeJitter"`     // 触发时间随机扰动 ±TimeJitter
	RetryLimit     int     `yaml:"retryLimit"`     // 抽取次数上限

	BigThreshold    float64 `yaml:"bigThreshold"`    // 资源高于此值可能生成大型敌机
	BigResources    float64 `yaml:"bigResources"`    // 大型敌机自身保留的资源
	MediumThreshold float64 `yaml:"mediumThreshold"` // 资源高于此值可能生成中型敌机
	MediumCost      float64 `yaml:"mediumCost"`      // 中型敌机消耗的资源
	EscortTime      int     `yaml:"escortTime"`      // 大型敌机护航发射器的时间预算
}

// LevelSpawnConfig 关卡模式（第 5 关起程序生成）
type LevelSpawnConfig struct {
	BaseTime     int              `yaml:"baseTime"`
	TimePerLevel int              `yaml:"timePerLevel"`
	Weights      ArchetypeWeights `yaml:"weights"`
}

// ArchetypeWeights 敌机类型的抽取权重
type ArchetypeWeights struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
	Big    float64 `yaml:"big"`
}

// Total 返回权重之和
func (w ArchetypeWeights) Total() float64 {
	return w.Small + w.Medium + w.Big
}

// EnemyConfig 按资源换算敌机属性的系数（预算模式）
type EnemyConfig struct {
	VelocityFactorXMin float64 `yaml:"velocityFactorXMin"`
	VelocityFactorXMax float64 `yaml:"velocityFactorXMax"`
	VelocityFactorYMin float64 `yaml:"velocityFactorYMin"`
	VelocityFactorYMax float64 `yaml:"velocityFactorYMax"`
	SpeedX             float64 `yaml:"speedX"`
	SpeedY             float64 `yaml:"speedY"`
	MinSpeed           float64 `yaml:"minSpeed"`
	ZigzagFactorMin    float64 `yaml:"zigzagFactorMin"`
	ZigzagFactorMax    float64 `yaml:"zigzagFactorMax"`
	ZigzagSpeed        float64 `yaml:"zigzagSpeed"`
	ZigzagDivMin       float64 `yaml:"zigzagDivMin"`
	ZigzagDivMax       float64 `yaml:"zigzagDivMax"`

	EngineParticleLifetime int `yaml:"engineParticleLifetime"`
}

// ProjectileConfig 子弹
type ProjectileConfig struct {
	IntervalMin    int     `yaml:"intervalMin"`
	IntervalMax    int     `yaml:"intervalMax"`
	FireMinX       float64 `yaml:"fireMinX"`       // 载体 x 大于此值才开火
	FireEdgeMargin float64 `yaml:"fireEdgeMargin"` // 载体距右边界小于此值时不开火
	SpeedBonus     float64 `yaml:"speedBonus"`     // 子弹速度 = 载体速度 + SpeedBonus
	SmallSize      float64 `yaml:"smallSize"`
	BigSize        float64 `yaml:"bigSize"`
	SplitAngle     float64 `yaml:"splitAngle"`     // 分裂子弹之间的夹角（弧度）
	DeflectOffsetX float64 `yaml:"deflectOffsetX"` // 反弹中心相对玩家中心的水平偏移
	HoldOffsetX    float64 `yaml:"holdOffsetX"`    // 被吸住的子弹在玩家前方的距离

	ParticleLifetime   int     `yaml:"particleLifetime"`
	ParticleDispersion float64 `yaml:"particleDispersion"`
}

// PickupConfig 道具
type PickupConfig struct {
	IntervalMin  int     `yaml:"intervalMin"`
	IntervalMax  int     `yaml:"intervalMax"`
	Speed        float64 `yaml:"speed"`
	Size         float64 `yaml:"size"`
	MarginTop    float64 `yaml:"marginTop"`
	MarginBottom float64 `yaml:"marginBottom"`
}

// EffectsConfig 视觉效果实体
type EffectsConfig struct {
	BreachFlashTicks      int     `yaml:"breachFlashTicks"`
	PickupFlashTicks      int     `yaml:"pickupFlashTicks"`
	DeathEmitterTicks     int     `yaml:"deathEmitterTicks"`
	DeathParticleLifetime int     `yaml:"deathParticleLifetime"`
	DeathDispersion       float64 `yaml:"deathDispersion"`
	DeathAmount           int     `yaml:"deathAmount"`
}

// DefaultGameConfig 返回与 data/game.yaml 相同的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		PlayArea:      PlayAreaConfig{Width: 400, Height: 300},
		StartingLives: 3,
		Player: PlayerConfig{
			SpawnX: 5, SpawnY: 200,
			Width: 10, Height: 40,
			Drag: 0.85, Speed: 1,
			ParticleLifetime: 10, ParticleDispersion: 0.5,
		},
		Economy: EconomyConfig{HoldPrice: 2000, SplitPrice: 1000},
		Spawner: SpawnerConfig{
			Mode:           SpawnerLevel,
			FirstSpawnTime: 30,
			SpawnMarginX:   10,
			Budget: BudgetSpawnConfig{
				BaseResources: 1000, ResourcesPerLevel: 500,
				BaseTime: 1800, TimePerLevel: 600,
				MinUsageFactor: 0.01, MaxUsageFactor: 0.3,
				MinEntryCost: 10, TimeJitter: 10, RetryLimit: 10000,
				BigThreshold: 100, BigResources: 20,
				MediumThreshold: 50, MediumCost: 20,
				EscortTime: 600,
			},
			Level: LevelSpawnConfig{
				BaseTime: 1200, TimePerLevel: 300,
				Weights: ArchetypeWeights{Small: 90, Medium: 8, Big: 2},
			},
		},
		Enemy: EnemyConfig{
			VelocityFactorXMin: 0.3, VelocityFactorXMax: 0.5,
			VelocityFactorYMin: 0.02, VelocityFactorYMax: 0.5,
			SpeedX: 0.02, SpeedY: 0.03, MinSpeed: 0.1,
			ZigzagFactorMin: 0.3, ZigzagFactorMax: 0.5, ZigzagSpeed: 0.1,
			ZigzagDivMin: 0.001, ZigzagDivMax: 0.2,
			EngineParticleLifetime: 10,
		},
		Projectile: ProjectileConfig{
			IntervalMin: 200, IntervalMax: 400,
			FireMinX: 200, FireEdgeMargin: 20,
			SpeedBonus: 3,
			SmallSize:  3, BigSize: 5,
			SplitAngle: 0.1, DeflectOffsetX: -20, HoldOffsetX: 15,
			ParticleLifetime: 3, ParticleDispersion: 1,
		},
		Pickup: PickupConfig{
			IntervalMin: 15 * 60, IntervalMax: 40 * 60,
			Speed: 0.5, Size: 10,
			MarginTop: 10, MarginBottom: 25,
		},
		Effects: EffectsConfig{
			BreachFlashTicks: 5, PickupFlashTicks: 3,
			DeathEmitterTicks: 5, DeathParticleLifetime: 10,
			DeathDispersion: 3, DeathAmount: 4,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏数值配置
// 文件中未出现的字段保留默认值
//
// 参数：
//
//	path - 配置文件路径（"data/" 开头时读取嵌入数据）
//
// 返回：
//
//	*GameConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate 验证配置的合法性
// 返回的错误包装 ErrInvalidConfig
func (c *GameConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		return invalid("playArea must be positive, got %vx%v", c.PlayArea.Width, c.PlayArea.Height)
	}
	if c.StartingLives < 1 {
		return invalid("startingLives must be at least 1, got %d", c.StartingLives)
	}
	if c.Player.Drag <= 0 || c.Player.Drag > 1 {
		return invalid("player.drag must be in (0, 1], got %v", c.Player.Drag)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player box must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Economy.HoldPrice < 0 || c.Economy.SplitPrice < 0 {
		return invalid("prices cannot be negative")
	}

	switch c.Spawner.Mode {
	case SpawnerLevel, SpawnerBudget:
	default:
		return invalid("unknown spawner.mode %q", c.Spawner.Mode)
	}
	if c.Spawner.FirstSpawnTime < 0 {
		return invalid("spawner.firstSpawnTime cannot be negative, got %d", c.Spawner.FirstSpawnTime)
	}

	b := c.Spawner.Budget
	if b.MinUsageFactor <= 0 || b.MaxUsageFactor < b.MinUsageFactor || b.MaxUsageFactor > 1 {
		return invalid("spawner.budget usage factors must satisfy 0 < min <= max <= 1, got %v..%v",
			b.MinUsageFactor, b.MaxUsageFactor)
	}
	if b.MinEntryCost < 0 {
		return invalid("spawner.budget.minEntryCost cannot be negative, got %v", b.MinEntryCost)
	}
	if b.RetryLimit < 1 {
		return invalid("spawner.budget.retryLimit must be at least 1, got %d", b.RetryLimit)
	}
	if b.BaseTime < 1 {
		return invalid("spawner.budget.baseTime must be at least 1, got %d", b.BaseTime)
	}

	if c.Spawner.Level.BaseTime < 1 {
		return invalid("spawner.level.baseTime must be at least 1, got %d", c.Spawner.Level.BaseTime)
	}
	w := c.Spawner.Level.Weights
	if w.Small < 0 || w.Medium < 0 || w.Big < 0 || w.Total() <= 0 {
		return invalid("spawner.level.weights must be non-negative with a positive sum")
	}

	if c.Projectile.IntervalMin < 1 || c.Projectile.IntervalMax < c.Projectile.IntervalMin {
		return invalid("projectile interval range invalid: %d..%d", c.Projectile.IntervalMin, c.Projectile.IntervalMax)
	}
	if c.Pickup.IntervalMin < 1 || c.Pickup.IntervalMax < c.Pickup.IntervalMin {
		return invalid("pickup interval range invalid: %d..%d", c.Pickup.IntervalMin, c.Pickup.IntervalMax)
	}
	if c.Pickup.Size <= 0 {
		return invalid("pickup.size must be positive, got %v", c.Pickup.Size)
	}

	return nil
}

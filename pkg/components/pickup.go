package components

// PickupKind 道具类型
type PickupKind int

const (
	PickupHealth PickupKind = iota // 生命道具：被子弹击中后生命 +1
)

// PickupComponent 标记道具实体
type PickupComponent struct {
	Kind PickupKind
}

// PickupEmitterComponent 道具发射器（每局一个）
type PickupEmitterComponent struct {
	Interval    int // 当前间隔（tick）
	CurrentTime int // 距离上次发射的时间（tick）
	IntervalMin int
	IntervalMax int
}

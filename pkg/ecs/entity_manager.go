package ecs

import "reflect"

// EntityID 是实体的唯一标识符
//
// 低 32 位为槽位索引，高 32 位为代数（generation）。
// 槽位被回收后代数递增，旧的 EntityID 随即失效，不会误指向新实体。
// 0 保留为无效ID。
type EntityID uint64

// InvalidEntity 无效实体ID
const InvalidEntity EntityID = 0

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index 返回槽位索引
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation 返回代数
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

type slotState uint8

const (
	slotFree     slotState = iota // 空闲，可被复用
	slotReserved                  // 已预留，等待 Flush 后可见
	slotAlive                     // 存活，可被查询
)

type slot struct {
	generation uint32
	state      slotState
	components map[reflect.Type]interface{}
}

type commandKind uint8

const (
	cmdCreate commandKind = iota
	cmdInsert
	cmdRemove
	cmdDestroy
)

// command 延迟变更命令
type command struct {
	kind          commandKind
	id            EntityID
	componentType reflect.Type
	component     interface{}
}

// EntityManager 管理所有实体和组件
//
// 结构性变更分为两类：
//   - 立即生效：CreateEntity / AddComponent / RemoveComponent，用于 tick 之外的场景搭建
//   - 延迟生效：ReserveEntity / Insert / Remove / DestroyEntity，在 tick 内由系统调用，
//     统一在 Flush 时按入队顺序应用，保证系统不会看到创建或销毁到一半的实体
//
// 组件数据本身（例如速度字段）可以在 tick 内直接修改。
type EntityManager struct {
	slots []slot
	// 空闲槽位索引列表
	free []uint32
	// 待应用的延迟命令
	pending []command
	// 本 tick 内已标记删除的实体
	doomed map[EntityID]struct{}
	alive  int
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		// 槽位0保留，保证 EntityID 0 永远无效
		slots:   make([]slot, 1, 64),
		free:    make([]uint32, 0, 16),
		pending: make([]command, 0, 64),
		doomed:  make(map[EntityID]struct{}),
	}
}

// allocate 取一个空闲槽位（优先复用）
func (em *EntityManager) allocate(state slotState) EntityID {
	var index uint32
	if n := len(em.free); n > 0 {
		index = em.free[n-1]
		em.free = em.free[:n-1]
	} else {
		em.slots = append(em.slots, slot{})
		index = uint32(len(em.slots) - 1)
	}

	s := &em.slots[index]
	s.generation++
	s.state = state
	s.components = make(map[reflect.Type]interface{})
	return newEntityID(index, s.generation)
}

// lookup 返回ID对应的槽位（代数不匹配或空闲时返回 nil）
func (em *EntityManager) lookup(id EntityID) *slot {
	index := id.Index()
	if index == 0 || int(index) >= len(em.slots) {
		return nil
	}
	s := &em.slots[index]
	if s.state == slotFree || s.generation != id.Generation() {
		return nil
	}
	return s
}

// release 释放槽位，递增代数使旧ID失效
func (em *EntityManager) release(id EntityID) {
	s := em.lookup(id)
	if s == nil {
		return
	}
	if s.state == slotAlive {
		em.alive--
	}
	s.state = slotFree
	s.components = nil
	em.free = append(em.free, id.Index())
}

// CreateEntity 立即创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.allocate(slotAlive)
	em.alive++
	return id
}

// ReserveEntity 预留一个实体ID，实体在下一次 Flush 后才对查询可见
func (em *EntityManager) ReserveEntity() EntityID {
	id := em.allocate(slotReserved)
	em.pending = append(em.pending, command{kind: cmdCreate, id: id})
	return id
}

// AddComponent 立即为存活实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if s := em.lookup(id); s != nil && s.state == slotAlive {
		s.components[reflect.TypeOf(component)] = component
	}
}

// Insert 延迟为实体添加组件（Flush 时生效）
func (em *EntityManager) Insert(id EntityID, component interface{}) {
	em.pending = append(em.pending, command{
		kind:          cmdInsert,
		id:            id,
		componentType: reflect.TypeOf(component),
		component:     component,
	})
}

// RemoveComponent 立即从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if s := em.lookup(id); s != nil {
		delete(s.components, componentType)
	}
}

// Remove 延迟移除指定类型的组件（Flush 时生效）
func (em *EntityManager) Remove(id EntityID, componentType reflect.Type) {
	em.pending = append(em.pending, command{kind: cmdRemove, id: id, componentType: componentType})
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 幂等：对已删除或不存在的ID调用是空操作。
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pending = append(em.pending, command{kind: cmdDestroy, id: id})
	if em.lookup(id) != nil {
		em.doomed[id] = struct{}{}
	}
}

// IsMarkedForDeletion 检查实体是否已在本 tick 内被标记删除（尚未 Flush）
func (em *EntityManager) IsMarkedForDeletion(id EntityID) bool {
	_, ok := em.doomed[id]
	return ok
}

// Flush 按入队顺序应用所有延迟命令
func (em *EntityManager) Flush() {
	for _, cmd := range em.pending {
		switch cmd.kind {
		case cmdCreate:
			if s := em.lookup(cmd.id); s != nil && s.state == slotReserved {
				s.state = slotAlive
				em.alive++
			}
		case cmdInsert:
			if s := em.lookup(cmd.id); s != nil {
				s.components[cmd.componentType] = cmd.component
			}
		case cmdRemove:
			if s := em.lookup(cmd.id); s != nil {
				delete(s.components, cmd.componentType)
			}
		case cmdDestroy:
			em.release(cmd.id)
		}
	}
	// 清空切片，保留容量
	clear(em.pending)
	em.pending = em.pending[:0]
	clear(em.doomed)
}

// Clear 立即销毁所有实体并丢弃未应用的命令
func (em *EntityManager) Clear() {
	for i := 1; i < len(em.slots); i++ {
		s := &em.slots[i]
		if s.state != slotFree {
			em.release(newEntityID(uint32(i), s.generation))
		}
	}
	clear(em.pending)
	em.pending = em.pending[:0]
	clear(em.doomed)
}

// IsAlive 检查实体是否存活（预留但未 Flush 的实体不算存活）
func (em *EntityManager) IsAlive(id EntityID) bool {
	s := em.lookup(id)
	return s != nil && s.state == slotAlive
}

// EntityCount 返回存活实体数量
func (em *EntityManager) EntityCount() int {
	return em.alive
}

// PendingCount 返回尚未应用的延迟命令数量
func (em *EntityManager) PendingCount() int {
	return len(em.pending)
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	s := em.lookup(id)
	if s == nil || s.state != slotAlive {
		return nil, false
	}
	comp, found := s.components[componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有存活实体
// 结果按槽位索引排序，保证同一世界状态下的遍历顺序确定
//
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for i := 1; i < len(em.slots); i++ {
		s := &em.slots[i]
		if s.state != slotAlive {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := s.components[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, newEntityID(uint32(i), s.generation))
		}
	}

	return result
}

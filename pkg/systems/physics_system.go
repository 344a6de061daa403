package systems

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// AABR 轴对齐包围矩形
type AABR struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewAABR 由左上角位置和碰撞盒构造矩形
func NewAABR(pos *components.PositionComponent, box *components.BoundingBoxComponent) AABR {
	return AABR{
		MinX: pos.X,
		MinY: pos.Y,
		MaxX: pos.X + box.Width,
		MaxY: pos.Y + box.Height,
	}
}

// Collides 检查两个矩形是否相交
// 两个轴上的区间都重叠才算相交，边缘刚好接触不算
func (a AABR) Collides(b AABR) bool {
	return a.MinX < b.MaxX && a.MaxX > b.MinX && a.MinY < b.MaxY && a.MaxY > b.MinY
}

// Center 返回矩形中心
func (a AABR) Center() (float64, float64) {
	return (a.MinX + a.MaxX) / 2, (a.MinY + a.MaxY) / 2
}

// entityAABR 返回实体的包围矩形，缺少位置或碰撞盒时 ok 为 false
func entityAABR(em *ecs.EntityManager, id ecs.EntityID) (AABR, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return AABR{}, false
	}
	box, ok := ecs.GetComponent[*components.BoundingBoxComponent](em, id)
	if !ok {
		return AABR{}, false
	}
	return NewAABR(pos, box), true
}

// PhysicsSystem 空间/物理阶段
//
// 每个 tick 依次执行：
//  1. 阻尼：velocity *= drag
//  2. 积分：position += velocity
//  3. 上下边界反弹：越过顶部时贴边并让垂直速度非负，越过底部时贴边并让垂直速度非正
//
// 水平方向不做限制，越过左右边界由突破和子弹系统处理。
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// Update 执行一个 tick 的物理更新
func (s *PhysicsSystem) Update(gs *game.GameState) {
	s.applyDrag()
	s.integrate()
	s.collideBounds(gs.Config.PlayArea.Height)
}

func (s *PhysicsSystem) applyDrag() {
	for _, id := range ecs.GetEntitiesWith2[*components.DragComponent, *components.VelocityComponent](s.em) {
		drag, _ := ecs.GetComponent[*components.DragComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		vel.X *= drag.Factor
		vel.Y *= drag.Factor
	}
}

func (s *PhysicsSystem) integrate() {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.X
		pos.Y += vel.Y
	}
}

func (s *PhysicsSystem) collideBounds(height float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.BoundingBoxComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		box, _ := ecs.GetComponent[*components.BoundingBoxComponent](s.em, id)
		// 速度是可选的：没有速度的实体只做贴边
		vel, hasVel := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		switch {
		case pos.Y < 0:
			pos.Y = 0
			if hasVel && vel.Y < 0 {
				vel.Y = -vel.Y
			}
		case pos.Y+box.Height > height:
			pos.Y = height - box.Height
			if hasVel && vel.Y > 0 {
				vel.Y = -vel.Y
			}
		}
	}
}

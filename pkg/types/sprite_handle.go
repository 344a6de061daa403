package types

// SpriteHandle 外部精灵服务返回的不透明句柄
//
// 模拟核心只保存和转发句柄，从不访问像素数据。
type SpriteHandle uint32

// NoSprite 表示“没有精灵”（例如不可分裂的子弹的分裂精灵）
const NoSprite SpriteHandle = 0

// IsValid 检查句柄是否指向一个精灵
func (h SpriteHandle) IsValid() bool {
	return h != NoSprite
}

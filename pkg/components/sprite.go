package components

import "github.com/gonewx/scrapshot/pkg/types"

// SpriteComponent 存储实体的视觉表现（外部精灵服务的句柄）
type SpriteComponent struct {
	Handle types.SpriteHandle
}

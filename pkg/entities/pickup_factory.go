package entities

import (
	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/config"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
)

// NewHealthPickup 创建生命道具，从右边界缓慢向左漂移
// 被任意子弹击中时生命 +1
func NewHealthPickup(em *ecs.EntityManager, cfg *config.GameConfig, sprites *game.Sprites, x, y float64) ecs.EntityID {
	id := em.ReserveEntity()
	em.Insert(id, &components.PickupComponent{Kind: components.PickupHealth})
	em.Insert(id, &components.PositionComponent{X: x, Y: y})
	em.Insert(id, &components.VelocityComponent{X: -cfg.Pickup.Speed})
	em.Insert(id, &components.BoundingBoxComponent{Width: cfg.Pickup.Size, Height: cfg.Pickup.Size})
	em.Insert(id, &components.SpriteComponent{Handle: sprites.HealthPickup})
	return id
}

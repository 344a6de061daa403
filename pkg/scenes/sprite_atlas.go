package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// 固定外观的精灵颜色
var (
	smallProjectileColor = color.RGBA{R: 0xFF, G: 0xD0, B: 0x40, A: 0xFF}
	bigProjectileColor   = color.RGBA{R: 0xFF, G: 0x70, B: 0x30, A: 0xFF}
	splitProjectileColor = color.RGBA{R: 0xFF, G: 0xF0, B: 0xA0, A: 0xFF}
	particleColor        = color.RGBA{R: 0xFF, G: 0xA0, B: 0x40, A: 0xFF}
	pickupColor          = color.RGBA{R: 0x40, G: 0xE0, B: 0x60, A: 0xFF}
)

// SpriteAtlas 程序化生成的精灵图集
//
// 实现 game.SpriteProvider：每局开始时按种子重新生成舰船外观，
// 渲染端通过句柄取回图像。句柄只增不减，旧一局的图像在新图集生成后释放。
type SpriteAtlas struct {
	images map[types.SpriteHandle]*ebiten.Image
	next   types.SpriteHandle
	logger *zap.Logger
}

// NewSpriteAtlas 创建空图集
func NewSpriteAtlas(logger *zap.Logger) *SpriteAtlas {
	return &SpriteAtlas{
		images: make(map[types.SpriteHandle]*ebiten.Image),
		next:   types.NoSprite + 1,
		logger: logger.Named("SpriteAtlas"),
	}
}

// BuildRoster 实现 game.SpriteProvider
func (a *SpriteAtlas) BuildRoster(seed uint64) (game.Sprites, error) {
	rng := game.NewRandom(seed)

	images := make(map[types.SpriteHandle]*ebiten.Image)
	next := a.next
	add := func(name string, img *image.RGBA) (types.SpriteHandle, error) {
		if img.Bounds().Empty() {
			return types.NoSprite, fmt.Errorf("generate %s sprite: empty image", name)
		}
		h := next
		next++
		images[h] = ebiten.NewImageFromImage(img)
		return h, nil
	}

	var sprites game.Sprites
	var err error
	steps := []struct {
		name   string
		target *types.SpriteHandle
		build  func() *image.RGBA
	}{
		{"player", &sprites.Player, func() *image.RGBA { return generateShip(rng, playerShipMask) }},
		{"small enemy", &sprites.Enemies[types.EnemySmall], func() *image.RGBA { return generateShip(rng, smallShipMask) }},
		{"medium enemy", &sprites.Enemies[types.EnemyMedium], func() *image.RGBA { return generateShip(rng, mediumShipMask) }},
		{"big enemy", &sprites.Enemies[types.EnemyBig], func() *image.RGBA { return generateShip(rng, bigShipMask) }},
		{"small projectile", &sprites.SmallProjectile, func() *image.RGBA { return generateBall(3, smallProjectileColor) }},
		{"big projectile", &sprites.BigProjectile, func() *image.RGBA { return generateBall(6, bigProjectileColor) }},
		{"split projectile", &sprites.SplitProjectile, func() *image.RGBA { return generateBall(3, splitProjectileColor) }},
		{"particle", &sprites.Particle, func() *image.RGBA { return generateBall(1, particleColor) }},
		{"health pickup", &sprites.HealthPickup, func() *image.RGBA { return generateCross(10, pickupColor) }},
	}
	for _, step := range steps {
		if *step.target, err = add(step.name, step.build()); err != nil {
			return game.Sprites{}, err
		}
	}

	for _, img := range a.images {
		img.Deallocate()
	}
	a.images = images
	a.next = next
	a.logger.Debug("ship roster generated",
		zap.Uint64("seed", seed),
		zap.Int("sprites", len(images)))
	return sprites, nil
}

// Image 返回句柄对应的图像，未知句柄返回 nil
func (a *SpriteAtlas) Image(h types.SpriteHandle) *ebiten.Image {
	return a.images[h]
}

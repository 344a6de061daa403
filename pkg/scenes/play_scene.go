package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/scrapshot/pkg/components"
	"github.com/gonewx/scrapshot/pkg/ecs"
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/gonewx/scrapshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 闪光最大不透明度（完整闪光会遮住画面）
const flashAlpha = 0x50

var missingSpriteColor = color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}

// PlayScene 游戏进行中的画面：星空、实体、粒子、闪光和 HUD
// 同时作为其他场景的底图
type PlayScene struct {
	atlas      *SpriteAtlas
	background *ebiten.Image
}

// NewPlayScene 创建游戏画面
//
// 参数:
//   - atlas: 精灵图集
//   - width, height: 游戏区域尺寸
//   - seed: 星空背景的随机种子
func NewPlayScene(atlas *SpriteAtlas, width, height int, seed uint64) *PlayScene {
	return &PlayScene{
		atlas:      atlas,
		background: ebiten.NewImageFromImage(generateStarfield(game.NewRandom(seed), width, height)),
	}
}

// Draw 实现 Scene
func (s *PlayScene) Draw(screen *ebiten.Image, frame Frame) {
	s.drawWorld(screen, frame.World)
	s.drawHUD(screen, frame)
}

// drawWorld 绘制背景和所有可见实体
func (s *PlayScene) drawWorld(screen *ebiten.Image, em *ecs.EntityManager) {
	screen.DrawImage(s.background, nil)

	for _, id := range ecs.GetEntitiesWith3[
		*components.SpriteComponent,
		*components.PositionComponent,
		*components.BoundingBoxComponent,
	](em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		box, _ := ecs.GetComponent[*components.BoundingBoxComponent](em, id)
		s.drawSprite(screen, sprite, pos.X, pos.Y, box.Width, box.Height)
	}

	// 粒子没有碰撞盒，按 1x1 绘制
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			s.drawSprite(screen, sprite, pos.X, pos.Y, 1, 1)
			continue
		}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), 1, 1, particleColor, false)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ScreenFlashComponent](em) {
		flash, _ := ecs.GetComponent[*components.ScreenFlashComponent](em, id)
		left := flash.Duration
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); ok {
			left = lifetime.TicksLeft
		}
		bounds := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()),
			flashTint(flash, left), false)
	}
}

// flashTint 返回闪光的预乘颜色，随剩余时间淡出
func flashTint(flash *components.ScreenFlashComponent, ticksLeft int) color.RGBA {
	alpha := uint16(flashAlpha * utils.EaseOutQuad(utils.Remaining(ticksLeft, flash.Duration)))
	return color.RGBA{
		R: uint8(uint16(flash.Color.R) * alpha / 0xFF),
		G: uint8(uint16(flash.Color.G) * alpha / 0xFF),
		B: uint8(uint16(flash.Color.B) * alpha / 0xFF),
		A: uint8(alpha),
	}
}

// drawSprite 将精灵缩放到碰撞盒大小绘制，缺少图像时画洋红色方块
func (s *PlayScene) drawSprite(screen *ebiten.Image, sprite *components.SpriteComponent, x, y, w, h float64) {
	img := s.atlas.Image(sprite.Handle)
	if img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), missingSpriteColor, false)
		return
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// drawHUD 绘制顶部状态栏
func (s *PlayScene) drawHUD(screen *ebiten.Image, frame Frame) {
	hud := frame.HUD
	drawLabel(screen, fmt.Sprintf("Level %d", hud.Level), 5, 3, labelColor)
	drawLabel(screen, fmt.Sprintf("Lives %d", hud.Lives), 80, 3, labelColor)
	drawLabel(screen, fmt.Sprintf("Scrap %d", hud.Money), 155, 3, labelColor)
	drawLabel(screen, fmt.Sprintf("Enemies %d", hud.EnemiesLeft), 260, 3, labelColor)
}

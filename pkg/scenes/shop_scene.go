package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonColor      = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	buttonHoverColor = color.RGBA{R: 0x4A, G: 0x4A, B: 0x4A, A: 0xFF}
)

// ShopScene 关卡间的商店画面
// 按钮位置来自 game.ShopButtons，与商店系统的点击判定一致
type ShopScene struct {
	play *PlayScene
}

// NewShopScene 创建商店画面
func NewShopScene(play *PlayScene) *ShopScene {
	return &ShopScene{play: play}
}

// Draw 实现 Scene
func (s *ShopScene) Draw(screen *ebiten.Image, frame Frame) {
	screen.DrawImage(s.play.background, nil)

	gs := frame.State
	buttons := game.ShopButtons(gs.Config.PlayArea)
	x, y := buttons[0].X, buttons[0].Y
	drawLabel(screen, "Click to buy upgrade.", x, y-50, labelColor)
	drawLabel(screen, fmt.Sprintf("You have %d scrap.", frame.HUD.Money), x, y-30, labelColor)

	mx, my := float64(gs.Input.MouseX), float64(gs.Input.MouseY)
	for _, button := range buttons {
		fill := buttonColor
		if button.Contains(mx, my) {
			fill = buttonHoverColor
		}
		vector.DrawFilledRect(screen,
			float32(button.X), float32(button.Y),
			float32(button.Width), float32(button.Height),
			fill, false)
		drawLabel(screen, buttonLabel(gs, button.Action, frame.HUD.Level), button.X+10, button.Y+5, labelColor)
	}
}

// buttonLabel 返回按钮文字
func buttonLabel(gs *game.GameState, action game.ShopAction, level int) string {
	kind, isUpgrade := action.Upgrade()
	if !isUpgrade {
		return fmt.Sprintf("Start level %d", level+1)
	}
	if gs.Upgrades.Has(kind) {
		return "Already bought"
	}
	price := game.UpgradePrice(gs.Config.Economy, kind)
	switch kind {
	case game.UpgradeHold:
		return fmt.Sprintf("Hold the ball & release it on click\n(%d scrap)", price)
	default:
		return fmt.Sprintf("Big balls split on contact\n(%d scrap)", price)
	}
}

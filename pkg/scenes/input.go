package scenes

import (
	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 从 ebiten 读取键盘和鼠标，实现 game.InputProvider
// 必须在 ebiten.Game.Update 中轮询，边沿触发的按键依赖 inpututil 的帧状态
type EbitenInput struct{}

// Poll 实现 game.InputProvider
func (EbitenInput) Poll() game.InputState {
	mx, my := ebiten.CursorPosition()
	return game.InputState{
		Up:   ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Start: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),

		MouseX:    mx,
		MouseY:    my,
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Clicked:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

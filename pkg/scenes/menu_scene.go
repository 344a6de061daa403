package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene 主菜单：标题、操作说明和历史最佳成绩
type MenuScene struct {
	play *PlayScene
}

// NewMenuScene 创建主菜单，背景复用游戏画面的星空
func NewMenuScene(play *PlayScene) *MenuScene {
	return &MenuScene{play: play}
}

// Draw 实现 Scene
func (s *MenuScene) Draw(screen *ebiten.Image, frame Frame) {
	screen.DrawImage(s.play.background, nil)

	cx := float64(screen.Bounds().Dx()) / 2
	drawCentered(screen, "SCRAPSHOT", cx, 80, labelColor)
	drawCentered(screen, "Bounce the shots back at the fleet.\nUp/Down or W/S to move.", cx, 120, dimColor)
	drawCentered(screen, "Click or press Enter to start", cx, 180, labelColor)

	if best := frame.Best; best != nil {
		drawCentered(screen, fmt.Sprintf("Best: level %d, %d scrap", best.Level, best.ScrapEarned), cx, 230, dimColor)
	}
}

// GameOverScene 结束画面：冻结的最后一帧和本局成绩
type GameOverScene struct {
	play *PlayScene
}

// NewGameOverScene 创建结束画面
func NewGameOverScene(play *PlayScene) *GameOverScene {
	return &GameOverScene{play: play}
}

// Draw 实现 Scene
func (s *GameOverScene) Draw(screen *ebiten.Image, frame Frame) {
	s.play.drawWorld(screen, frame.World)

	cx := float64(screen.Bounds().Dx()) / 2
	stats := frame.State.Stats
	drawCentered(screen, "GAME OVER", cx, 90, labelColor)
	drawCentered(screen, fmt.Sprintf("Reached level %d\n%d scrap, %d ships destroyed",
		frame.HUD.Level, stats.ScrapEarned, stats.EnemiesDestroyed), cx, 120, dimColor)
	drawCentered(screen, "Click or press Enter to try again", cx, 190, labelColor)
}

package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const labelLineSpacing = 14

var (
	labelFace  = text.NewGoXFace(basicfont.Face7x13)
	labelColor = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	dimColor   = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF}
)

// drawLabel 在 (x, y) 处绘制左上对齐的文字，支持换行
func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = labelLineSpacing
	text.Draw(screen, s, labelFace, op)
}

// drawCentered 绘制水平居中的文字
func drawCentered(screen *ebiten.Image, s string, centerX, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = labelLineSpacing
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, labelFace, op)
}

package scenes

import (
	"image"
	"image/color"

	"github.com/gonewx/scrapshot/pkg/game"
)

const (
	brightStars = 200
	dimStars    = 200
)

var (
	spaceColor      = color.RGBA{R: 0x05, G: 0x05, B: 0x08, A: 0xFF}
	brightStarColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xEE, A: 0xFF}
	dimStarColor    = color.RGBA{R: 0x66, G: 0x66, B: 0x77, A: 0xFF}
)

// generateStarfield 生成固定的星空背景
func generateStarfield(rng *game.Random, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range len(img.Pix) / 4 {
		copy(img.Pix[i*4:], []uint8{spaceColor.R, spaceColor.G, spaceColor.B, spaceColor.A})
	}
	if width <= 0 || height <= 0 {
		return img
	}
	for range dimStars {
		img.SetRGBA(rng.Intn(width), rng.Intn(height), dimStarColor)
	}
	for range brightStars {
		img.SetRGBA(rng.Intn(width), rng.Intn(height), brightStarColor)
	}
	return img
}

package scenes

import (
	"image"
	"testing"

	"github.com/gonewx/scrapshot/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShip(t *testing.T) {
	masks := map[string][]string{
		"小型":  smallShipMask,
		"中型":  mediumShipMask,
		"大型":  bigShipMask,
		"玩家": playerShipMask,
	}
	for name, mask := range masks {
		t.Run(name, func(t *testing.T) {
			img := generateShip(game.NewRandom(11), mask)
			b := img.Bounds()
			assert.Equal(t, len(mask[0]), b.Dx())
			assert.Equal(t, len(mask)*2, b.Dy())

			for y := 0; y < b.Dy()/2; y++ {
				for x := 0; x < b.Dx(); x++ {
					top := img.RGBAAt(x, y).A != 0
					bottom := img.RGBAAt(x, b.Dy()-1-y).A != 0
					assert.Equal(t, top, bottom, "hull must be mirrored at (%d,%d)", x, y)
				}
			}

			for y, row := range mask {
				for x, cell := range row {
					if cell == '2' {
						assert.NotZero(t, img.RGBAAt(x, y).A, "fixed hull cell (%d,%d) must be drawn", x, y)
					}
				}
			}
		})
	}
}

func TestGenerateShipIsSeeded(t *testing.T) {
	a := generateShip(game.NewRandom(5), mediumShipMask)
	b := generateShip(game.NewRandom(5), mediumShipMask)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestGenerateBallAndCross(t *testing.T) {
	ball := generateBall(6, bigProjectileColor)
	assert.Equal(t, image.Rect(0, 0, 6, 6), ball.Bounds())
	assert.Equal(t, bigProjectileColor, ball.RGBAAt(3, 3))
	assert.Zero(t, ball.RGBAAt(0, 0).A, "corners stay transparent")

	dot := generateBall(1, particleColor)
	assert.Equal(t, particleColor, dot.RGBAAt(0, 0))

	cross := generateCross(10, pickupColor)
	assert.Equal(t, pickupColor, cross.RGBAAt(5, 0))
	assert.Equal(t, pickupColor, cross.RGBAAt(0, 5))
	assert.Zero(t, cross.RGBAAt(0, 0).A)
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{"红", 0, 1, 1, 255, 0, 0},
		{"绿", 120, 1, 1, 0, 255, 0},
		{"蓝", 240, 1, 1, 0, 0, 255},
		{"负色相回绕", -120, 1, 1, 0, 0, 255},
		{"灰", 33, 0, 0.5, 127, 127, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := hsv(tt.h, tt.s, tt.v)
			assert.Equal(t, tt.r, c.R)
			assert.Equal(t, tt.g, c.G)
			assert.Equal(t, tt.b, c.B)
			assert.Equal(t, uint8(0xFF), c.A)
		})
	}
}

func TestGenerateStarfield(t *testing.T) {
	img := generateStarfield(game.NewRandom(1), 40, 30)
	require.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

	stars := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			c := img.RGBAAt(x, y)
			assert.Equal(t, uint8(0xFF), c.A)
			if c != spaceColor {
				stars++
			}
		}
	}
	assert.Positive(t, stars)
}

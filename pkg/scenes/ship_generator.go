package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/scrapshot/pkg/game"
)

// 船体蒙版单元
//
//	'.' 空白
//	'1' 随机决定是否为船体
//	'2' 一定是船体
//
// 蒙版只描述上半部分，生成时沿水平中线镜像出下半部分。
var (
	smallShipMask = []string{
		"..........",
		"......11..",
		"....1111..",
		"..12111...",
		".112111111",
		"1122211111",
		"1122221111",
		"1222221111",
	}
	mediumShipMask = []string{
		".............",
		"....11111111.",
		"...112222211.",
		"..11111211...",
		"..111111211..",
		".1111111121..",
		".11111111121.",
		"..1122221121.",
		"..12111121121",
		".112111121211",
	}
	bigShipMask = []string{
		"..............",
		"......1111....",
		"....11222211..",
		"...1122222211.",
		"..111111112111",
		".1111111111211",
		".11222222211..",
		"1112111111211.",
		"1121111111121.",
		"1121111111112.",
		"1112222222211.",
		".111111111111.",
	}
	playerShipMask = []string{
		"......",
		"..11..",
		".1221.",
		".1221.",
		"11221.",
		"1122..",
		"11221.",
		".12221",
		".12221",
		"112211",
		"112211",
		"1122..",
		".1221.",
		"..122.",
		"..1221",
		"...121",
		"...122",
		"....12",
		"....12",
		".....2",
	}
)

// shipPalette 一艘船的配色
type shipPalette struct {
	hue        float64
	saturation float64
}

// generateShip 按蒙版生成一艘随机船体
//
// 参数:
//   - rng: 随机源（决定 '1' 单元的取舍和配色）
//   - mask: 上半部分蒙版
//
// 返回:
//   - *image.RGBA: 宽度与蒙版相同、高度为蒙版两倍的图像，船体外沿描暗边
func generateShip(rng *game.Random, mask []string) *image.RGBA {
	height := len(mask)
	width := 0
	for _, row := range mask {
		width = max(width, len(row))
	}

	solid := make([][]bool, height*2)
	for y := range solid {
		solid[y] = make([]bool, width)
	}
	for y, row := range mask {
		for x, cell := range row {
			filled := cell == '2' || (cell == '1' && rng.Bool())
			solid[y][x] = filled
			solid[height*2-1-y][x] = filled
		}
	}

	palette := shipPalette{
		hue:        rng.Range(0, 360),
		saturation: rng.Range(0.4, 0.8),
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height*2))
	for y := range solid {
		for x := range solid[y] {
			switch {
			case solid[y][x]:
				img.SetRGBA(x, y, palette.body(rng, y, height*2))
			case touchesHull(solid, x, y):
				img.SetRGBA(x, y, color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF})
			}
		}
	}
	return img
}

// touchesHull 空白单元是否与船体相邻（用于描边）
func touchesHull(solid [][]bool, x, y int) bool {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := x+d[0], y+d[1]
		if ny >= 0 && ny < len(solid) && nx >= 0 && nx < len(solid[ny]) && solid[ny][nx] {
			return true
		}
	}
	return false
}

// body 返回船体像素颜色：越靠近中线越亮，并带少量亮度噪声
func (p shipPalette) body(rng *game.Random, y, height int) color.RGBA {
	center := float64(height-1) / 2
	shade := 1 - math.Abs(float64(y)-center)/float64(height)
	value := min(max(0.35+0.55*shade+rng.Range(-0.08, 0.08), 0), 1)
	return hsv(p.hue+rng.Range(-12, 12), p.saturation, value)
}

// hsv 将 HSV（色相 0-360，饱和度/明度 0-1）转换为不透明的 RGBA
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 0xFF,
	}
}

// generateBall 生成实心圆（子弹、道具）
func generateBall(size int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// generateCross 生成十字形的生命道具
func generateCross(size int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	arm := max(size/3, 1)
	lo, hi := (size-arm)/2, (size-arm)/2+arm
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x >= lo && x < hi) || (y >= lo && y < hi) {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

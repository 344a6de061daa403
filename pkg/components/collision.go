package components

// BoundingBoxComponent 定义实体的碰撞边界框
// 以 PositionComponent 为左上角：min = position, max = position + size
// Width、Height 必须大于 0
type BoundingBoxComponent struct {
	Width  float64 // 碰撞盒宽度
	Height float64 // 碰撞盒高度
}

// CenterOffset 返回碰撞盒中心相对于左上角的偏移
func (b BoundingBoxComponent) CenterOffset() (float64, float64) {
	return b.Width / 2, b.Height / 2
}

package components

import "image/color"

// ScreenFlashComponent 全屏闪光效果
// 配合 LifetimeComponent 使用：生命耗尽时闪光消失
//
// 使用场景：
//   - 敌机或子弹突破左边界：红色闪光
//   - 拾取生命道具：绿色闪光
type ScreenFlashComponent struct {
	Color    color.RGBA
	Duration int // 总时长（tick），渲染端据此计算淡出
}

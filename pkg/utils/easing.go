package utils

// 缓动函数
//
// 输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]，超出范围的输入先被截断。
// 只用于渲染端的视觉过渡，模拟核心不使用。

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}

// EaseOutQuad 二次方缓出：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Remaining 返回剩余比例 left/total，total <= 0 时返回 0
func Remaining(left, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Clamp01(float64(left) / float64(total))
}

package game

// InputState 一个 tick 的输入快照（只读）
type InputState struct {
	Up    bool // 向上（方向键/W）
	Down  bool // 向下（方向键/S）
	Start bool // 开始/重新开始（回车/空格，边沿触发）

	MouseX    int
	MouseY    int
	MouseDown bool // 鼠标左键按住
	Clicked   bool // 鼠标左键在本 tick 按下（边沿触发）
}

// InputProvider 外部输入设备
// 每个 tick 轮询一次，模拟核心不直接访问输入设备
type InputProvider interface {
	Poll() InputState
}

// ScriptedInput 按顺序回放输入快照的输入源（无头运行和测试使用）
// 快照用完后返回空输入
type ScriptedInput struct {
	frames []InputState
	next   int
}

// NewScriptedInput 创建回放输入源
func NewScriptedInput(frames ...InputState) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// Poll 实现 InputProvider
func (s *ScriptedInput) Poll() InputState {
	if s.next >= len(s.frames) {
		return InputState{}
	}
	frame := s.frames[s.next]
	s.next++
	return frame
}

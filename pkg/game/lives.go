package game

// Lives 玩家剩余生命
// 不会小于 0，到达 0 时本局结束
type Lives struct {
	count int
}

// NewLives 创建指定初始值的生命
func NewLives(count int) Lives {
	if count < 0 {
		count = 0
	}
	return Lives{count: count}
}

// Increase 生命 +1（拾取生命道具）
func (l *Lives) Increase() {
	l.count++
}

// Reduce 生命 -1（敌机或子弹突破左边界），最低为 0
func (l *Lives) Reduce() {
	if l.count > 0 {
		l.count--
	}
}

// IsDead 生命是否耗尽
func (l *Lives) IsDead() bool {
	return l.count == 0
}

// Count 返回剩余生命
func (l *Lives) Count() int {
	return l.count
}

// Reset 重置为指定值
func (l *Lives) Reset(count int) {
	*l = NewLives(count)
}

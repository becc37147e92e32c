package components

// MessagePopDuration 祝贺文字弹出动画时长（秒）
const MessagePopDuration = 0.4

// RevealMessageComponent 祝贺文字组件
// 卡片完全揭晓后显示，重新初始化卡片时隐藏
type RevealMessageComponent struct {
	Text     string
	FontSize float64
	Visible  bool

	// Elapsed 显示后经过的时间（秒），驱动弹出动画
	Elapsed float64
}

// Show 显示文字并从头播放弹出动画
func (m *RevealMessageComponent) Show() {
	m.Visible = true
	m.Elapsed = 0
}

// Hide 隐藏文字
func (m *RevealMessageComponent) Hide() {
	m.Visible = false
	m.Elapsed = 0
}

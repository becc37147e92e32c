package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}

// Viewport 提供当前逻辑屏幕尺寸
// 由 App.Layout 每帧更新，场景通过它检测窗口尺寸和方向变化
type Viewport struct {
	width, height int
}

// NewViewport 创建视口
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Set 更新视口尺寸
func (v *Viewport) Set(width, height int) {
	v.width = width
	v.height = height
}

// Dimensions 返回视口尺寸
func (v *Viewport) Dimensions() (int, int) {
	return v.width, v.height
}

// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 指针输入来源
// 默认实现直接读取 Ebitengine 的鼠标和触摸状态，测试中可替换为假实现
type PointerSource interface {
	// JustPressedTouchIDs 本帧新按下的触摸ID
	JustPressedTouchIDs() []ebiten.TouchID
	// TouchIDs 当前所有活动的触摸ID
	TouchIDs() []ebiten.TouchID
	// TouchPosition 指定触摸的位置
	TouchPosition(id ebiten.TouchID) (int, int)
	// MouseJustPressed 鼠标左键本帧是否刚按下
	MouseJustPressed() bool
	// MousePressed 鼠标左键是否按住
	MousePressed() bool
	// CursorPosition 鼠标位置
	CursorPosition() (int, int)
}

// EbitenPointerSource 读取 Ebitengine 输入状态的 PointerSource
type EbitenPointerSource struct{}

func (EbitenPointerSource) JustPressedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(nil)
}

func (EbitenPointerSource) TouchIDs() []ebiten.TouchID {
	return ebiten.AppendTouchIDs(nil)
}

func (EbitenPointerSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (EbitenPointerSource) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenPointerSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (EbitenPointerSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// ============================================================================
// 拖拽状态管理器 - 刮擦手势（按下 / 移动 / 抬起）
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

func (s DragState) String() string {
	switch s {
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	}
	return "none"
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// Moved 本帧位置是否发生变化
	Moved bool
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，每个场景持有自己的实例
type DragManager struct {
	source PointerSource
	info   DragInfo
}

// NewDragManager 创建拖拽管理器
// source 为 nil 时使用 EbitenPointerSource
func NewDragManager(source PointerSource) *DragManager {
	if source == nil {
		source = EbitenPointerSource{}
	}
	return &DragManager{
		source: source,
		info: DragInfo{
			State:   DragStateNone,
			TouchID: -1,
		},
	}
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.info.Moved = false

	switch dm.info.State {
	case DragStateNone:
		// 检测新的拖拽开始
		dm.checkDragStart()

	case DragStateStarted, DragStateDragging:
		// 检测拖拽结束或更新位置
		if dm.checkDragEnd() {
			dm.info.State = DragStateEnded
		} else {
			dm.info.State = DragStateDragging
			dm.updateCurrentPosition()
		}

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置后立即检测新的按下
		dm.Reset()
		dm.checkDragStart()
	}
}

// checkDragStart 检测拖拽开始
func (dm *DragManager) checkDragStart() {
	// 优先检测触摸输入
	if ids := dm.source.JustPressedTouchIDs(); len(ids) > 0 {
		touchID := ids[0]
		x, y := dm.source.TouchPosition(touchID)
		dm.info = DragInfo{
			State:        DragStateStarted,
			StartX:       x,
			StartY:       y,
			CurrentX:     x,
			CurrentY:     y,
			TouchID:      touchID,
			IsTouchInput: true,
		}
		return
	}

	// 检测鼠标输入
	if dm.source.MouseJustPressed() {
		x, y := dm.source.CursorPosition()
		dm.info = DragInfo{
			State:    DragStateStarted,
			StartX:   x,
			StartY:   y,
			CurrentX: x,
			CurrentY: y,
			TouchID:  -1,
		}
	}
}

// checkDragEnd 检测拖拽结束
func (dm *DragManager) checkDragEnd() bool {
	if dm.info.IsTouchInput {
		for _, id := range dm.source.TouchIDs() {
			if id == dm.info.TouchID {
				return false // 触摸仍然活跃
			}
		}
		return true // 触摸已释放，保留最后位置
	}

	return !dm.source.MousePressed()
}

// updateCurrentPosition 更新当前位置
func (dm *DragManager) updateCurrentPosition() {
	var x, y int
	if dm.info.IsTouchInput {
		x, y = dm.source.TouchPosition(dm.info.TouchID)
	} else {
		x, y = dm.source.CursorPosition()
	}
	if x != dm.info.CurrentX || y != dm.info.CurrentY {
		dm.info.Moved = true
		dm.info.CurrentX, dm.info.CurrentY = x, y
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// IsTouchDrag 是否为触摸拖拽
func (dm *DragManager) IsTouchDrag() bool {
	return dm.info.IsTouchInput
}

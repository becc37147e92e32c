package components

import (
	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/config"
	"github.com/google/uuid"
)

// ScratchCardComponent 刮刮卡组件
// 持有卡片表面（奖品层 + 遮罩层）以及它在屏幕上的摆放信息
//
// 一个场景只有一张卡片，但卡片实例会在"换一张"时更新 CardID。
type ScratchCardComponent struct {
	// CardID 当前卡片实例的唯一标识（日志和统计使用）
	CardID uuid.UUID

	// Surface 卡片表面，所有刮擦和揭晓逻辑都在这里
	Surface *scratch.Surface

	// Orientation 当前表面尺寸对应的屏幕方向
	Orientation config.Orientation

	// WindowWidth / WindowHeight 上次布局时的窗口尺寸，用于检测尺寸变化
	WindowWidth  int
	WindowHeight int

	// Placement 卡片在屏幕上的位置和缩放
	Placement config.CardPlacement

	// Initialized 表面是否已按当前尺寸初始化
	Initialized bool

	// FullyRevealed 淡出完成（遮罩已隐藏）
	FullyRevealed bool
}

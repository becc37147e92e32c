// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供屏幕坐标与卡片表面坐标之间的转换。
//
// # 坐标系统概述
//
//   - **屏幕坐标**：相对于逻辑屏幕左上角（Layout 返回的尺寸）
//   - **表面坐标**：相对于卡片表面左上角，单位是表面像素
//
// 卡片可能被缩小显示（窗口放不下时），因此转换时需要乘以
// 表面尺寸 / 显示尺寸 的比例：
//
//	surfaceX = (screenX - placement.X) * surfaceWidth / placement.Width
//	surfaceY = (screenY - placement.Y) * surfaceHeight / placement.Height
package utils

import (
	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/config"
)

// ScreenToSurface 将屏幕坐标转换为卡片表面坐标
// 结果可能落在表面之外（例如鼠标拖出卡片），调用方不需要裁剪
func ScreenToSurface(screenX, screenY int, p config.CardPlacement, surfaceWidth, surfaceHeight int) scratch.Point {
	if p.Width <= 0 || p.Height <= 0 {
		return scratch.Point{X: float64(screenX) - p.X, Y: float64(screenY) - p.Y}
	}
	return scratch.Point{
		X: (float64(screenX) - p.X) * float64(surfaceWidth) / p.Width,
		Y: (float64(screenY) - p.Y) * float64(surfaceHeight) / p.Height,
	}
}

// IsInsidePlacement 检查屏幕坐标是否落在卡片显示区域内
func IsInsidePlacement(screenX, screenY int, p config.CardPlacement) bool {
	x, y := float64(screenX), float64(screenY)
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

package config

// 布局配置常量
// 本文件定义窗口尺寸、卡片方向判定以及卡片在窗口中的摆放参数

const (
	// GameWindowWidth / GameWindowHeight 启动时的窗口尺寸（竖屏）
	GameWindowWidth  = 480
	GameWindowHeight = 720

	// CardMargin 卡片与窗口边缘的最小留白（像素）
	CardMargin = 24.0

	// MessageOffsetY 祝贺文字相对卡片底边的偏移
	MessageOffsetY = 12.0
)

// Orientation 屏幕方向
type Orientation int

const (
	// OrientationPortrait 竖屏（高 >= 宽）
	OrientationPortrait Orientation = iota
	// OrientationLandscape 横屏
	OrientationLandscape
)

func (o Orientation) String() string {
	if o == OrientationLandscape {
		return "landscape"
	}
	return "portrait"
}

// DetectOrientation 根据窗口尺寸判定方向
// 高度大于等于宽度视为竖屏
func DetectOrientation(windowWidth, windowHeight int) Orientation {
	if windowHeight >= windowWidth {
		return OrientationPortrait
	}
	return OrientationLandscape
}

// CardSizeFor 返回指定方向下的卡片表面尺寸
// 竖屏使用 base 尺寸，横屏宽高互换
func CardSizeFor(o Orientation, baseWidth, baseHeight int) (width, height int) {
	if o == OrientationLandscape {
		return baseHeight, baseWidth
	}
	return baseWidth, baseHeight
}

// CardPlacement 卡片在窗口中的显示位置
type CardPlacement struct {
	X, Y          float64 // 左上角屏幕坐标
	Width, Height float64 // 显示尺寸（可能小于表面尺寸）
	Scale         float64 // 显示尺寸 / 表面尺寸
}

// CalculateCardPlacement 计算卡片居中摆放的位置
//
// 卡片按原尺寸居中；窗口放不下时（扣除 CardMargin）等比缩小，不放大。
//
// 参数：
//   - windowWidth, windowHeight: 逻辑屏幕尺寸
//   - cardWidth, cardHeight: 卡片表面尺寸
//
// 返回：
//   - CardPlacement: 显示位置和缩放
func CalculateCardPlacement(windowWidth, windowHeight, cardWidth, cardHeight int) CardPlacement {
	if cardWidth <= 0 || cardHeight <= 0 {
		return CardPlacement{Scale: 1}
	}

	availW := float64(windowWidth) - 2*CardMargin
	availH := float64(windowHeight) - 2*CardMargin
	scale := 1.0
	if sx := availW / float64(cardWidth); sx < scale {
		scale = sx
	}
	if sy := availH / float64(cardHeight); sy < scale {
		scale = sy
	}
	if scale <= 0 {
		scale = 1
	}

	w := float64(cardWidth) * scale
	h := float64(cardHeight) * scale
	return CardPlacement{
		X:      (float64(windowWidth) - w) / 2,
		Y:      (float64(windowHeight) - h) / 2,
		Width:  w,
		Height: h,
		Scale:  scale,
	}
}

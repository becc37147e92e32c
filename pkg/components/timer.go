package components

// TimerComponent 通用一次性计时器组件
// 用于处理需要延迟执行的行为（如奖品图片未解码时的延迟重绘）
//
// TimerSystem 每帧累加 CurrentTime，达到 TargetTime 后置 IsReady，
// 由关心该计时器的系统读取并移除组件。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "prize_redraw"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// 计时器名称常量
const (
	// TimerPrizeRedraw 奖品图片延迟重绘
	TimerPrizeRedraw = "prize_redraw"
)

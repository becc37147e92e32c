package systems

import (
	"github.com/decker502/scratchcard/pkg/components"
	"github.com/decker502/scratchcard/pkg/ecs"
	"github.com/decker502/scratchcard/pkg/utils"
)

// ScratchInputSystem 把鼠标/触摸拖拽转换为卡片表面的刮擦笔画
//
// 笔画只能在卡片区域内开始；开始之后即使指针移出卡片也继续跟踪，
// 表面会自行裁剪落在区域外的部分。
type ScratchInputSystem struct {
	entityManager *ecs.EntityManager
	drag          *utils.DragManager
	onStroke      func() // 每开始一笔调用一次，可为 nil

	active bool // 当前拖拽是否在卡片上开始
}

// NewScratchInputSystem 创建刮擦输入系统
//
// 参数：
//   - em: 实体管理器
//   - drag: 拖拽管理器
//   - onStroke: 新笔画开始时的回调（统计使用），可为 nil
func NewScratchInputSystem(em *ecs.EntityManager, drag *utils.DragManager, onStroke func()) *ScratchInputSystem {
	return &ScratchInputSystem{
		entityManager: em,
		drag:          drag,
		onStroke:      onStroke,
	}
}

// PointerJustPressed 本帧是否有新的按下（不论位置）
func (s *ScratchInputSystem) PointerJustPressed() bool {
	return s.drag.JustStarted()
}

// Update 读取拖拽状态并驱动笔画
func (s *ScratchInputSystem) Update(deltaTime float64) {
	s.drag.Update()
	info := s.drag.GetInfo()

	for _, id := range ecs.GetEntitiesWith1[*components.ScratchCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.ScratchCardComponent](s.entityManager, id)
		if !card.Initialized {
			continue
		}
		surface := card.Surface

		switch info.State {
		case utils.DragStateStarted:
			s.active = false
			if !utils.IsInsidePlacement(info.StartX, info.StartY, card.Placement) || surface.Revealed() {
				continue
			}
			surface.BeginStroke(utils.ScreenToSurface(info.StartX, info.StartY, card.Placement, surface.Width(), surface.Height()))
			s.active = true
			if s.onStroke != nil {
				s.onStroke()
			}

		case utils.DragStateDragging:
			if s.active && info.Moved {
				surface.ExtendStroke(utils.ScreenToSurface(info.CurrentX, info.CurrentY, card.Placement, surface.Width(), surface.Height()))
			}

		case utils.DragStateEnded:
			if s.active {
				surface.EndStroke()
				s.active = false
			}
		}
	}
}

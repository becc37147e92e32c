package systems

import (
	"github.com/decker502/scratchcard/pkg/components"
	"github.com/decker502/scratchcard/pkg/ecs"
)

// RevealFadeSystem 每帧推进一次遮罩淡出，并推进祝贺文字的弹出动画
//
// 淡出完成时表面会调用自己的揭晓回调，这里只同步 FullyRevealed 标记。
type RevealFadeSystem struct {
	entityManager *ecs.EntityManager
}

// NewRevealFadeSystem 创建淡出系统
func NewRevealFadeSystem(em *ecs.EntityManager) *RevealFadeSystem {
	return &RevealFadeSystem{entityManager: em}
}

// Update 推进淡出（与帧率绑定，不使用 deltaTime）
func (s *RevealFadeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.RevealMessageComponent](s.entityManager) {
		msg, _ := ecs.GetComponent[*components.RevealMessageComponent](s.entityManager, id)
		if msg.Visible && msg.Elapsed < components.MessagePopDuration {
			msg.Elapsed += deltaTime
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ScratchCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.ScratchCardComponent](s.entityManager, id)
		if !card.Initialized || !card.Surface.Fading() {
			continue
		}
		if !card.Surface.TickFade() {
			card.FullyRevealed = true
		}
	}
}

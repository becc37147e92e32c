package systems

import (
	"errors"
	"log"

	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/components"
	"github.com/decker502/scratchcard/pkg/config"
	"github.com/decker502/scratchcard/pkg/ecs"
)

// PrizeImage 异步加载的奖品图片
// game.AsyncImage 实现了此接口
type PrizeImage interface {
	scratch.ImageSource
	// Finished 解码是否已结束（成功或失败）
	Finished() bool
	// Err 解码失败时的错误
	Err() error
}

// LayoutSystem 卡片布局系统
//
// 职责：
//   - 奖品图片解码结束后进行首次初始化
//   - 每帧轮询视口尺寸，方向变化时按新尺寸重新初始化卡片
//   - 窗口尺寸变化但方向不变时只重新计算摆放位置
//   - 奖品图片未解码时安排一次延迟重绘，并在解码完成后补画
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	viewport      scratch.DimensionProvider
	prize         PrizeImage
	baseWidth     int
	baseHeight    int
	retryDelay    float64 // 秒
}

// NewLayoutSystem 创建布局系统
//
// 参数：
//   - em: 实体管理器
//   - viewport: 视口尺寸来源
//   - prize: 奖品图片
//   - cfg: 刮刮卡配置（基础尺寸和重绘延迟）
func NewLayoutSystem(em *ecs.EntityManager, viewport scratch.DimensionProvider, prize PrizeImage, cfg *config.ScratchConfig) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
		viewport:      viewport,
		prize:         prize,
		baseWidth:     cfg.BaseWidth,
		baseHeight:    cfg.BaseHeight,
		retryDelay:    cfg.DecodeRetryDelay.Std().Seconds(),
	}
}

// Update 检查尺寸变化、延迟重绘计时器和图片解码状态
func (s *LayoutSystem) Update(deltaTime float64) {
	w, h := s.viewport.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ScratchCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.ScratchCardComponent](s.entityManager, id)

		if !card.Initialized {
			// 首次初始化等待图片解码结束，避免先画出空白奖品层
			if s.prize != nil && !s.prize.Finished() {
				continue
			}
			if s.prize != nil && s.prize.Err() != nil {
				log.Printf("[LayoutSystem] Prize image failed to load: %v", s.prize.Err())
			}
			s.initializeCard(id, card, w, h)
			continue
		}

		if w != card.WindowWidth || h != card.WindowHeight {
			if o := config.DetectOrientation(w, h); o != card.Orientation {
				log.Printf("[LayoutSystem] Orientation changed %s -> %s", card.Orientation, o)
				s.initializeCard(id, card, w, h)
				continue
			}
			card.WindowWidth, card.WindowHeight = w, h
			card.Placement = config.CalculateCardPlacement(w, h, card.Surface.Width(), card.Surface.Height())
		}

		s.updatePrizeRedraw(id, card)
	}
}

// initializeCard 按窗口方向初始化卡片表面并重置揭晓状态
func (s *LayoutSystem) initializeCard(id ecs.EntityID, card *components.ScratchCardComponent, w, h int) {
	orientation := config.DetectOrientation(w, h)
	cw, ch := config.CardSizeFor(orientation, s.baseWidth, s.baseHeight)

	err := card.Surface.Initialize(cw, ch)
	switch {
	case errors.Is(err, scratch.ErrImageNotDecoded):
		s.scheduleRedraw(id)
	case err != nil:
		log.Printf("[LayoutSystem] Failed to initialize card %s: %v", card.CardID, err)
		return
	default:
		ecs.RemoveComponent[*components.TimerComponent](s.entityManager, id)
	}

	card.Orientation = orientation
	card.WindowWidth, card.WindowHeight = w, h
	card.Placement = config.CalculateCardPlacement(w, h, cw, ch)
	card.Initialized = true
	card.FullyRevealed = false

	if msg, ok := ecs.GetComponent[*components.RevealMessageComponent](s.entityManager, id); ok {
		msg.Hide()
	}

	log.Printf("[LayoutSystem] Card %s initialized: %dx%d (%s), prize drawn: %v",
		card.CardID, cw, ch, orientation, card.Surface.HasPrize())
}

// scheduleRedraw 添加一次性的延迟重绘计时器
func (s *LayoutSystem) scheduleRedraw(id ecs.EntityID) {
	ecs.AddComponent(s.entityManager, id, &components.TimerComponent{
		Name:       components.TimerPrizeRedraw,
		TargetTime: s.retryDelay,
	})
}

// updatePrizeRedraw 奖品层缺失时尝试补画
//
// 两个触发条件：延迟重绘计时器到期（只重试一次），或图片在此期间完成了解码。
func (s *LayoutSystem) updatePrizeRedraw(id ecs.EntityID, card *components.ScratchCardComponent) {
	if card.Surface.HasPrize() {
		return
	}

	timer, hasTimer := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
	timerFired := hasTimer && timer.Name == components.TimerPrizeRedraw && timer.IsReady
	decoded := s.prize != nil && s.prize.Decoded()

	if !timerFired && !decoded {
		return
	}
	if timerFired {
		ecs.RemoveComponent[*components.TimerComponent](s.entityManager, id)
	}

	if err := card.Surface.RedrawPrize(); err != nil {
		log.Printf("[LayoutSystem] Prize redraw for card %s skipped: %v", card.CardID, err)
		return
	}
	if hasTimer && !timerFired {
		ecs.RemoveComponent[*components.TimerComponent](s.entityManager, id)
	}
	log.Printf("[LayoutSystem] Prize drawn for card %s", card.CardID)
}

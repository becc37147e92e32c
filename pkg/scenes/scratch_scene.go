package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/components"
	"github.com/decker502/scratchcard/pkg/config"
	"github.com/decker502/scratchcard/pkg/ecs"
	"github.com/decker502/scratchcard/pkg/game"
	"github.com/decker502/scratchcard/pkg/systems"
	"github.com/decker502/scratchcard/pkg/utils"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 场景颜色
var (
	backgroundColor = color.RGBA{R: 0x1e, G: 0x3a, B: 0x2f, A: 0xff}
	hintColor       = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xc0}
)

const hintFontSize = 14

// SceneDeps 创建刮刮卡场景所需的依赖
type SceneDeps struct {
	Config          *config.ScratchConfig
	ResourceManager *game.ResourceManager
	StatsManager    *game.StatsManager
	SettingsManager *game.SettingsManager
	AudioManager    *game.AudioManager
	Viewport        scratch.DimensionProvider

	// Pointer 指针输入来源，为 nil 时读取 Ebitengine 输入
	Pointer utils.PointerSource
}

// ScratchScene 刮刮卡场景
//
// 场景只有一张卡片实体，挂载 ScratchCardComponent 和 RevealMessageComponent。
// 每帧依次运行：布局 → 计时器 → 刮擦输入 → 淡出。
type ScratchScene struct {
	deps          SceneDeps
	entityManager *ecs.EntityManager
	cardEntity    ecs.EntityID
	prize         *game.AsyncImage

	layoutSystem *systems.LayoutSystem
	timerSystem  *systems.TimerSystem
	inputSystem  *systems.ScratchInputSystem
	fadeSystem   *systems.RevealFadeSystem
	renderSystem *systems.ScratchRenderSystem

	hintFace *text.GoTextFace
}

// NewScratchScene 创建刮刮卡场景
//
// 奖品图片在这里开始后台解码，卡片在解码结束后由 LayoutSystem 首次初始化。
func NewScratchScene(deps SceneDeps) *ScratchScene {
	cfg := deps.Config
	s := &ScratchScene{
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
		prize:         deps.ResourceManager.LoadImageAsync(cfg.PrizeImage),
	}

	surface := scratch.NewSurface(scratch.Options{
		RevealThreshold: cfg.RevealThreshold,
		BrushSize:       cfg.BrushSize,
		FadeStep:        cfg.FadeStep,
		MaskColor:       cfg.Mask(),
	}, s.prize, s.onFullyRevealed)

	s.cardEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.cardEntity, &components.ScratchCardComponent{
		CardID:  uuid.New(),
		Surface: surface,
	})
	ecs.AddComponent(s.entityManager, s.cardEntity, &components.RevealMessageComponent{
		Text:     cfg.MessageText,
		FontSize: cfg.MessageFontSize,
	})
	deps.StatsManager.RecordCardStarted()

	messageFace, err := deps.ResourceManager.LoadFont(game.DefaultFontPath, cfg.MessageFontSize)
	if err != nil {
		log.Printf("[ScratchScene] Warning: Failed to load message font: %v", err)
	}
	s.hintFace, err = deps.ResourceManager.LoadFont(game.DefaultFontPath, hintFontSize)
	if err != nil {
		log.Printf("[ScratchScene] Warning: Failed to load hint font: %v", err)
	}

	s.layoutSystem = systems.NewLayoutSystem(s.entityManager, deps.Viewport, s.prize, cfg)
	s.timerSystem = systems.NewTimerSystem(s.entityManager)
	s.inputSystem = systems.NewScratchInputSystem(s.entityManager, utils.NewDragManager(deps.Pointer), deps.StatsManager.RecordStroke)
	s.fadeSystem = systems.NewRevealFadeSystem(s.entityManager)
	s.renderSystem = systems.NewScratchRenderSystem(s.entityManager, messageFace)

	log.Printf("[ScratchScene] Scene created, loading prize %s", cfg.PrizeImage)
	return s
}

// Update 更新场景
func (s *ScratchScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.NewCard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleSound()
	}

	// 完全揭晓后点击任意位置换一张（移动端没有键盘）
	revealedBefore := s.Card().FullyRevealed

	s.layoutSystem.Update(deltaTime)
	s.timerSystem.Update(deltaTime)
	s.inputSystem.Update(deltaTime)
	s.fadeSystem.Update(deltaTime)

	if revealedBefore && s.inputSystem.PointerJustPressed() {
		s.NewCard()
	}

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *ScratchScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.drawHint(screen)
}

func (s *ScratchScene) drawHint(screen *ebiten.Image) {
	if s.hintFace == nil {
		return
	}
	var hint string
	switch {
	case s.Card().FullyRevealed:
		hint = "Tap to play again"
	case utils.IsMobile():
		hint = "Scratch the card!"
	default:
		sound := "on"
		if !s.deps.SettingsManager.GetSettings().SoundEnabled {
			sound = "off"
		}
		hint = fmt.Sprintf("R: new card   M: sound %s   F11: fullscreen", sound)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 4)
	op.ColorScale.ScaleWithColor(hintColor)
	text.Draw(screen, hint, s.hintFace, op)
}

// Card 返回卡片组件
func (s *ScratchScene) Card() *components.ScratchCardComponent {
	card, _ := ecs.GetComponent[*components.ScratchCardComponent](s.entityManager, s.cardEntity)
	return card
}

// Message 返回祝贺文字组件
func (s *ScratchScene) Message() *components.RevealMessageComponent {
	msg, _ := ecs.GetComponent[*components.RevealMessageComponent](s.entityManager, s.cardEntity)
	return msg
}

// NewCard 换一张新卡片
// 分配新的 CardID，下一帧由 LayoutSystem 按当前尺寸重新初始化
func (s *ScratchScene) NewCard() {
	card := s.Card()
	card.CardID = uuid.New()
	card.Initialized = false
	card.FullyRevealed = false
	s.Message().Hide()
	s.deps.StatsManager.RecordCardStarted()
	log.Printf("[ScratchScene] New card %s requested", card.CardID)
}

// ToggleSound 切换提示音开关并保存设置
func (s *ScratchScene) ToggleSound() {
	enabled := s.deps.SettingsManager.ToggleSound()
	if s.deps.AudioManager != nil {
		s.deps.AudioManager.SetEnabled(enabled)
	}
	if err := s.deps.SettingsManager.Save(); err != nil {
		log.Printf("[ScratchScene] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[ScratchScene] Sound enabled: %v", enabled)
}

// onFullyRevealed 淡出完成时由卡片表面调用（每张卡片一次）
func (s *ScratchScene) onFullyRevealed() {
	card := s.Card()
	log.Printf("[ScratchScene] Card %s fully revealed", card.CardID)

	s.Message().Show()

	s.deps.StatsManager.RecordReveal()
	if err := s.deps.StatsManager.Save(); err != nil {
		log.Printf("[ScratchScene] Warning: Failed to save stats: %v", err)
	}

	if s.deps.AudioManager != nil {
		s.deps.AudioManager.PlayChime()
	}
}

// SaveOnExit 退出时保存统计
func (s *ScratchScene) SaveOnExit() bool {
	if !s.deps.StatsManager.IsDirty() {
		return true
	}
	if err := s.deps.StatsManager.Save(); err != nil {
		log.Printf("[ScratchScene] Failed to save stats on exit: %v", err)
		return false
	}
	return true
}

package systems

import (
	"image"
	"image/color"

	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/components"
	"github.com/decker502/scratchcard/pkg/config"
	"github.com/decker502/scratchcard/pkg/ecs"
	"github.com/decker502/scratchcard/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 祝贺文字颜色
var (
	messageColor       = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	messageShadowColor = color.RGBA{A: 180}
)

// ScratchRenderSystem 渲染卡片（奖品层 + 淡出中的遮罩层）和祝贺文字
//
// 表面的两层在 CPU 上维护，这里只在版本号变化时上传到 GPU 纹理。
type ScratchRenderSystem struct {
	entityManager *ecs.EntityManager
	messageFace   *text.GoTextFace

	prizeTex        *ebiten.Image
	overlayTex      *ebiten.Image
	prizeRevision   uint64
	overlayRevision uint64
}

// NewScratchRenderSystem 创建渲染系统
//
// 参数：
//   - em: 实体管理器
//   - messageFace: 祝贺文字字体，为 nil 时不绘制文字
func NewScratchRenderSystem(em *ecs.EntityManager, messageFace *text.GoTextFace) *ScratchRenderSystem {
	return &ScratchRenderSystem{
		entityManager: em,
		messageFace:   messageFace,
	}
}

// Draw 绘制所有卡片
func (s *ScratchRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ScratchCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.ScratchCardComponent](s.entityManager, id)
		if !card.Initialized {
			continue
		}
		s.drawCard(screen, card)

		if msg, ok := ecs.GetComponent[*components.RevealMessageComponent](s.entityManager, id); ok && msg.Visible {
			s.drawMessage(screen, msg, card.Placement)
		}
	}
}

func (s *ScratchRenderSystem) drawCard(screen *ebiten.Image, card *components.ScratchCardComponent) {
	surface := card.Surface
	s.syncTextures(surface)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(card.Placement.Scale, card.Placement.Scale)
	op.GeoM.Translate(card.Placement.X, card.Placement.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.prizeTex, op)

	if !surface.OverlayVisible() {
		return
	}
	op.ColorScale.ScaleAlpha(float32(surface.FadeProgress()))
	screen.DrawImage(s.overlayTex, op)
}

// syncTextures 按需重建纹理并上传变化过的图层
func (s *ScratchRenderSystem) syncTextures(surface *scratch.Surface) {
	w, h := surface.Width(), surface.Height()
	if s.prizeTex == nil || s.prizeTex.Bounds() != image.Rect(0, 0, w, h) {
		if s.prizeTex != nil {
			s.prizeTex.Deallocate()
			s.overlayTex.Deallocate()
		}
		s.prizeTex = ebiten.NewImage(w, h)
		s.overlayTex = ebiten.NewImage(w, h)
		s.prizeTex.WritePixels(surface.Prize().Pix)
		s.overlayTex.WritePixels(surface.Overlay().Pix)
		s.prizeRevision = surface.PrizeRevision()
		s.overlayRevision = surface.OverlayRevision()
		return
	}

	if rev := surface.PrizeRevision(); rev != s.prizeRevision {
		s.prizeTex.WritePixels(surface.Prize().Pix)
		s.prizeRevision = rev
	}
	if rev := surface.OverlayRevision(); rev != s.overlayRevision {
		s.overlayTex.WritePixels(surface.Overlay().Pix)
		s.overlayRevision = rev
	}
}

// drawMessage 在卡片下方居中绘制祝贺文字，放不下时画在卡片内底部
//
// 文字按卡片显示宽度换行，显示后以回弹缩放和淡入弹出。
func (s *ScratchRenderSystem) drawMessage(screen *ebiten.Image, msg *components.RevealMessageComponent, p config.CardPlacement) {
	if s.messageFace == nil || msg.Text == "" {
		return
	}

	lines := utils.WrapText(msg.Text, s.messageFace, p.Width-2*config.MessageOffsetY)
	lineHeight := s.messageFace.Size * 1.3
	blockH := lineHeight * float64(len(lines))

	x := p.X + p.Width/2
	y := p.Y + p.Height + config.MessageOffsetY
	if y+blockH > float64(screen.Bounds().Dy()) {
		y = p.Y + p.Height - blockH - config.MessageOffsetY
	}

	progress := msg.Elapsed / components.MessagePopDuration
	scale := utils.Lerp(0.6, 1, utils.EaseOutBack(progress))
	alpha := float32(utils.EaseOutCubic(progress))
	cy := y + blockH/2

	for i, line := range lines {
		ly := y + float64(i)*lineHeight
		s.drawLine(screen, line, x+2, ly+2, cy, scale, alpha, messageShadowColor)
		s.drawLine(screen, line, x, ly, cy, scale, alpha, messageColor)
	}
}

// drawLine 以 (x, cy) 为中心缩放绘制一行居中文字
func (s *ScratchRenderSystem) drawLine(screen *ebiten.Image, line string, x, y, cy, scale float64, alpha float32, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(0, y-cy)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, line, s.messageFace, op)
}

package systems

import (
	"image"
	"image/color"
	"testing"

	"github.com/decker502/scratchcard/internal/scratch"
	"github.com/decker502/scratchcard/pkg/components"
	"github.com/decker502/scratchcard/pkg/config"
	"github.com/decker502/scratchcard/pkg/ecs"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakePrize 可控的奖品图片
type fakePrize struct {
	img      image.Image
	finished bool
	err      error
}

func (f *fakePrize) Decoded() bool { return f.finished && f.err == nil && f.img != nil }
func (f *fakePrize) Finished() bool { return f.finished }
func (f *fakePrize) Err() error { return f.err }

func (f *fakePrize) NaturalSize() (int, int) {
	if !f.Decoded() {
		return 0, 0
	}
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f *fakePrize) Image() image.Image {
	if !f.Decoded() {
		return nil
	}
	return f.img
}

// finish 模拟解码完成
func (f *fakePrize) finish() {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	f.img = img
	f.finished = true
}

// fakeViewport 可控的视口尺寸
type fakeViewport struct{ w, h int }

func (v *fakeViewport) Dimensions() (int, int) { return v.w, v.h }

// fakePointer 可控的指针输入
type fakePointer struct {
	mouseJustPressed bool
	mousePressed     bool
	cursorX, cursorY int
}

func (f *fakePointer) JustPressedTouchIDs() []ebiten.TouchID { return nil }
func (f *fakePointer) TouchIDs() []ebiten.TouchID { return nil }
func (f *fakePointer) TouchPosition(ebiten.TouchID) (int, int) { return 0, 0 }
func (f *fakePointer) MouseJustPressed() bool { return f.mouseJustPressed }
func (f *fakePointer) MousePressed() bool { return f.mousePressed }
func (f *fakePointer) CursorPosition() (int, int) { return f.cursorX, f.cursorY }

// newTestCard 创建带卡片和祝贺文字组件的实体
func newTestCard(t *testing.T, em *ecs.EntityManager, prize scratch.ImageSource, notify scratch.RevealNotifier) (ecs.EntityID, *components.ScratchCardComponent) {
	t.Helper()
	id := em.CreateEntity()
	card := &components.ScratchCardComponent{
		CardID:  uuid.New(),
		Surface: scratch.NewSurface(scratch.Options{}, prize, notify),
	}
	ecs.AddComponent(em, id, card)
	ecs.AddComponent(em, id, &components.RevealMessageComponent{Text: "win"})
	return id, card
}

func testConfig() *config.ScratchConfig {
	return config.DefaultScratchConfig()
}

// firstCard 返回第一个卡片组件
func firstCard(t *testing.T, em *ecs.EntityManager) *components.ScratchCardComponent {
	t.Helper()
	ids := ecs.GetEntitiesWith1[*components.ScratchCardComponent](em)
	if len(ids) == 0 {
		t.Fatal("no card entity")
	}
	card, _ := ecs.GetComponent[*components.ScratchCardComponent](em, ids[0])
	return card
}

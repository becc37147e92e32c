package scratch

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Defaults matching the reference scratch card.
const (
	DefaultRevealThreshold = 0.40
	DefaultBrushSize       = 40.0
	DefaultFadeStep        = 0.02
)

// DefaultMaskColor is the overlay fill colour (#AAAAAA).
var DefaultMaskColor = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}

var (
	// ErrInvalidDimensions is returned by Initialize for a non-positive width or height.
	// The surface is left untouched.
	ErrInvalidDimensions = errors.New("scratch: surface dimensions must be positive")

	// ErrImageNotDecoded is returned by Initialize and RedrawPrize when the prize image is
	// not decoded yet. The overlay is fully initialized; only the prize draw was skipped and
	// the caller should call RedrawPrize again later.
	ErrImageNotDecoded = errors.New("scratch: prize image not decoded yet")
)

// RevealState tells whether the card has crossed the reveal threshold.
type RevealState int

const (
	NotRevealed RevealState = iota
	Revealed
)

func (s RevealState) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "notRevealed"
}

// Options tunes a Surface. Zero fields fall back to the defaults.
type Options struct {
	RevealThreshold float64
	BrushSize       float64
	FadeStep        float64
	MaskColor       color.Color
}

func (o Options) withDefaults() Options {
	if o.RevealThreshold <= 0 {
		o.RevealThreshold = DefaultRevealThreshold
	}
	if o.BrushSize <= 0 {
		o.BrushSize = DefaultBrushSize
	}
	if o.FadeStep <= 0 {
		o.FadeStep = DefaultFadeStep
	}
	if o.MaskColor == nil {
		o.MaskColor = DefaultMaskColor
	}
	return o
}

// Surface is one scratch card: the prize layer, the erasable overlay above it, the reveal
// state and the fade-out progress.
type Surface struct {
	opts     Options
	mask     color.RGBA
	source   ImageSource
	notify   RevealNotifier
	brush    *brush
	width    int
	height   int
	prize    *image.RGBA
	overlay  *image.RGBA
	hasPrize bool

	state          RevealState
	fade           float64
	fadeTicks      int
	fading         bool
	overlayVisible bool

	stroking bool
	last     Point

	// erased tracks the number of overlay pixels with alpha == 0. It is kept in step
	// with the buffer on every erase so reveal checks do not rescan the surface.
	erased int

	prizeRevision   uint64
	overlayRevision uint64
}

// NewSurface creates a surface reading the prize from source and calling notify once the
// fade-out completes. Either may be nil. The surface has no layers until Initialize.
func NewSurface(opts Options, source ImageSource, notify RevealNotifier) *Surface {
	opts = opts.withDefaults()
	mask := color.RGBAModel.Convert(opts.MaskColor).(color.RGBA)
	mask.R, mask.G, mask.B, mask.A = unpremultiplyOpaque(mask)
	return &Surface{
		opts:   opts,
		mask:   mask,
		source: source,
		notify: notify,
		brush:  newBrush(opts.BrushSize),
		fade:   1.0,
	}
}

// unpremultiplyOpaque forces the mask colour to full opacity, keeping its hue.
func unpremultiplyOpaque(c color.RGBA) (r, g, b, a uint8) {
	if c.A == 0 {
		return 0, 0, 0, 0xff
	}
	if c.A == 0xff {
		return c.R, c.G, c.B, 0xff
	}
	scale := func(v uint8) uint8 { return uint8(uint32(v) * 0xff / uint32(c.A)) }
	return scale(c.R), scale(c.G), scale(c.B), 0xff
}

// Initialize (re)creates both layers at width×height, redraws the prize, refills the
// overlay with the opaque mask colour and resets the reveal state and fade progress.
// Erase progress and any stroke in progress are discarded.
//
// It returns ErrInvalidDimensions without changing anything for a degenerate size, and
// ErrImageNotDecoded when everything but the prize draw succeeded.
func (s *Surface) Initialize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}

	if s.width != width || s.height != height || s.overlay == nil {
		s.width, s.height = width, height
		s.prize = image.NewRGBA(image.Rect(0, 0, width, height))
		s.overlay = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	draw.Draw(s.overlay, s.overlay.Bounds(), image.NewUniform(s.mask), image.Point{}, draw.Src)
	s.overlayRevision++
	s.erased = s.countErased()

	s.state = NotRevealed
	s.fade = 1.0
	s.fadeTicks = 0
	s.fading = false
	s.overlayVisible = true
	s.stroking = false

	return s.RedrawPrize()
}

// RedrawPrize clears the prize layer and draws the source image scaled to the surface.
// When the source is not decoded the layer stays clear and ErrImageNotDecoded is returned.
func (s *Surface) RedrawPrize() error {
	if s.prize == nil {
		return ErrInvalidDimensions
	}
	draw.Draw(s.prize, s.prize.Bounds(), image.Transparent, image.Point{}, draw.Src)
	s.prizeRevision++
	s.hasPrize = false

	if s.source == nil || !s.source.Decoded() {
		return ErrImageNotDecoded
	}
	nw, nh := s.source.NaturalSize()
	img := s.source.Image()
	if nw <= 0 || nh <= 0 || img == nil {
		return ErrImageNotDecoded
	}

	xdraw.BiLinear.Scale(s.prize, s.prize.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	s.hasPrize = true
	return nil
}

// BeginStroke starts a new erase path at p. Any unfinished path is abandoned.
func (s *Surface) BeginStroke(p Point) {
	if s.state == Revealed || s.overlay == nil {
		return
	}
	s.stroking = true
	s.last = p
}

// ExtendStroke erases from the previous stroke point to p and re-evaluates the reveal.
// It does nothing unless a stroke is in progress on an unrevealed card.
func (s *Surface) ExtendStroke(p Point) {
	if !s.stroking || s.state == Revealed {
		return
	}
	s.erased += s.brush.erase(s.overlay, s.last, p)
	s.overlayRevision++
	s.last = p
	s.checkReveal()
}

// EndStroke finishes the current stroke and re-evaluates the reveal.
func (s *Surface) EndStroke() {
	if !s.stroking || s.state == Revealed {
		return
	}
	s.stroking = false
	s.checkReveal()
}

// ComputeErasedFraction scans the whole overlay and returns the share of pixels whose
// alpha is exactly zero.
func (s *Surface) ComputeErasedFraction() float64 {
	if s.overlay == nil {
		return 0
	}
	return float64(s.countErased()) / float64(s.width*s.height)
}

func (s *Surface) countErased() int {
	n := 0
	pix := s.overlay.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] == 0 {
			n++
		}
	}
	return n
}

// erasedFraction is the incrementally tracked equivalent of ComputeErasedFraction.
func (s *Surface) erasedFraction() float64 {
	return float64(s.erased) / float64(s.width*s.height)
}

func (s *Surface) checkReveal() {
	if s.state == Revealed {
		return
	}
	if s.erasedFraction() >= s.opts.RevealThreshold {
		s.state = Revealed
		s.stroking = false
		s.startFade()
	}
}

// Width returns the current surface width.
func (s *Surface) Width() int { return s.width }

// Height returns the current surface height.
func (s *Surface) Height() int { return s.height }

// State returns the reveal state.
func (s *Surface) State() RevealState { return s.state }

// Revealed reports whether the reveal threshold has been crossed.
func (s *Surface) Revealed() bool { return s.state == Revealed }

// Stroking reports whether a stroke is in progress.
func (s *Surface) Stroking() bool { return s.stroking }

// HasPrize reports whether the prize layer currently holds the drawn image.
func (s *Surface) HasPrize() bool { return s.hasPrize }

// Prize returns the prize layer (premultiplied RGBA). Callers must not modify it.
func (s *Surface) Prize() *image.RGBA { return s.prize }

// Overlay returns the overlay layer (premultiplied RGBA). Callers must not modify it.
func (s *Surface) Overlay() *image.RGBA { return s.overlay }

// PrizeRevision changes every time the prize layer is redrawn.
func (s *Surface) PrizeRevision() uint64 { return s.prizeRevision }

// OverlayRevision changes every time the overlay buffer may have changed.
func (s *Surface) OverlayRevision() uint64 { return s.overlayRevision }

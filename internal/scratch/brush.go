package scratch

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleKappa is the cubic Bézier control distance for a quarter circle of radius 1.
const circleKappa = 0.5522847498307936

// brush rasterizes round-capped, round-joined stroke segments into a coverage mask and
// applies that mask to a premultiplied RGBA buffer in destination-out mode.
//
// A stroke made of consecutive segments is the union of capsules (two end discs plus the
// connecting quad), which gives round caps and round joins without tracking the path.
type brush struct {
	radius float64
	raster *vector.Rasterizer
	mask   *image.Alpha
}

func newBrush(width float64) *brush {
	return &brush{
		radius: width / 2,
		raster: vector.NewRasterizer(0, 0),
		mask:   image.NewAlpha(image.Rect(0, 0, 0, 0)),
	}
}

// segmentBounds returns the integer rectangle that contains the capsule from a to b,
// padded by one pixel for anti-aliased edges. The rectangle is not clipped.
func (b *brush) segmentBounds(a, c Point) image.Rectangle {
	pad := b.radius + 1
	minX := math.Floor(math.Min(a.X, c.X) - pad)
	minY := math.Floor(math.Min(a.Y, c.Y) - pad)
	maxX := math.Ceil(math.Max(a.X, c.X) + pad)
	maxY := math.Ceil(math.Max(a.Y, c.Y) + pad)
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY))
}

// erase clears the capsule from a to c out of dst and returns how many pixels went from
// non-zero alpha to zero alpha. Pixels outside dst are ignored.
func (b *brush) erase(dst *image.RGBA, a, c Point) int {
	r := b.segmentBounds(a, c)
	clip := r.Intersect(dst.Bounds())
	if clip.Empty() {
		return 0
	}

	b.rasterize(r, a, c)

	newlyCleared := 0
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		maskRow := (y - r.Min.Y) * b.mask.Stride
		for x := clip.Min.X; x < clip.Max.X; x++ {
			m := uint32(b.mask.Pix[maskRow+x-r.Min.X])
			if m == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			alpha := dst.Pix[i+3]
			if alpha == 0 {
				continue
			}
			keep := 0xff - m
			dst.Pix[i+0] = uint8(uint32(dst.Pix[i+0]) * keep / 0xff)
			dst.Pix[i+1] = uint8(uint32(dst.Pix[i+1]) * keep / 0xff)
			dst.Pix[i+2] = uint8(uint32(dst.Pix[i+2]) * keep / 0xff)
			dst.Pix[i+3] = uint8(uint32(alpha) * keep / 0xff)
			if dst.Pix[i+3] == 0 {
				newlyCleared++
			}
		}
	}
	return newlyCleared
}

// rasterize fills b.mask with the capsule coverage over rectangle r.
func (b *brush) rasterize(r image.Rectangle, a, c Point) {
	w, h := r.Dx(), r.Dy()
	b.raster.Reset(w, h)
	b.raster.DrawOp = draw.Src

	// Rasterizer space is relative to r.Min.
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	la := Point{X: a.X - ox, Y: a.Y - oy}
	lc := Point{X: c.X - ox, Y: c.Y - oy}

	b.addCircle(la)
	if la != lc {
		b.addCircle(lc)
		b.addQuad(la, lc)
	}

	if b.mask.Rect.Dx() != w || b.mask.Rect.Dy() != h {
		b.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	b.raster.Draw(b.mask, b.mask.Bounds(), image.Opaque, image.Point{})
}

// addCircle appends a full circle of the brush radius. All sub-paths are wound the same
// way (positive shoelace area in y-down space) so overlapping coverage saturates instead
// of cancelling.
func (b *brush) addCircle(p Point) {
	r := b.radius
	k := r * circleKappa
	z := b.raster
	z.MoveTo(f32(p.X+r), f32(p.Y))
	z.CubeTo(f32(p.X+r), f32(p.Y+k), f32(p.X+k), f32(p.Y+r), f32(p.X), f32(p.Y+r))
	z.CubeTo(f32(p.X-k), f32(p.Y+r), f32(p.X-r), f32(p.Y+k), f32(p.X-r), f32(p.Y))
	z.CubeTo(f32(p.X-r), f32(p.Y-k), f32(p.X-k), f32(p.Y-r), f32(p.X), f32(p.Y-r))
	z.CubeTo(f32(p.X+k), f32(p.Y-r), f32(p.X+r), f32(p.Y-k), f32(p.X+r), f32(p.Y))
	z.ClosePath()
}

// addQuad appends the rectangle joining the two end discs of a segment.
func (b *brush) addQuad(a, c Point) {
	dx, dy := c.X-a.X, c.Y-a.Y
	length := math.Hypot(dx, dy)
	nx, ny := -dy/length*b.radius, dx/length*b.radius

	quad := [4]Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: c.X + nx, Y: c.Y + ny},
		{X: c.X - nx, Y: c.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
	if shoelace(quad[:]) < 0 {
		quad[1], quad[3] = quad[3], quad[1]
	}

	z := b.raster
	z.MoveTo(f32(quad[0].X), f32(quad[0].Y))
	for _, q := range quad[1:] {
		z.LineTo(f32(q.X), f32(q.Y))
	}
	z.ClosePath()
}

func shoelace(pts []Point) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func f32(v float64) float32 {
	return float32(v)
}

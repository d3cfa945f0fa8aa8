package graphics

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one character's placement in the atlas and its metrics.
type Glyph struct {
	// Pixel rectangle in the atlas (top-left origin)
	X, Y, W, H float32
	// Offset of the bitmap from the pen position on the baseline
	BearingX, BearingY float32
	Advance            float32
}

// Atlas is a printable-ASCII glyph sheet. Image is uploaded as an RGBA
// texture whose alpha is the glyph coverage.
type Atlas struct {
	Image      *image.RGBA
	Glyphs     map[rune]Glyph
	LineHeight float32
}

const (
	atlasWidth   = 512
	atlasPadding = 1
	firstGlyph   = ' '
	lastGlyph    = '~'
)

// BuildDefaultAtlas bakes the Go Regular font at px pixels.
func BuildDefaultAtlas(px float64) (*Atlas, error) {
	return BuildAtlas(goregular.TTF, px)
}

// BuildAtlas bakes printable ASCII from an OpenType/TrueType font into one
// image using a simple row packer.
func BuildAtlas(ttf []byte, px float64) (*Atlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	rowH := (metrics.Ascent + metrics.Descent).Ceil() + atlasPadding

	type placed struct {
		r    rune
		mask image.Image
		mp   image.Point
		rect image.Rectangle
		adv  fixed.Int26_6
		at   image.Point
	}
	var glyphs []placed
	x, y := atlasPadding, atlasPadding
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		dr, mask, mp, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		w := dr.Dx()
		if x+w+atlasPadding > atlasWidth {
			x = atlasPadding
			y += rowH
		}
		glyphs = append(glyphs, placed{r: r, mask: mask, mp: mp, rect: dr, adv: adv, at: image.Pt(x, y)})
		x += w + atlasPadding
	}

	img := image.NewRGBA(image.Rect(0, 0, atlasWidth, y+rowH))
	a := &Atlas{
		Image:      img,
		Glyphs:     make(map[rune]Glyph, len(glyphs)),
		LineHeight: float32(metrics.Height.Ceil()),
	}
	for _, g := range glyphs {
		if g.mask != nil && !g.rect.Empty() {
			dst := image.Rectangle{Min: g.at, Max: g.at.Add(g.rect.Size())}
			draw.DrawMask(img, dst, image.White, image.Point{}, g.mask, g.mp, draw.Src)
		}
		a.Glyphs[g.r] = Glyph{
			X:        float32(g.at.X),
			Y:        float32(g.at.Y),
			W:        float32(g.rect.Dx()),
			H:        float32(g.rect.Dy()),
			BearingX: float32(g.rect.Min.X),
			BearingY: float32(-g.rect.Min.Y),
			Advance:  float32(g.adv.Ceil()),
		}
	}
	return a, nil
}

// Measure returns the pen advance of text at the given scale.
func (a *Atlas) Measure(text string, scale float32) float32 {
	var w float32
	for _, r := range text {
		if g, ok := a.Glyphs[r]; ok {
			w += g.Advance * scale
		}
	}
	return w
}

// Quads lays out text with its baseline at (x, y) in top-left-origin pixel
// space. Each glyph gives two triangles of (x, y, u, v) vertices. Characters
// missing from the atlas are skipped.
func (a *Atlas) Quads(text string, x, y, scale float32) []float32 {
	iw := float32(a.Image.Bounds().Dx())
	ih := float32(a.Image.Bounds().Dy())
	out := make([]float32, 0, len(text)*24)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			continue
		}
		if g.W > 0 && g.H > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.W*scale
			y1 := y0 + g.H*scale
			u0, v0 := g.X/iw, g.Y/ih
			u1, v1 := (g.X+g.W)/iw, (g.Y+g.H)/ih
			out = append(out,
				x0, y0, u0, v0,
				x0, y1, u0, v1,
				x1, y1, u1, v1,
				x0, y0, u0, v0,
				x1, y1, u1, v1,
				x1, y0, u1, v0,
			)
		}
		x += g.Advance * scale
	}
	return out
}

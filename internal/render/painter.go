//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter composes frames into a single RGBA image and draws it.
type Painter struct {
	img *ebiten.Image
	buf []byte
}

// NewPainter allocates the frame image and its pixel buffer.
func NewPainter() *Painter {
	return &Painter{
		img: ebiten.NewImage(ScreenW, ScreenH),
		buf: make([]byte, 4*ScreenW*ScreenH),
	}
}

// Blit composes the cells into the frame image and draws it at the origin.
func (p *Painter) Blit(dst *ebiten.Image, cells []uint8, pal Palette) {
	if len(cells) != CellsX*CellsY {
		return
	}
	ComposeFrame(p.buf, cells, pal)
	p.img.ReplacePixels(p.buf)
	dst.DrawImage(p.img, nil)
}

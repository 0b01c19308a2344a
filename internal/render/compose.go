package render

import "image/color"

// Frame geometry: the 64x32 cell grid is drawn 8x8 pixels per cell inside a
// centered active rectangle on the 640x480 frame. Both origin coordinates are
// multiples of 8, so screen-relative and rectangle-relative mod-8 sampling of
// the cell bitmap agree.
const (
	ScreenW = 640
	ScreenH = 480

	CellsX = 64
	CellsY = 32

	cellBits   = 3 // 8 pixels per cell edge
	log2CellsX = 6

	ActiveW = CellsX << cellBits
	ActiveH = CellsY << cellBits
	ActiveX = (ScreenW - ActiveW) / 2
	ActiveY = (ScreenH - ActiveH) / 2
)

// cellMask is the 8x8 bitmap stamped into every live cell: a rounded dot with
// a one-pixel gutter, row-indexed by y mod 8, bit rx selecting the column.
var cellMask = [8]uint8{
	0x3C, // ..####..
	0x7E, // .######.
	0x7E,
	0x7E,
	0x7E,
	0x7E,
	0x3C,
	0x00,
}

// Palette selects the three colors of the composed frame.
type Palette struct {
	Cell   color.RGBA
	Grid   color.RGBA
	Border color.RGBA
}

// DefaultPalette is a green-on-charcoal scheme with a darker border.
func DefaultPalette() Palette {
	return Palette{
		Cell:   color.RGBA{R: 0x58, G: 0xD0, B: 0x68, A: 0xFF},
		Grid:   color.RGBA{R: 0x10, G: 0x14, B: 0x12, A: 0xFF},
		Border: color.RGBA{R: 0x22, G: 0x26, B: 0x2A, A: 0xFF},
	}
}

// ComposeFrame fills a ScreenW*ScreenH RGBA buffer from the cell slice.
// Inside the active rectangle each pixel samples its cell and the cell
// bitmap; outside it gets the border color.
func ComposeFrame(buf []byte, cells []uint8, pal Palette) {
	if len(buf) < 4*ScreenW*ScreenH || len(cells) != CellsX*CellsY {
		return
	}
	for y := 0; y < ScreenH; y++ {
		for x := 0; x < ScreenW; x++ {
			col := pal.Border
			if x >= ActiveX && x < ActiveX+ActiveW && y >= ActiveY && y < ActiveY+ActiveH {
				rx, ry := x-ActiveX, y-ActiveY
				col = pal.Grid
				cell := cells[(ry>>cellBits)<<log2CellsX|(rx>>cellBits)]
				if cell != 0 && cellMask[ry&7]>>(rx&7)&1 == 1 {
					col = pal.Cell
				}
			}
			base := (y*ScreenW + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

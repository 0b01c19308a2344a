package render

import (
	"image/color"
	"testing"
)

func pixelAt(buf []byte, x, y int) color.RGBA {
	base := (y*ScreenW + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestComposeFrameGeometry(t *testing.T) {
	if ActiveX != 64 || ActiveY != 112 || ActiveW != 512 || ActiveH != 256 {
		t.Fatalf("active rectangle (%d,%d) %dx%d, want (64,112) 512x256",
			ActiveX, ActiveY, ActiveW, ActiveH)
	}
}

func TestComposeFramePixelMapping(t *testing.T) {
	cells := make([]uint8, CellsX*CellsY)
	cells[0] = 1               // cell (0,0)
	cells[5<<log2CellsX|9] = 1 // cell (9,5)

	pal := DefaultPalette()
	buf := make([]byte, 4*ScreenW*ScreenH)
	ComposeFrame(buf, cells, pal)

	// Outside the active rectangle: border.
	for _, p := range [][2]int{{0, 0}, {ScreenW - 1, ScreenH - 1}, {ActiveX - 1, ActiveY}, {ActiveX, ActiveY - 1}} {
		if got := pixelAt(buf, p[0], p[1]); got != pal.Border {
			t.Fatalf("pixel (%d,%d) = %v, want border %v", p[0], p[1], got, pal.Border)
		}
	}

	// A lit pixel of cell (0,0): mask row 1 has columns 1..6 set.
	if got := pixelAt(buf, ActiveX+1, ActiveY+1); got != pal.Cell {
		t.Fatalf("lit pixel of cell (0,0) = %v, want %v", got, pal.Cell)
	}
	// The mask gutter stays grid-colored even though the cell is alive.
	if got := pixelAt(buf, ActiveX+0, ActiveY+0); got != pal.Grid {
		t.Fatalf("gutter pixel of cell (0,0) = %v, want grid %v", got, pal.Grid)
	}
	if got := pixelAt(buf, ActiveX+3, ActiveY+7); got != pal.Grid {
		t.Fatalf("gutter row of cell (0,0) = %v, want grid %v", got, pal.Grid)
	}

	// Center of live cell (9,5).
	if got := pixelAt(buf, ActiveX+9*8+4, ActiveY+5*8+4); got != pal.Cell {
		t.Fatalf("live cell (9,5) center = %v, want %v", got, pal.Cell)
	}
	// Center of a dead cell.
	if got := pixelAt(buf, ActiveX+10*8+4, ActiveY+5*8+4); got != pal.Grid {
		t.Fatalf("dead cell (10,5) center = %v, want grid %v", got, pal.Grid)
	}
}

func TestComposeFrameMaskSampling(t *testing.T) {
	cells := make([]uint8, CellsX*CellsY)
	for i := range cells {
		cells[i] = 1
	}
	pal := DefaultPalette()
	buf := make([]byte, 4*ScreenW*ScreenH)
	ComposeFrame(buf, cells, pal)

	// With every cell alive, each pixel inside the rectangle must follow
	// the mask bit for its (y mod 8, x mod 8) position exactly.
	for y := 0; y < ActiveH; y++ {
		for x := 0; x < ActiveW; x++ {
			want := pal.Grid
			if cellMask[y&7]>>(x&7)&1 == 1 {
				want = pal.Cell
			}
			if got := pixelAt(buf, ActiveX+x, ActiveY+y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

package chip

// Grid geometry. Both dimensions are powers of two so toroidal wrapping is a
// mask and cell addresses pack into y<<Log2W | x.
const (
	W     = 64
	H     = 32
	Log2W = 6
	// CellCount is the number of cells in one grid buffer.
	CellCount = W * H
)

// CellIndex returns the linear buffer index for coordinates (x, y).
func CellIndex(x, y int) int { return y<<Log2W | x }

// CellCoords decomposes a linear buffer index into coordinates.
func CellCoords(index int) (x, y int) { return index & (W - 1), index >> Log2W }

// Wrap applies toroidal wrapping to the provided coordinates.
func Wrap(x, y int) (int, int) { return x & (W - 1), y & (H - 1) }

// GridStore holds the two cell buffers: current is the authoritative grid the
// renderer reads, next is scratch for the in-progress generation. Cells are
// 0/1 bytes. Both buffers are allocated once and never resized.
type GridStore struct {
	cur []uint8
	nxt []uint8
}

// NewGridStore allocates both buffers zeroed.
func NewGridStore() *GridStore {
	return &GridStore{cur: make([]uint8, CellCount), nxt: make([]uint8, CellCount)}
}

// Current exposes the authoritative buffer for readers.
func (g *GridStore) Current() []uint8 { return g.cur }

// Package chip models the Game-of-Life display controller: a tick-synchronous
// state machine that fills, evolves and commits a 64x32 toroidal cell grid,
// paced by an external vertical-sync pulse. All register state lives in the
// Engine value; one Tick call advances everything by exactly one clock.
package chip

import "vga-life/pkg/core"

// DefaultClockHz is the pixel clock of the original part.
const DefaultClockHz = 24_000_000

// Phase is the controller's operating mode. The numeric encoding is fixed:
// Idle=0, Update=1, Copy=2, Init=3.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseUpdate
	PhaseCopy
	PhaseInit
)

// String returns the phase name in lower case.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUpdate:
		return "update"
	case PhaseCopy:
		return "copy"
	case PhaseInit:
		return "init"
	}
	return "unknown"
}

// Inputs carries the signals sampled at each tick.
type Inputs struct {
	// Reset forces full re-initialization this tick, overriding everything.
	Reset bool
	// Run enables generation pacing; false parks the controller in Idle
	// with the pace timer frozen.
	Run bool
	// Randomize substitutes a grid re-randomization for the next update.
	// It wins over Run when both would transition on the same tick.
	Randomize bool
	// VSync is the pacing pulse: the only moment an Idle controller whose
	// pace timer has expired may start the next update.
	VSync bool
}

// neighborOffsets enumerates the 8 Moore neighbors in the fixed serial scan
// order: the row above, the two horizontal neighbors, the row below.
var neighborOffsets = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// writePort is the single arbitrated write path into the current buffer.
// At most one write is enabled per tick and it is applied at tick commit,
// after every read of the tick has happened.
type writePort struct {
	enable bool
	index  int
	value  uint8
}

// Engine is the whole device: control FSM, both sequencers, the serial
// neighbor counter, the random source and the grid buffers.
type Engine struct {
	grid *GridStore
	rand *core.LFSR16

	phase    Phase
	timer    int
	interval int

	// Neighbor-counter scratch, valid only during PhaseUpdate.
	cell     int
	neighbor int
	count    int

	copyIdx int
	initIdx int

	generation uint64
}

// New constructs an Engine in its boot state: PhaseInit with a freshly seeded
// random source, so the first W*H ticks fill the grid with random cells.
// The pace interval is clockHz/10, one generation roughly every 100 ms.
func New(clockHz int) *Engine {
	if clockHz <= 0 {
		clockHz = DefaultClockHz
	}
	return &Engine{
		grid:     NewGridStore(),
		rand:     core.NewLFSR16(core.DefaultSeed),
		phase:    PhaseInit,
		interval: clockHz / 10,
	}
}

// successor applies the Game-of-Life rule to one cell.
func successor(alive uint8, liveNeighbors int) uint8 {
	if (alive != 0 && liveNeighbors == 2) || liveNeighbors == 3 {
		return 1
	}
	return 0
}

// Tick advances the engine by one clock. Everything is computed from the
// state committed by the previous tick; the one grid write of the tick is
// collected into the write port and applied last, then the random source
// shifts. Reset preempts all of it.
func (e *Engine) Tick(in Inputs) {
	if in.Reset {
		e.phase = PhaseInit
		e.timer = 0
		e.cell, e.neighbor, e.count = 0, 0, 0
		e.copyIdx, e.initIdx = 0, 0
		e.generation = 0
		e.rand.Reset(core.DefaultSeed)
		return
	}

	var port writePort

	switch e.phase {
	case PhaseIdle:
		if in.Run {
			if e.timer < e.interval {
				e.timer++
			} else if in.VSync {
				e.timer = 0
				if in.Randomize {
					e.phase = PhaseInit
				} else {
					e.phase = PhaseUpdate
				}
			}
		}

	case PhaseUpdate:
		if e.neighbor < 8 {
			// One neighbor read per tick.
			d := neighborOffsets[e.neighbor]
			x, y := CellCoords(e.cell)
			nx, ny := Wrap(x+d[0], y+d[1])
			e.count += int(e.grid.cur[CellIndex(nx, ny)])
			e.neighbor++
		} else {
			e.grid.nxt[e.cell] = successor(e.grid.cur[e.cell], e.count)
			e.neighbor, e.count = 0, 0
			if e.cell == CellCount-1 {
				e.cell = 0
				e.phase = PhaseCopy
			} else {
				e.cell++
			}
		}

	case PhaseCopy:
		port = writePort{enable: true, index: e.copyIdx, value: e.grid.nxt[e.copyIdx]}
		if e.copyIdx == CellCount-1 {
			e.copyIdx = 0
			e.phase = PhaseIdle
			e.generation++
		} else {
			e.copyIdx++
		}

	case PhaseInit:
		port = writePort{enable: true, index: e.initIdx, value: e.rand.Bit()}
		if e.initIdx == CellCount-1 {
			e.initIdx = 0
			e.phase = PhaseIdle
		} else {
			e.initIdx++
		}

	default:
		// Out-of-range phase values recover to Idle.
		e.phase = PhaseIdle
	}

	if port.enable {
		e.grid.cur[port.index] = port.value
	}
	e.rand.Tick()
}

// Phase returns the controller's current operating mode.
func (e *Engine) Phase() Phase { return e.phase }

// Cells exposes the authoritative grid buffer. Callers must treat it as
// read-only; the engine is its single writer.
func (e *Engine) Cells() []uint8 { return e.grid.Current() }

// Generation counts completed update+copy cycles since the last reset.
func (e *Engine) Generation() uint64 { return e.generation }

// Population counts live cells in the current buffer.
func (e *Engine) Population() int {
	n := 0
	for _, c := range e.grid.cur {
		if c != 0 {
			n++
		}
	}
	return n
}

// PaceTimer returns the tick count accumulated toward the next generation.
func (e *Engine) PaceTimer() int { return e.timer }

// Interval returns the pace timer threshold in ticks.
func (e *Engine) Interval() int { return e.interval }

// Rand exposes the random source register value.
func (e *Engine) Rand() uint16 { return e.rand.State() }

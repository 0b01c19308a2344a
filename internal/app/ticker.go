package app

// TickBudget spreads clockHz simulation ticks over tps frames, carrying the
// division remainder so the total over any tps consecutive frames is exact.
type TickBudget struct {
	hz  int
	tps int
	rem int
}

// NewTickBudget constructs a budget for the given clock rate and frame rate.
func NewTickBudget(clockHz, tps int) *TickBudget {
	if clockHz <= 0 {
		clockHz = 1
	}
	if tps <= 0 {
		tps = 60
	}
	return &TickBudget{hz: clockHz, tps: tps}
}

// Ticks returns how many simulation ticks the current frame should run.
func (b *TickBudget) Ticks() int {
	b.rem += b.hz
	n := b.rem / b.tps
	b.rem %= b.tps
	return n
}

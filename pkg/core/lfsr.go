package core

// DefaultSeed is the nonzero value the LFSR is loaded with on reset.
const DefaultSeed uint16 = 0xACE1

// LFSR16 is a 16-bit maximal-length linear-feedback shift register. The
// feedback bit is the XOR of bits 15, 13, 12 and 10, shifted in at bit 0,
// which cycles through all 65535 nonzero states before repeating.
type LFSR16 struct {
	state uint16
}

// NewLFSR16 returns a register loaded with the given seed. A zero seed would
// lock the register at zero forever, so it is replaced with DefaultSeed.
func NewLFSR16(seed uint16) *LFSR16 {
	l := &LFSR16{}
	l.Reset(seed)
	return l
}

// Reset reloads the register, substituting DefaultSeed for zero.
func (l *LFSR16) Reset(seed uint16) {
	if seed == 0 {
		seed = DefaultSeed
	}
	l.state = seed
}

// Bit returns the register output: bit 0 of the current (pre-shift) state.
func (l *LFSR16) Bit() uint8 {
	return uint8(l.state & 1)
}

// Tick shifts the register left by one, inserting the feedback bit at bit 0.
func (l *LFSR16) Tick() {
	fb := (l.state>>15 ^ l.state>>13 ^ l.state>>12 ^ l.state>>10) & 1
	l.state = l.state<<1 | fb
}

// State exposes the raw register value.
func (l *LFSR16) State() uint16 { return l.state }

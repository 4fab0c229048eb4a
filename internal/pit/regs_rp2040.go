//go:build rp2040

package pit

// RP2040 TIMER block.
const (
	timerBase = 0x40054000
	offINTR   = 0x34
	offINTE   = 0x38
)

//go:build rp2350

package pit

// RP2350 TIMER0 block. LOCKED and SOURCE sit between PAUSE and INTR, which
// shifts the interrupt registers by 8 bytes relative to the RP2040.
const (
	timerBase = 0x400B0000
	offINTR   = 0x3C
	offINTE   = 0x40
)

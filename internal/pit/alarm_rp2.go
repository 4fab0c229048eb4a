//go:build rp2040 || rp2350

package pit

import (
	"runtime/volatile"
	"unsafe"
)

// Offsets shared by both RP2 TIMER layouts.
const (
	offALARM0   = 0x10
	offARMED    = 0x20
	offTIMERAWL = 0x28
)

// AlarmIndex is the alarm this driver owns. Alarm 0 serves the TinyGo
// runtime's sleep timer.
const AlarmIndex = 1

// IRQ is TIMER_IRQ_1 on both the RP2040 and RP2350.
const IRQ = 1

func reg(off uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(timerBase) + off))
}

// Alarm emulates a reloading countdown on one RP2 TIMER alarm. The TIMER
// only compares its free-running microsecond counter against a target, so
// each re-arm advances the target by the load value.
type Alarm struct {
	alarm *volatile.Register32
	armed *volatile.Register32
	raw   *volatile.Register32
	intr  *volatile.Register32
	inte  *volatile.Register32
	mask  uint32

	load    uint32
	target  uint32
	running bool

	// Late counts re-arms whose deadline had already passed and were
	// rescheduled from the current count.
	Late uint32
}

var _ Controller = (*Alarm)(nil)

// NewAlarm binds alarm AlarmIndex with an initial load value. The alarm is
// left stopped and masked.
func NewAlarm(load uint32) *Alarm {
	return &Alarm{
		alarm: reg(offALARM0 + 4*AlarmIndex),
		armed: reg(offARMED),
		raw:   reg(offTIMERAWL),
		intr:  reg(offINTR),
		inte:  reg(offINTE),
		mask:  1 << AlarmIndex,
		load:  load,
	}
}

// Arm sets the next period. While running, the next target is measured from
// the previous one so the cadence does not drift by ISR latency.
func (a *Alarm) Arm(ticks uint32) {
	a.load = ticks
	if !a.running {
		return
	}
	// The comparator only matches on equality; a target already behind the
	// counter would not fire until the 32-bit wrap.
	next, late := NextTarget(a.target, a.raw.Get(), ticks)
	if late {
		a.Late++
	}
	a.schedule(next)
}

func (a *Alarm) HasElapsed() bool { return a.intr.HasBits(a.mask) }

// ClearElapsed writes 1 to the raw interrupt bit (write-1-to-clear).
func (a *Alarm) ClearElapsed() { a.intr.Set(a.mask) }

func (a *Alarm) EnableInterrupt(on bool) {
	if on {
		a.inte.SetBits(a.mask)
	} else {
		a.inte.ClearBits(a.mask)
	}
}

func (a *Alarm) Enable() {
	if a.running {
		return
	}
	a.running = true
	a.schedule(a.raw.Get() + a.load)
}

func (a *Alarm) Disable() {
	a.running = false
	a.armed.Set(a.mask) // write-1-to-disarm
}

func (a *Alarm) schedule(target uint32) {
	a.target = target
	a.alarm.Set(target) // writing ALARMn also arms it
}

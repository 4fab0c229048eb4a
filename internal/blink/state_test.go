package blink

import (
	"testing"

	"pitblink/errcode"
)

func inBounds(s *State) bool {
	return s.b.MinMs <= s.Delay() && s.Delay() <= s.b.MaxMs
}

// walk returns the delays produced by n steps, not including the start.
func walk(s *State, n int) (delays []uint32, flips []bool) {
	for i := 0; i < n; i++ {
		f := s.Step()
		delays = append(delays, s.Delay())
		flips = append(flips, f)
	}
	return delays, flips
}

func TestNewStartsSlowAndAccelerating(t *testing.T) {
	s := New(Bounds{MinMs: 5, MaxMs: 250, StepMs: 5})
	if s.Delay() != 250 || !s.Accelerating() {
		t.Fatalf("unexpected start: delay=%d accelerating=%v", s.Delay(), s.Accelerating())
	}
}

func TestTriangleDefaultProfile(t *testing.T) {
	b := Bounds{MinMs: 5, MaxMs: 250, StepMs: 5}
	s := New(b)
	delays, flips := walk(&s, b.Period())

	// Falling half: 245 .. 5.
	for i := 0; i < 49; i++ {
		want := uint32(245 - 5*i)
		if delays[i] != want {
			t.Fatalf("fall step %d: got %d want %d", i, delays[i], want)
		}
	}
	if !flips[48] || delays[48] != 5 {
		t.Fatalf("expected flip at 5, got delay=%d flip=%v", delays[48], flips[48])
	}
	// Rising half: 10 .. 250.
	for i := 0; i < 49; i++ {
		want := uint32(10 + 5*i)
		if delays[49+i] != want {
			t.Fatalf("rise step %d: got %d want %d", i, delays[49+i], want)
		}
	}
	if !flips[97] || delays[97] != 250 || !s.Accelerating() {
		t.Fatalf("expected flip back to accelerating at 250")
	}
}

func TestUnevenStepClamps(t *testing.T) {
	s := New(Bounds{MinMs: 5, MaxMs: 12, StepMs: 5})
	delays, flips := walk(&s, 8)
	want := []uint32{7, 5, 10, 12, 7, 5, 10, 12}
	wantFlip := []bool{false, true, false, true, false, true, false, true}
	for i := range want {
		if delays[i] != want[i] || flips[i] != wantFlip[i] {
			t.Fatalf("step %d: got (%d,%v) want (%d,%v)", i, delays[i], flips[i], want[i], wantFlip[i])
		}
	}
}

func TestSequenceIsPeriodic(t *testing.T) {
	for _, b := range []Bounds{
		{MinMs: 5, MaxMs: 250, StepMs: 5},
		{MinMs: 5, MaxMs: 12, StepMs: 5},
		{MinMs: 1, MaxMs: 100, StepMs: 7},
		{MinMs: 10, MaxMs: 11, StepMs: 50},
	} {
		s := New(b)
		p := b.Period()
		first, _ := walk(&s, p)
		if s.Delay() != b.MaxMs || !s.Accelerating() {
			t.Fatalf("%+v: state after one period = (%d,%v)", b, s.Delay(), s.Accelerating())
		}
		second, _ := walk(&s, p)
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%+v: period mismatch at %d: %d vs %d", b, i, first[i], second[i])
			}
		}
	}
}

func TestInvariantAndFlipIffClamp(t *testing.T) {
	b := Bounds{MinMs: 3, MaxMs: 97, StepMs: 6}
	s := New(b)
	for i := 0; i < 10*b.Period(); i++ {
		prevAcc := s.Accelerating()
		flipped := s.Step()
		if !inBounds(&s) {
			t.Fatalf("step %d: delay %d out of bounds", i, s.Delay())
		}
		if flipped != (prevAcc != s.Accelerating()) {
			t.Fatalf("step %d: flip report %v disagrees with direction change", i, flipped)
		}
		atBound := s.Delay() == b.MinMs || s.Delay() == b.MaxMs
		if flipped != atBound {
			t.Fatalf("step %d: flipped=%v but delay=%d", i, flipped, s.Delay())
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		b    Bounds
		want errcode.Code
	}{
		{Bounds{MinMs: 5, MaxMs: 250, StepMs: 5}, errcode.OK},
		{Bounds{MinMs: 250, MaxMs: 250, StepMs: 5}, errcode.InvalidBounds},
		{Bounds{MinMs: 300, MaxMs: 250, StepMs: 5}, errcode.InvalidBounds},
		{Bounds{MinMs: 5, MaxMs: 250, StepMs: 0}, errcode.InvalidStep},
	}
	for _, tc := range cases {
		if got := errcode.Of(tc.b.Validate()); got != tc.want {
			t.Fatalf("%+v: got %q want %q", tc.b, got, tc.want)
		}
	}
}

func TestPeriod(t *testing.T) {
	if p := (Bounds{MinMs: 5, MaxMs: 250, StepMs: 5}).Period(); p != 98 {
		t.Fatalf("period=%d want 98", p)
	}
	if p := (Bounds{MinMs: 5, MaxMs: 12, StepMs: 5}).Period(); p != 4 {
		t.Fatalf("period=%d want 4", p)
	}
}

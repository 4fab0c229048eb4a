package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{250, "250"},
		{250000, "250000"},
		{^uint64(0), "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d)=%q want %q", c.n, got, c.want)
		}
	}
	if len(Utoa(nil, 7)) != 0 {
		t.Fatal("empty buffer should yield empty slice")
	}
}

func TestAppendUint(t *testing.T) {
	got := string(AppendUint([]byte("delay="), 245))
	if got != "delay=245" {
		t.Fatalf("AppendUint=%q", got)
	}
}

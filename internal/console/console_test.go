package console

import (
	"bytes"
	"errors"
	"testing"

	"pitblink/errcode"
)

func TestPrintln(t *testing.T) {
	var out bytes.Buffer
	c := New(&out)
	c.Println("[main]", "delay_ms=", uint32(250), "accelerating=", true)
	c.Println("[main]", -7, errors.New("invalid_step"), struct{}{})

	want := "[main] delay_ms= 250 accelerating= true\r\n" +
		"[main] -7 invalid_step ?\r\n"
	if got := out.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrintlnEmpty(t *testing.T) {
	var out bytes.Buffer
	New(&out).Println()
	if out.String() != "\r\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestOpenErrorKeepsCause(t *testing.T) {
	cause := errors.New("baud out of range")
	err := openError(cause)
	if errcode.Of(err) != errcode.NoConsole {
		t.Fatalf("code=%q", errcode.Of(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if err.Error() != "console: no_console: uart configure failed" {
		t.Fatalf("Error()=%q", err.Error())
	}
}

// Package console writes tagged boot diagnostics. It formats without fmt so
// the MCU build stays small; it must never be called from interrupt context.
package console

import (
	"io"

	"pitblink/errcode"
	"pitblink/x/conv"
)

// Console prints space-separated lines, println style.
type Console struct {
	w   io.Writer
	buf []byte
}

func New(w io.Writer) *Console {
	return &Console{w: w, buf: make([]byte, 0, 96)}
}

// Println writes a ... as one line. Strings, bools, errors and integer
// kinds are rendered; anything else prints as "?".
func (c *Console) Println(a ...any) {
	b := c.buf[:0]
	for i, v := range a {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendAny(b, v)
	}
	b = append(b, '\r', '\n')
	_, _ = c.w.Write(b)
	c.buf = b[:0]
}

func appendAny(b []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(b, "<nil>"...)
	case string:
		return append(b, x...)
	case bool:
		if x {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case error:
		return append(b, x.Error()...)
	case int:
		return appendInt(b, int64(x))
	case int32:
		return appendInt(b, int64(x))
	case int64:
		return appendInt(b, x)
	case uint:
		return conv.AppendUint(b, uint64(x))
	case uint8:
		return conv.AppendUint(b, uint64(x))
	case uint16:
		return conv.AppendUint(b, uint64(x))
	case uint32:
		return conv.AppendUint(b, uint64(x))
	case uint64:
		return conv.AppendUint(b, x)
	default:
		return append(b, '?')
	}
}

func appendInt(b []byte, n int64) []byte {
	if n < 0 {
		b = append(b, '-')
		return conv.AppendUint(b, uint64(-n))
	}
	return conv.AppendUint(b, uint64(n))
}

// openError keeps the driver's cause behind a stable code.
func openError(err error) error {
	return &errcode.E{C: errcode.NoConsole, Op: "console", Msg: "uart configure failed", Err: err}
}

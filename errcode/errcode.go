package errcode

// Code is a stable error identifier for boot-time faults.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidBounds Code = "invalid_bounds"
	InvalidStep   Code = "invalid_step"
	InvalidClock  Code = "invalid_clock"
	Overflow      Code = "overflow"
	UnknownPin    Code = "unknown_pin"
	NoConsole     Code = "no_console"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and detail alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// New builds an *E for op with code c.
func New(op string, c Code, msg string) *E {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

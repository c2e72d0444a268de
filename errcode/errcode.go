package errcode

// Code is a stable error identifier for register-access failures.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// OutOfRange reports a PHY or port index beyond what the chip provides.
	OutOfRange Code = "out_of_range"
	// InvalidAddress reports a register address with no documented register.
	InvalidAddress Code = "invalid_address"

	Error Code = "error" // generic fallback
)

// E attaches context and a cause to a Code. The register core returns bare
// Codes; E is for callers that want to keep the failing operation and the
// underlying bus error while staying matchable through Of.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

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

package errcode

import (
	"errors"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	var err error = OutOfRange
	if err.Error() != "out_of_range" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if Of(err) != OutOfRange {
		t.Fatalf("Of = %v", Of(err))
	}
}

func TestOfNil(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) = %v, want OK", Of(nil))
	}
}

func TestOfUnknownError(t *testing.T) {
	if Of(errors.New("nack")) != Error {
		t.Fatalf("unknown error should map to the generic code")
	}
}

func TestWrapperKeepsCodeAndCause(t *testing.T) {
	cause := errors.New("bus stuck")
	err := &E{C: InvalidAddress, Op: "smi.Read", Msg: "register 0x44", Err: cause}

	if Of(err) != InvalidAddress {
		t.Errorf("Of = %v, want invalid_address", Of(err))
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not reachable through Unwrap")
	}
	if err.Error() != "invalid_address: register 0x44" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapperWithoutMessage(t *testing.T) {
	err := &E{C: OutOfRange}
	if err.Error() != "out_of_range" {
		t.Errorf("Error() = %q", err.Error())
	}
	if Of(err) != OutOfRange {
		t.Errorf("Of = %v", Of(err))
	}
}

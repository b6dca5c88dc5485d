package cpu

import (
	"errors"

	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt      = errors.New(f("hault"))
	ErrImageSize = errors.New(f("image larger than memory"))

	// Instruction encode errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrIllegalOpcode is the decode failure of a single opcode byte.
type ErrIllegalOpcode byte

func (eo ErrIllegalOpcode) Error() string {
	return f("illegal opcode 0x%02x", byte(eo))
}

// Is matches any ErrIllegalOpcode, regardless of value.
func (eo ErrIllegalOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegalOpcode)
	return
}

// ErrFault is the terminal fault of a Cpu.
type ErrFault struct {
	Pc  uint16 // PC after the faulting opcode was fetched.
	Err error
}

func (err *ErrFault) Error() string {
	return f("fault at pc 0x%04x: %v", err.Pc, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

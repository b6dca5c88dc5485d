package emulator

import (
	"errors"

	"github.com/ezrec/acc8/memimage"
	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrMismatch lists where final memory differs from the expected image.
type ErrMismatch struct {
	Differences []memimage.Difference
}

func (err *ErrMismatch) Error() string {
	if len(err.Differences) == 0 {
		return f("memory mismatch")
	}
	return f("memory mismatch at %v addresses, first %v", len(err.Differences), err.Differences[0])
}

package memimage

import (
	"errors"

	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	ErrImageSyntax = errors.New(f("image syntax"))
	ErrImageType   = errors.New(f("image is not a list, tuple or bytes"))
	ErrImageSize   = errors.New(f("image larger than memory"))
)

// ErrImageByte is an image entry that is not a byte value.
type ErrImageByte struct {
	Index int    // Index of the entry in the image.
	Value string // Starlark representation of the entry.
}

func (err *ErrImageByte) Error() string {
	return f("entry %v: %v is not a byte", err.Index, err.Value)
}

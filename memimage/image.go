// Package memimage reads, writes and compares acc8 memory images.
//
// An image is a starlark expression that evaluates to a list or tuple
// of byte values, or to a bytes literal. Names passed as defines (such
// as opcode mnemonics) may be used in the expression:
//
//	# load 5 into acc, then hault
//	[LOAD_ACC_CONST, 5, HAULT] + [0] * 13 + [0xff]
//
// Negative values from -128 to -1 are stored as two's complement bytes.
package memimage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/acc8/cpu"
)

// Parse evaluates the image expression read from r.
func Parse(name string, r io.Reader, defines iter.Seq2[string, int]) (image []byte, err error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return
	}

	pred := starlark.StringDict{}
	if defines != nil {
		for key, value := range defines {
			pred[key] = starlark.MakeInt(value)
		}
	}

	thread := starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("image: %v: %v", name, msg) },
	}
	opts := syntax.FileOptions{}
	prog := "image = (\n" + string(src) + "\n)\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, name, prog, pred)
	if err != nil {
		err = errors.Join(ErrImageSyntax, err)
		return
	}

	value, ok := dict["image"]
	if !ok {
		err = ErrImageSyntax
		return
	}

	switch value := value.(type) {
	case starlark.Bytes:
		image = []byte(string(value))
	case *starlark.List:
		image, err = fromIndexable(value)
	case starlark.Tuple:
		image, err = fromIndexable(value)
	default:
		err = ErrImageType
	}
	if err != nil {
		image = nil
		return
	}

	if len(image) > cpu.MEMORY_SIZE {
		image = nil
		err = ErrImageSize
		return
	}

	return
}

// fromIndexable converts a starlark sequence of ints into bytes.
func fromIndexable(seq starlark.Indexable) (image []byte, err error) {
	if seq.Len() > cpu.MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	image = make([]byte, seq.Len())
	for n := range seq.Len() {
		item := seq.Index(n)
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = &ErrImageByte{Index: n, Value: item.String()}
			return
		}
		value, ok := st_int.Int64()
		if !ok || value < -128 || value > 255 {
			err = &ErrImageByte{Index: n, Value: item.String()}
			return
		}
		image[n] = byte(value)
	}

	return
}

// Format writes mem as an image, with trailing zero bytes trimmed.
func Format(w io.Writer, mem []byte) (err error) {
	end := len(mem)
	for end > 0 && mem[end-1] == 0 {
		end--
	}

	bw := bufio.NewWriter(w)

	_, err = bw.WriteString("[\n")
	if err != nil {
		return
	}

	for n := 0; n < end; n += 16 {
		line := fmt.Sprintf("    # 0x%04x\n   ", n)
		for _, value := range mem[n:min(n+16, end)] {
			line += fmt.Sprintf(" 0x%02x,", value)
		}
		_, err = bw.WriteString(line + "\n")
		if err != nil {
			return
		}
	}

	_, err = bw.WriteString("]\n")
	if err != nil {
		return
	}

	err = bw.Flush()
	return
}

// Difference is a single byte that differs between two images.
type Difference struct {
	Addr uint16
	Got  byte
	Want byte
}

func (diff Difference) String() string {
	return f("0x%04x: got 0x%02x, want 0x%02x", diff.Addr, diff.Got, diff.Want)
}

// Compare returns every address where got and want differ.
// Both are treated as zero filled to the full memory size.
func Compare(got, want []byte) (diffs []Difference) {
	at := func(mem []byte, n int) byte {
		if n < len(mem) {
			return mem[n]
		}
		return 0
	}

	end := min(max(len(got), len(want)), cpu.MEMORY_SIZE)
	for n := range end {
		g, w := at(got, n), at(want, n)
		if g != w {
			diffs = append(diffs, Difference{Addr: uint16(n), Got: g, Want: w})
		}
	}

	return
}

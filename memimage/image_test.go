package memimage

import (
	"bytes"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/acc8/cpu"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	defines := maps.All(map[string]int{
		"LOAD_ACC_CONST": 0x09,
		"HAULT":          0x1c,
	})

	table := [](struct {
		name  string
		text  string
		image []byte
	}){
		{"list", "[0x09, 5, 0x1c]", []byte{0x09, 5, 0x1c}},
		{"tuple", "0x09, 5, 0x1c", []byte{0x09, 5, 0x1c}},
		{"bytes", `b"\x09\x05\x1c"`, []byte{0x09, 5, 0x1c}},
		{"defines", "[LOAD_ACC_CONST, 5, HAULT]", []byte{0x09, 5, 0x1c}},
		{"comments", "# program\n[\n  LOAD_ACC_CONST, 5, # acc = 5\n  HAULT,\n]\n", []byte{0x09, 5, 0x1c}},
		{"expression", "[HAULT] + [0] * 2 + [1 << 7, 0x10 | 3]", []byte{0x1c, 0, 0, 0x80, 0x13}},
		{"negative", "[-1, -128]", []byte{0xff, 0x80}},
		{"empty", "[]", []byte{}},
	}

	for _, entry := range table {
		image, err := Parse(entry.name, strings.NewReader(entry.text), defines)
		assert.NoError(err, entry.name)
		assert.Equal(entry.image, image, entry.name)
	}
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"syntax", "[1, 2", ErrImageSyntax},
		{"undefined", "[NOPE]", ErrImageSyntax},
		{"int", "7", ErrImageType},
		{"string", `"abc"`, ErrImageType},
		{"size", "[0] * 65537", ErrImageSize},
		{"bytes_size", `b"\x00" * 65537`, ErrImageSize},
	}

	for _, entry := range table {
		image, err := Parse(entry.name, strings.NewReader(entry.text), nil)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(image, entry.name)
	}
}

func TestParse_Byte(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		index int
		value string
	}){
		{"[1, 256]", 1, "256"},
		{"[-129]", 0, "-129"},
		{`[0, 1, "x"]`, 2, `"x"`},
		{"[0.5]", 0, "0.5"},
	}

	for _, entry := range table {
		_, err := Parse("byte", strings.NewReader(entry.text), nil)
		var bad *ErrImageByte
		if assert.ErrorAs(err, &bad, entry.text) {
			assert.Equal(entry.index, bad.Index, entry.text)
			assert.Equal(entry.value, bad.Value, entry.text)
		}
	}
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	mem := make([]byte, cpu.MEMORY_SIZE)
	copy(mem, []byte{0x09, 0x05, 0x1c})
	mem[0x20] = 0xff

	buf := &bytes.Buffer{}
	assert.NoError(Format(buf, mem))

	text := buf.String()
	assert.True(strings.HasPrefix(text, "[\n    # 0x0000\n    0x09, 0x05, 0x1c, 0x00,"), text)
	assert.True(strings.HasSuffix(text, "    # 0x0020\n    0xff,\n]\n"), text)

	image, err := Parse("format", strings.NewReader(text), nil)
	assert.NoError(err)
	assert.Equal(0x21, len(image))
	assert.Empty(Compare(image, mem))
}

func TestFormat_Empty(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	assert.NoError(Format(buf, make([]byte, 16)))
	assert.Equal("[\n]\n", buf.String())

	image, err := Parse("empty", buf, nil)
	assert.NoError(err)
	assert.Empty(image)
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	got := []byte{1, 2, 3}
	want := []byte{1, 9, 3, 0, 0, 4}

	assert.Equal([]Difference{
		{Addr: 1, Got: 2, Want: 9},
		{Addr: 5, Got: 0, Want: 4},
	}, Compare(got, want))

	assert.Empty(Compare(got, []byte{1, 2, 3, 0, 0}))
	assert.Empty(Compare(nil, nil))

	full := make([]byte, cpu.MEMORY_SIZE)
	full[0xffff] = 0xaa
	diffs := Compare(full, nil)
	assert.Equal([]Difference{{Addr: 0xffff, Got: 0xaa, Want: 0}}, diffs)
	assert.True(strings.Contains(diffs[0].String(), "0xffff"), diffs[0].String())
}

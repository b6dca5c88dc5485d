package cpu

const (
	MEMORY_SIZE = 1 << 16 // Bytes of memory, one per 16-bit address.
)

// Machine is the register file and memory of the CPU.
//
// Every uint16 is a valid address, so no access can fail. Word
// accesses are big-endian, and wrap from 0xffff to 0x0000.
type Machine struct {
	Acc uint8  // Accumulator.
	Mar uint16 // Memory address register.
	Ir  uint8  // Most recently fetched opcode.
	Pc  uint16 // Address of the next byte to fetch.

	memory [MEMORY_SIZE]byte
}

// Reset clears the registers, and loads memory from image.
// Memory past the end of image is zeroed.
func (mach *Machine) Reset(image []byte) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	mach.Acc = 0
	mach.Mar = 0
	mach.Ir = 0
	mach.Pc = 0

	n := copy(mach.memory[:], image)
	clear(mach.memory[n:])

	return
}

// Memory returns a copy of the full memory.
func (mach *Machine) Memory() (mem []byte) {
	mem = make([]byte, MEMORY_SIZE)
	copy(mem, mach.memory[:])
	return
}

// FetchByte reads the byte at PC, and advances PC.
func (mach *Machine) FetchByte() (value byte) {
	value = mach.memory[mach.Pc]
	mach.Pc++
	return
}

// FetchWord reads the big-endian word at PC, and advances PC by two.
func (mach *Machine) FetchWord() (value uint16) {
	hi := mach.FetchByte()
	lo := mach.FetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (mach *Machine) ReadByte(addr uint16) byte {
	return mach.memory[addr]
}

func (mach *Machine) ReadWord(addr uint16) uint16 {
	return uint16(mach.memory[addr])<<8 | uint16(mach.memory[addr+1])
}

func (mach *Machine) WriteByte(addr uint16, value byte) {
	mach.memory[addr] = value
}

func (mach *Machine) WriteWord(addr uint16, value uint16) {
	mach.memory[addr] = byte(value >> 8)
	mach.memory[addr+1] = byte(value)
}

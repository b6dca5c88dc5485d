package cpu

import (
	"iter"
)

// Opcode bit layout.
const (
	OPCODE_MATH_BIT = 0b1000_0000 // Set for all Math opcodes.

	OPCODE_MEM_MASK   = 0b1111_0000 // Load/Store class mask.
	OPCODE_MEM        = 0b0000_0000 // Load/Store class.
	OPCODE_MEM_LOAD   = 0b0000_1000 // Set for Load, clear for Store.
	OPCODE_MEM_REG    = 0b0000_0100 // Register select.
	OPCODE_MEM_METHOD = 0b0000_0011 // MemoryMethod code.

	OPCODE_BRANCH_MASK = 0b1111_1000 // Branch class mask.
	OPCODE_BRANCH      = 0b0001_0000 // Branch class.
	OPCODE_BRANCH_KIND = 0b0000_0111 // BranchKind code.

	OPCODE_NOP   = 0b0001_1000
	OPCODE_HAULT = 0b0001_1100
)

// Decode an opcode byte into an instruction.
func Decode(opcode byte) (ins Instruction, err error) {
	switch {
	case opcode&OPCODE_MATH_BIT != 0:
		ins = Math{
			Func: MathFunc((opcode >> 4) & 0x7),
			Dst:  Target((opcode >> 2) & 0x3),
			Src:  Target((opcode >> 0) & 0x3),
		}
	case opcode&OPCODE_MEM_MASK == OPCODE_MEM:
		method := MemoryMethod(opcode & OPCODE_MEM_METHOD)
		if method > MEM_INDIRECT {
			err = ErrIllegalOpcode(opcode)
			return
		}
		reg := Register((opcode & OPCODE_MEM_REG) >> 2)
		if opcode&OPCODE_MEM_LOAD != 0 {
			ins = Load{Dst: reg, Src: method}
		} else {
			ins = Store{Src: reg, Dst: method}
		}
	case opcode&OPCODE_BRANCH_MASK == OPCODE_BRANCH:
		kind := BranchKind(opcode & OPCODE_BRANCH_KIND)
		if kind > BRANCH_BGE {
			err = ErrIllegalOpcode(opcode)
			return
		}
		ins = Branch{Kind: kind}
	case opcode == OPCODE_NOP:
		ins = Nop{}
	case opcode == OPCODE_HAULT:
		ins = Hault{}
	default:
		err = ErrIllegalOpcode(opcode)
	}

	return
}

// Encode an instruction into its opcode byte.
func Encode(ins Instruction) (opcode byte, err error) {
	switch ins := ins.(type) {
	case Math:
		if !ins.Func.valid() || !ins.Src.valid() || !ins.Dst.valid() {
			err = ErrInstructionInvalid
			return
		}
		opcode = OPCODE_MATH_BIT | byte(ins.Func)<<4 | byte(ins.Dst)<<2 | byte(ins.Src)
	case Load:
		if !ins.Dst.valid() || !ins.Src.valid() {
			err = ErrInstructionInvalid
			return
		}
		opcode = OPCODE_MEM | OPCODE_MEM_LOAD | byte(ins.Dst)<<2 | byte(ins.Src)
	case Store:
		if !ins.Src.valid() || !ins.Dst.valid() {
			err = ErrInstructionInvalid
			return
		}
		opcode = OPCODE_MEM | byte(ins.Src)<<2 | byte(ins.Dst)
	case Branch:
		if !ins.Kind.valid() {
			err = ErrInstructionInvalid
			return
		}
		opcode = OPCODE_BRANCH | byte(ins.Kind)
	case Nop:
		opcode = OPCODE_NOP
	case Hault:
		opcode = OPCODE_HAULT
	default:
		err = ErrInstructionInvalid
	}

	return
}

// Opcodes iterates over every legal opcode, in ascending order.
func Opcodes() iter.Seq2[byte, Instruction] {
	return func(yield func(opcode byte, ins Instruction) bool) {
		for n := range 256 {
			ins, err := Decode(byte(n))
			if err != nil {
				continue
			}
			if !yield(byte(n), ins) {
				return
			}
		}
	}
}

func (fn MathFunc) valid() bool { return fn >= MATH_AND && fn <= MATH_NOT }
func (tg Target) valid() bool { return tg >= TARGET_INDIRECT && tg <= TARGET_MEMORY }
func (reg Register) valid() bool { return reg == REG_ACC || reg == REG_MAR }
func (mm MemoryMethod) valid() bool { return mm >= MEM_ADDRESS && mm <= MEM_INDIRECT }
func (kind BranchKind) valid() bool { return kind >= BRANCH_BRA && kind <= BRANCH_BGE }

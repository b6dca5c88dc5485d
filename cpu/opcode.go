package cpu

import (
	"fmt"
)

// MathFunc is an ALU function of a Math instruction.
type MathFunc int

//go:generate go tool stringer -linecomment -type=MathFunc
const (
	MATH_AND = MathFunc(0) // and
	MATH_OR  = MathFunc(1) // or
	MATH_XOR = MathFunc(2) // xor
	MATH_ADD = MathFunc(3) // add
	MATH_SUB = MathFunc(4) // sub
	MATH_INC = MathFunc(5) // inc
	MATH_DEC = MathFunc(6) // dec
	MATH_NOT = MathFunc(7) // not
)

// Target is the addressing mode of a Math operand.
type Target int

//go:generate go tool stringer -linecomment -type=Target
const (
	TARGET_INDIRECT = Target(0) // ind
	TARGET_ACC      = Target(1) // acc
	TARGET_MAR      = Target(2) // mar
	TARGET_MEMORY   = Target(3) // mem
)

// Register selects the register of a Load or Store.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_ACC = Register(0) // acc
	REG_MAR = Register(1) // mar
)

// MemoryMethod is the addressing mode of a Load or Store.
type MemoryMethod int

//go:generate go tool stringer -linecomment -type=MemoryMethod
const (
	MEM_ADDRESS  = MemoryMethod(0) // addr
	MEM_CONSTANT = MemoryMethod(1) // const
	MEM_INDIRECT = MemoryMethod(2) // ind
)

// BranchKind is the condition tested by a Branch.
type BranchKind int

//go:generate go tool stringer -linecomment -type=BranchKind
const (
	BRANCH_BRA = BranchKind(0) // bra
	BRANCH_BRZ = BranchKind(1) // brz
	BRANCH_BNE = BranchKind(2) // bne
	BRANCH_BLT = BranchKind(3) // blt
	BRANCH_BLE = BranchKind(4) // ble
	BRANCH_BGT = BranchKind(5) // bgt
	BRANCH_BGE = BranchKind(6) // bge
)

// Instruction is a decoded opcode. The set of implementations is closed:
// Math, Load, Store, Branch, Nop and Hault.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// Math applies Func to the Src and Dst operands, and writes the result to Dst.
type Math struct {
	Func MathFunc
	Src  Target
	Dst  Target
}

// Load copies a value from memory, or the instruction stream, into a register.
type Load struct {
	Dst Register
	Src MemoryMethod
}

// Store copies a register into memory.
type Store struct {
	Src Register
	Dst MemoryMethod
}

// Branch sets PC to the following word operand if Kind holds for ACC.
type Branch struct {
	Kind BranchKind
}

// Nop does nothing.
type Nop struct{}

// Hault stops the CPU.
type Hault struct{}

func (Math) isInstruction()   {}
func (Load) isInstruction()   {}
func (Store) isInstruction()  {}
func (Branch) isInstruction() {}
func (Nop) isInstruction()    {}
func (Hault) isInstruction()  {}

func (ins Math) String() string {
	return fmt.Sprintf("%v.%v.%v", ins.Func, ins.Dst, ins.Src)
}

func (ins Load) String() string {
	return fmt.Sprintf("load.%v.%v", ins.Dst, ins.Src)
}

func (ins Store) String() string {
	return fmt.Sprintf("store.%v.%v", ins.Src, ins.Dst)
}

func (ins Branch) String() string {
	return ins.Kind.String()
}

func (Nop) String() string {
	return "nop"
}

func (Hault) String() string {
	return "hault"
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"strings"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Reason is why a run terminated.
type Reason int

//go:generate go tool stringer -linecomment -type=Reason
const (
	REASON_HALTED  = Reason(0) // halted
	REASON_FAULTED = Reason(1) // faulted
)

// Termination describes how a run ended.
type Termination struct {
	Reason Reason
	Opcode byte   // Faulting opcode, when Reason is REASON_FAULTED.
	Pc     uint16 // Faulting PC (past the opcode), when Reason is REASON_FAULTED.
}

func (term Termination) String() string {
	if term.Reason == REASON_FAULTED {
		return f("%v: opcode 0x%02x pc 0x%04x", term.Reason, term.Opcode, term.Pc)
	}
	return term.Reason.String()
}

// Cpu is the simulation context of the accumulator CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Machine // Registers and memory.

	State State // Current execution state.
	Ticks int   // CPU ticks counter.

	err error // Terminal error, once not running.
}

// NewCpu creates a new CPU, with memory loaded from image.
func NewCpu(image []byte) (cpu *Cpu, err error) {
	cpu = &Cpu{}
	err = cpu.Reset(image)
	if err != nil {
		cpu = nil
		return
	}

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Loads memory from image, zero filled.
// - Zeros the tick counter.
// - Sets the CPU to running.
func (cpu *Cpu) Reset(image []byte) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset, %d byte image", len(image))
	}

	err = cpu.Machine.Reset(image)
	if err != nil {
		return
	}

	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
	cpu.err = nil

	return
}

// Defines for the cpu: the mnemonic of every legal opcode.
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return Defines()
}

// Defines maps the mnemonic of every legal opcode to its value,
// ie "LOAD_ACC_CONST" or "ADD_MEM_ACC".
func Defines() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for opcode, ins := range Opcodes() {
			name := strings.ToUpper(strings.ReplaceAll(ins.String(), ".", "_"))
			if !yield(name, int(opcode)) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"state", "pc", "ir", "acc", "mar"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.State.String()
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "ir":
			strval = fmt.Sprintf("%02X", cpu.Ir)
		case "acc":
			strval = fmt.Sprintf("%02X (%d)", cpu.Acc, int8(cpu.Acc))
		case "mar":
			strval = fmt.Sprintf("%04X", cpu.Mar)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Termination returns how the CPU stopped, and false if it is still running.
func (cpu *Cpu) Termination() (term Termination, done bool) {
	switch cpu.State {
	case STATE_HALTED:
		term.Reason = REASON_HALTED
		done = true
	case STATE_FAULTED:
		term.Reason = REASON_FAULTED
		term.Opcode = cpu.Ir
		var fault *ErrFault
		if errors.As(cpu.err, &fault) {
			term.Pc = fault.Pc
		}
		done = true
	}

	return
}

// Run ticks the CPU until it haults or faults.
// Programs that never hault never return.
func (cpu *Cpu) Run() (term Termination) {
	for cpu.Tick() == nil {
	}

	term, _ = cpu.Termination()

	if cpu.Verbose {
		log.Printf("cpu: %v after %d ticks", term, cpu.Ticks)
	}

	return
}

// Tick executes a single CPU instruction cycle.
// Returns ErrHalt after a hault, or an *ErrFault on an illegal opcode.
// Once the CPU has stopped, Tick returns the same error without
// any effect.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_RUNNING {
		return cpu.err
	}

	defer func() {
		cpu.Ticks++
		if err == nil {
			return
		}
		if errors.Is(err, ErrHalt) {
			cpu.State = STATE_HALTED
		} else {
			cpu.State = STATE_FAULTED
		}
		cpu.err = err
	}()

	pc := cpu.Pc
	cpu.Ir = cpu.FetchByte()

	ins, err := Decode(cpu.Ir)
	if err != nil {
		if cpu.Verbose {
			log.Printf("cpu: %04x: %02x %v", pc, cpu.Ir, err)
		}
		err = &ErrFault{Pc: cpu.Pc, Err: err}
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: %02x %v", pc, cpu.Ir, ins)
	}

	err = cpu.Execute(ins)
	return
}

// Execute executes a single decoded instruction, with PC past its opcode.
// Returns ErrHalt for Hault.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	// Reject out of range fields before consuming any operands.
	_, err = Encode(ins)
	if err != nil {
		err = errors.Join(err, fmt.Errorf("%#v", ins))
		return
	}

	switch ins := ins.(type) {
	case Math:
		src, _ := cpu.getTarget(ins.Src)
		dst, set_dst := cpu.getTarget(ins.Dst)
		set_dst(cpu.doMath(ins.Func, src, dst))
	case Load:
		cpu.doLoad(ins.Dst, ins.Src)
	case Store:
		cpu.doStore(ins.Src, ins.Dst)
	case Branch:
		target := cpu.FetchWord()
		if cpu.doCond(ins.Kind) {
			cpu.Pc = target
		}
	case Nop:
		// pass
	case Hault:
		err = ErrHalt
	}

	return
}

// getTarget resolves a math operand to its value, and a function to
// write a result back to the same location. Memory targets consume an
// address from the instruction stream.
func (cpu *Cpu) getTarget(tg Target) (value uint16, set_target func(value uint16)) {
	switch tg {
	case TARGET_ACC:
		value = uint16(cpu.Acc)
		set_target = func(value uint16) { cpu.Acc = uint8(value) }
	case TARGET_MAR:
		value = cpu.Mar
		set_target = func(value uint16) { cpu.Mar = value }
	case TARGET_MEMORY:
		addr := cpu.FetchWord()
		value = cpu.ReadWord(addr)
		set_target = func(value uint16) { cpu.WriteWord(addr, value) }
	case TARGET_INDIRECT:
		addr := cpu.Mar
		value = uint16(cpu.ReadByte(addr))
		set_target = func(value uint16) { cpu.WriteByte(addr, uint8(value)) }
	default:
		panic("unknown target")
	}

	return
}

// doMath performs the requested function, and returns the output value.
// Inc, Dec and Not only use the first operand.
func (cpu *Cpu) doMath(fn MathFunc, a uint16, b uint16) (output uint16) {
	switch fn {
	case MATH_AND:
		output = a & b
	case MATH_OR:
		output = a | b
	case MATH_XOR:
		output = a ^ b
	case MATH_ADD:
		output = a + b
	case MATH_SUB:
		output = a - b
	case MATH_INC:
		output = a + 1
	case MATH_DEC:
		output = a - 1
	case MATH_NOT:
		output = ^a
	}

	return
}

// doLoad loads a register. Constants are read from the instruction
// stream, sized to the register.
func (cpu *Cpu) doLoad(reg Register, method MemoryMethod) {
	var addr uint16
	switch method {
	case MEM_CONSTANT:
		if reg == REG_ACC {
			cpu.Acc = cpu.FetchByte()
		} else {
			cpu.Mar = cpu.FetchWord()
		}
		return
	case MEM_ADDRESS:
		addr = cpu.FetchWord()
	case MEM_INDIRECT:
		addr = cpu.Mar
	}

	if reg == REG_ACC {
		cpu.Acc = cpu.ReadByte(addr)
	} else {
		cpu.Mar = cpu.ReadWord(addr)
	}
}

// doStore stores a register. A constant destination is treated as an
// address in the instruction stream.
func (cpu *Cpu) doStore(reg Register, method MemoryMethod) {
	var addr uint16
	switch method {
	case MEM_ADDRESS, MEM_CONSTANT:
		addr = cpu.FetchWord()
	case MEM_INDIRECT:
		addr = cpu.Mar
	}

	if reg == REG_ACC {
		cpu.WriteByte(addr, cpu.Acc)
	} else {
		cpu.WriteWord(addr, cpu.Mar)
	}
}

// doCond evaluates a branch condition against ACC.
// Ordering conditions treat ACC as signed.
func (cpu *Cpu) doCond(kind BranchKind) (taken bool) {
	acc := int8(cpu.Acc)
	switch kind {
	case BRANCH_BRA:
		taken = true
	case BRANCH_BRZ:
		taken = acc == 0
	case BRANCH_BNE:
		taken = acc != 0
	case BRANCH_BLT:
		taken = acc < 0
	case BRANCH_BLE:
		taken = acc <= 0
	case BRANCH_BGT:
		taken = acc > 0
	case BRANCH_BGE:
		taken = acc >= 0
	}

	return
}

// Package cpu implements the 8-bit accumulator CPU of the acc8 system.
//
// The CPU consists of an 8-bit accumulator (ACC), a 16-bit memory address
// register (MAR), an instruction register (IR), a 16-bit program counter
// (PC), and 64K bytes of memory. Every instruction is a single opcode byte,
// optionally followed by big-endian operands in the instruction stream.
//
// Opcode classes:
//
//	1fff_ddss  math   fff: function, dd: destination, ss: source target
//	0000_lrmm  load   l=1, r: register, mm: memory method
//	0000_lrmm  store  l=0, r: register, mm: memory method
//	0001_0kkk  branch kkk: condition on ACC, followed by target address
//	0001_1000  nop
//	0001_1100  hault
//
// All other opcodes are illegal, and fault the CPU.
package cpu

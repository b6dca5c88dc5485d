// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/acc8/cpu"
	"github.com/ezrec/acc8/internal"
	"github.com/ezrec/acc8/memimage"
)

const (
	TICK_LIMIT_DEFAULT = 1 << 20 // Default limit of ticks for Run.
	CONTEXT_POLL       = 1024    // Ticks between context checks.
)

var _emulator_defines = map[string]int{
	"MEMORY_SIZE": cpu.MEMORY_SIZE,
}

// Emulator state. CPU + run limits.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	// TickLimit is the maximum CPU ticks since reset for Run.
	// Zero selects TICK_LIMIT_DEFAULT, negative is unlimited.
	TickLimit int
}

// NewEmulator creates a new emulator, with zeroed memory.
func NewEmulator() (emu *Emulator) {
	proc, err := cpu.NewCpu(nil)
	if err != nil {
		panic(err)
	}

	emu = &Emulator{
		Cpu: proc,
	}

	return
}

// Defines returns an iterator over all of the defines usable in images.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator, with memory loaded from mem.
func (emu *Emulator) Reset(mem []byte) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(mem)
	return
}

// Load parses an image, and resets the emulator with it.
func (emu *Emulator) Load(name string, r io.Reader) (err error) {
	mem, err := memimage.Parse(name, r, emu.Defines())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %v: %d bytes", name, len(mem))
	}

	err = emu.Reset(mem)
	return
}

// Tick performs a single tick of the emulator.
// done is set once the CPU haults or faults; a fault is also returned
// as err.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}
	if err != nil {
		done = true
		return
	}

	return
}

// Run ticks the emulator until the CPU haults or faults, the tick limit
// is exceeded, or ctx is done. term is only valid when err is nil.
func (emu *Emulator) Run(ctx context.Context) (term cpu.Termination, err error) {
	limit := emu.TickLimit
	if limit == 0 {
		limit = TICK_LIMIT_DEFAULT
	}

	for {
		if emu.Cpu.Ticks%CONTEXT_POLL == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}

		if limit > 0 && emu.Cpu.Ticks >= limit {
			if emu.Verbose {
				log.Printf("emulator: tick limit %d at pc 0x%04x", limit, emu.Cpu.Pc)
			}
			err = ErrTickLimit
			return
		}

		var done bool
		done, _ = emu.Tick()
		if done {
			break
		}
	}

	term, _ = emu.Cpu.Termination()

	if emu.Verbose {
		log.Printf("emulator: %v after %d ticks", term, emu.Cpu.Ticks)
	}

	return
}

// Verify compares memory against the expected image read from r.
// Returns an *ErrMismatch if any byte differs.
func (emu *Emulator) Verify(name string, r io.Reader) (err error) {
	want, err := memimage.Parse(name, r, emu.Defines())
	if err != nil {
		return
	}

	diffs := memimage.Compare(emu.Cpu.Memory(), want)
	if len(diffs) != 0 {
		if emu.Verbose {
			for _, diff := range diffs {
				log.Printf("emulator: %v: %v", name, diff)
			}
		}
		err = &ErrMismatch{Differences: diffs}
		return
	}

	return
}

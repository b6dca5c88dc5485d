package emulator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/acc8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(cpu.STATE_RUNNING, emu.Cpu.State)
	assert.Equal(0, emu.TickLimit)
}

func doLoad(t *testing.T, emu *Emulator, text string) {
	err := emu.Load(t.Name(), strings.NewReader(text))
	require.NoError(t, err)
}

func TestEmulator_Vectors(t *testing.T) {
	table := [](struct {
		name string
		term cpu.Termination
	}){
		{"hault", cpu.Termination{Reason: cpu.REASON_HALTED}},
		{"countdown", cpu.Termination{Reason: cpu.REASON_HALTED}},
		{"add16", cpu.Termination{Reason: cpu.REASON_HALTED}},
		{"signed", cpu.Termination{Reason: cpu.REASON_HALTED}},
		{"fault", cpu.Termination{Reason: cpu.REASON_FAULTED, Opcode: 0x1f, Pc: 6}},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			emu := NewEmulator()

			in, err := os.Open(filepath.Join("testdata", entry.name+".in"))
			require.NoError(t, err)
			defer in.Close()

			err = emu.Load(in.Name(), in)
			require.NoError(t, err)

			term, err := emu.Run(context.Background())
			assert.NoError(err)
			assert.Equal(entry.term, term)

			out, err := os.Open(filepath.Join("testdata", entry.name+".out"))
			require.NoError(t, err)
			defer out.Close()

			err = emu.Verify(out.Name(), out)
			assert.NoError(err)
		})
	}
}

func TestEmulator_TickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.TickLimit = 100
	doLoad(t, emu, "[BRA, 0x00, 0x00]")

	_, err := emu.Run(context.Background())
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(100, emu.Cpu.Ticks)
	assert.Equal(cpu.STATE_RUNNING, emu.Cpu.State)

	// Limit exactly reached by the hault is not exceeded.
	emu.TickLimit = 3
	doLoad(t, emu, "[NOP, NOP, HAULT]")
	term, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(cpu.REASON_HALTED, term.Reason)
	assert.Equal(3, emu.Cpu.Ticks)
}

func TestEmulator_TickLimit_Default(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(t, emu, "[BRA, 0x00, 0x00]")

	_, err := emu.Run(context.Background())
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(TICK_LIMIT_DEFAULT, emu.Cpu.Ticks)
}

func TestEmulator_Context(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.TickLimit = -1
	doLoad(t, emu, "[BRA, 0x00, 0x00]")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Cpu.Ticks)
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(t, emu, "[LOAD_ACC_CONST, 0x42, HAULT]")

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint8(0x42), emu.Cpu.Acc)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)

	doLoad(t, emu, "[0x20]")
	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrIllegalOpcode(0x20))
}

func TestEmulator_Verify_Mismatch(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(t, emu, "[LOAD_ACC_CONST, 9, STORE_ACC_ADDR, 0x00, 0x08, HAULT]")

	_, err := emu.Run(context.Background())
	assert.NoError(err)

	err = emu.Verify("want", strings.NewReader("[LOAD_ACC_CONST, 9, STORE_ACC_ADDR, 0x00, 0x08, HAULT, 0, 0, 8, 1]"))
	var mismatch *ErrMismatch
	if assert.ErrorAs(err, &mismatch) {
		assert.Equal(2, len(mismatch.Differences))
		assert.Equal(uint16(8), mismatch.Differences[0].Addr)
		assert.Equal(byte(9), mismatch.Differences[0].Got)
		assert.Equal(byte(8), mismatch.Differences[0].Want)
		assert.Equal(uint16(9), mismatch.Differences[1].Addr)
	}
}

func TestEmulator_Load_Error(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load("bad", strings.NewReader("[UNDEFINED_OPCODE]"))
	assert.Error(err)

	err = emu.Verify("bad", strings.NewReader("[1,"))
	assert.Error(err)
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]int{}
	for name, value := range emu.Defines() {
		defines[name] = value
	}

	assert.Equal(cpu.MEMORY_SIZE, defines["MEMORY_SIZE"])
	assert.Equal(0x1c, defines["HAULT"])
	assert.Equal(0xbf, defines["ADD_MEM_MEM"])
	assert.Equal(150, len(defines))
}

// Package emulator provides a headless SM83 machine: a CPU executing
// against a flat 64kB memory, with snapshot support.
package emulator

import (
	"fmt"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/emu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Emulator represents an SM83 machine. It contains the CPU and the
// memory it executes against, and is the main entry point for
// running programs.
type Emulator struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	// err is the first error raised by an Opt
	err error
}

// New returns a new Emulator with zeroed registers and memory, then
// applies opts in order.
func New(opts ...Opt) (*Emulator, error) {
	memBus := mmu.NewMMU()
	logger := log.NewNullLogger()

	e := &Emulator{
		CPU:    cpu.NewCPU(memBus, logger),
		MMU:    memBus,
		Logger: logger,
	}

	for _, opt := range opts {
		opt(e)
		if e.err != nil {
			return nil, e.err
		}
	}

	return e, nil
}

// Step executes a single instruction.
func (e *Emulator) Step() error {
	return e.CPU.Step()
}

// Run steps the CPU until until returns true, the CPU halts or stops,
// maxSteps instructions have executed (0 means no limit) or an error
// occurs. It returns the number of instructions executed. A nil until
// never stops the run.
func (e *Emulator) Run(maxSteps int, until func(*cpu.CPU) bool) (int, error) {
	steps := 0
	for maxSteps == 0 || steps < maxSteps {
		if until != nil && until(e.CPU) {
			break
		}
		if e.CPU.Halted() || e.CPU.Stopped() {
			break
		}
		if err := e.CPU.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// SaveState serializes the CPU and memory into a snapshot.
func (e *Emulator) SaveState() ([]byte, error) {
	s := types.NewState()
	e.CPU.SaveState(s)
	e.MMU.SaveState(s)

	raw, err := emu.Encode(s.Bytes())
	if err != nil {
		return nil, err
	}
	e.Debugf("saved state: PC 0x%04X, memory %016x", e.CPU.PC, e.MMU.Checksum())
	return raw, nil
}

// LoadState restores the CPU and memory from a snapshot produced by
// SaveState. A snapshot that fails to restore leaves the machine
// untouched.
func (e *Emulator) LoadState(raw []byte) error {
	data, err := emu.Decode(raw)
	if err != nil {
		return err
	}

	scratch := mmu.NewMMU()
	if err := restore(cpu.NewCPU(scratch, nil), scratch, data); err != nil {
		return err
	}
	if err := restore(e.CPU, e.MMU, data); err != nil {
		return err
	}

	e.Debugf("loaded state: PC 0x%04X, memory %016x", e.CPU.PC, e.MMU.Checksum())
	return nil
}

func restore(c *cpu.CPU, m *mmu.MMU, data []byte) error {
	s := types.StateFromBytes(data)
	c.LoadState(s)
	m.LoadState(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("emulator: restoring state: %w", err)
	}
	if n := s.Remaining(); n != 0 {
		return fmt.Errorf("emulator: restoring state: %d trailing bytes", n)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("emulator: restoring state: %w", err)
	}
	return nil
}

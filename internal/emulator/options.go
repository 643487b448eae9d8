package emulator

import (
	"fmt"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies an Emulator instance.
type Opt func(e *Emulator)

// Debug logs every executed instruction at debug level.
func Debug() Opt {
	return func(e *Emulator) {
		e.CPU.Debug = true
	}
}

// WithLogger sets the logger used by the emulator and its CPU.
func WithLogger(l log.Logger) Opt {
	return func(e *Emulator) {
		e.Logger = l
		e.CPU.SetLogger(l)
	}
}

// WithImage copies a program image into memory at start.
func WithImage(start uint16, image []byte) Opt {
	return func(e *Emulator) {
		if err := e.MMU.Load(start, image); err != nil {
			e.err = fmt.Errorf("emulator: loading image: %w", err)
			return
		}
		e.Infof("loaded %d bytes at 0x%04X", len(image), start)
	}
}

// WithEntryPoint sets the address execution starts at.
func WithEntryPoint(pc uint16) Opt {
	return func(e *Emulator) {
		e.CPU.PC = pc
	}
}

// WithStackPointer sets the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(e *Emulator) {
		e.CPU.SP = sp
	}
}

// WithSnapshot restores the machine from a snapshot. Opts given after
// it still apply on top of the restored state.
func WithSnapshot(raw []byte) Opt {
	return func(e *Emulator) {
		if err := e.LoadState(raw); err != nil {
			e.err = fmt.Errorf("emulator: loading snapshot: %w", err)
		}
	}
}

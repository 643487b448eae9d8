package cpu

import (
	"bytes"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"strings"
	"testing"
)

// testInstruction runs f against a fresh CPU, with program loaded at
// 0x0000 of otherwise zeroed memory.
func testInstruction(t *testing.T, name string, program []byte, f func(*testing.T, *CPU, *mmu.MMU)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		m := mmu.NewMMU()
		if err := m.Load(0, program); err != nil {
			t.Fatal(err)
		}
		f(t, NewCPU(m, nil), m)
	})
}

// step executes a single instruction, failing the test on error.
func step(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCPU_Step(t *testing.T) {
	testInstruction(t, "NOP advances PC", []byte{0x00}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		step(t, c)
		if c.PC != 0x0001 {
			t.Errorf("expected PC 0x0001, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "PC wraps", nil, func(t *testing.T, c *CPU, m *mmu.MMU) {
		c.PC = 0xFFFF
		step(t, c)
		if c.PC != 0x0000 {
			t.Errorf("expected PC 0x0000, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "immediate wraps", []byte{0x01}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		// LD A, n with the opcode in the last byte of memory
		m.Write(0xFFFF, 0x3E)
		c.PC = 0xFFFF
		step(t, c)
		if c.PC != 0x0001 {
			t.Errorf("expected PC 0x0001, got 0x%04X", c.PC)
		}
		if c.A != 0x01 {
			t.Errorf("expected A 0x01, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "HALT", []byte{0x76, 0x3C}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		step(t, c)
		if !c.Halted() {
			t.Fatal("expected CPU to be halted, got running")
		}
		for i := 0; i < 3; i++ {
			step(t, c)
		}
		if c.PC != 0x0001 || c.A != 0 {
			t.Errorf("expected halted CPU to stay at 0x0001, got 0x%04X (A 0x%02X)", c.PC, c.A)
		}
	})
	testInstruction(t, "STOP", []byte{0x10, 0x00, 0x3C}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		step(t, c)
		if !c.Stopped() {
			t.Fatal("expected CPU to be stopped, got running")
		}
		if c.PC != 0x0002 {
			t.Errorf("expected PC 0x0002, got 0x%04X", c.PC)
		}
		step(t, c)
		if c.PC != 0x0002 {
			t.Errorf("expected stopped CPU to stay at 0x0002, got 0x%04X", c.PC)
		}
	})
	testInstruction(t, "Reset", []byte{0x76}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		c.A, c.SP, c.IME = 0x12, 0xFFFE, true
		c.F.Carry = true
		step(t, c)
		c.Reset()
		if c.Registers != (Registers{}) {
			t.Errorf("expected zeroed registers, got %v", c.Registers)
		}
		if c.Halted() || c.IME {
			t.Error("expected Reset to clear halt and IME")
		}
		if m.Read(0x0000) != 0x76 {
			t.Error("expected Reset to leave memory untouched")
		}
	})
}

func TestCPU_Interrupts(t *testing.T) {
	testInstruction(t, "EI is delayed by one instruction", []byte{0xFB, 0x00, 0x00}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		step(t, c)
		if c.IME {
			t.Fatal("expected IME to be clear directly after EI")
		}
		step(t, c)
		if !c.IME {
			t.Fatal("expected IME to be set after the following instruction")
		}
	})
	testInstruction(t, "DI cancels a pending EI", []byte{0xFB, 0xF3, 0x00}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		step(t, c)
		step(t, c)
		step(t, c)
		if c.IME {
			t.Error("expected IME to be clear")
		}
	})
	testInstruction(t, "DI", []byte{0xF3}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		c.IME = true
		step(t, c)
		if c.IME {
			t.Error("expected IME to be clear")
		}
	})
	testInstruction(t, "RETI", []byte{0xD9}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		c.SP = 0xFFFC
		m.Write(0xFFFC, 0x34)
		m.Write(0xFFFD, 0x12)
		step(t, c)
		if c.PC != 0x1234 {
			t.Errorf("expected PC 0x1234, got 0x%04X", c.PC)
		}
		if c.SP != 0xFFFE {
			t.Errorf("expected SP 0xFFFE, got 0x%04X", c.SP)
		}
		if !c.IME {
			t.Error("expected RETI to set IME immediately")
		}
	})
}

// bogus is an instruction the CPU has no semantics for.
type bogus struct{}

func (bogus) String() string { return "BOGUS" }
func (bogus) Length() int    { return 1 }
func (bogus) instruction()   {}

func TestCPU_Errors(t *testing.T) {
	testInstruction(t, "unrecognized opcode", []byte{0x00, 0xD3}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		step(t, c)
		for i := 0; i < 2; i++ {
			err := c.Step()
			if !errors.Is(err, ErrUnrecognizedOpcode) {
				t.Fatalf("expected ErrUnrecognizedOpcode, got %v", err)
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if decodeErr.Opcode != 0xD3 || decodeErr.Address != 0x0001 || decodeErr.Prefixed {
				t.Errorf("unexpected error details %+v", decodeErr)
			}
			if c.PC != 0x0001 {
				t.Errorf("expected PC to stay at 0x0001, got 0x%04X", c.PC)
			}
		}
	})
	testInstruction(t, "error is logged", []byte{0xFD}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		var buf bytes.Buffer
		c.log = log.NewWithLevel(&buf, logrus.ErrorLevel)
		if err := c.Step(); err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(buf.String(), "unrecognized opcode 0xFD at 0x0000") {
			t.Errorf("expected error to be logged, got %q", buf.String())
		}
	})
	t.Run("unimplemented instruction", func(t *testing.T) {
		c := NewCPU(mmu.NewMMU(), nil)
		err := c.execute(bogus{}, 0x0150)
		if !errors.Is(err, ErrUnimplemented) {
			t.Fatalf("expected ErrUnimplemented, got %v", err)
		}
		if errors.Is(err, ErrUnrecognizedOpcode) {
			t.Error("expected unimplemented to be distinct from unrecognized")
		}
		if err.Error() != "cpu: unimplemented instruction BOGUS at 0x0150" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
	t.Run("message", func(t *testing.T) {
		err := &DecodeError{Opcode: 0x12, Address: 0x0200, Prefixed: true}
		if err.Error() != "cpu: unrecognized opcode 0xCB 0x12 at 0x0200" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestCPU_Debug(t *testing.T) {
	testInstruction(t, "trace", []byte{0x3E, 0x05}, func(t *testing.T, c *CPU, m *mmu.MMU) {
		var buf bytes.Buffer
		c.log = log.NewWithLevel(&buf, logrus.DebugLevel)
		c.Debug = true
		step(t, c)
		if !strings.Contains(buf.String(), "LD A, 0x05") {
			t.Errorf("expected trace to contain the instruction, got %q", buf.String())
		}
	})
}

func TestCPU_State(t *testing.T) {
	c := NewCPU(mmu.NewMMU(), nil)
	c.Registers = Registers{A: 0x01, B: 0x02, C: 0x03, D: 0x04, E: 0x05, H: 0x06, L: 0x07, SP: 0xFFFE, PC: 0x0150}
	c.F = Flags{Zero: true, Carry: true}
	c.IME = true
	c.eiPending = true
	c.mode = ModeHalt

	s := types.NewState()
	c.SaveState(s)

	restored := NewCPU(mmu.NewMMU(), nil)
	restored.LoadState(types.StateFromBytes(s.Bytes()))
	if restored.Registers != c.Registers {
		t.Errorf("expected %v, got %v", c.Registers, restored.Registers)
	}
	if !restored.IME || !restored.eiPending || !restored.Halted() {
		t.Error("expected IME, pending EI and halt to be restored")
	}
}

func TestCPU_Validate(t *testing.T) {
	c := NewCPU(mmu.NewMMU(), nil)
	for _, m := range []mode{ModeNormal, ModeHalt, ModeStop} {
		c.mode = m
		if err := c.Validate(); err != nil {
			t.Errorf("mode %d: expected no error, got %v", m, err)
		}
	}
	c.mode = 0x07
	if err := c.Validate(); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

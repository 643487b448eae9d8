// Package expect checks the state of a machine after a run against a
// list of expectations, written as comma separated assignments:
//
//	A=70,H=15,L=0x0F,HL=0x0F0F,ZF=0,[0x0F0F]=5
//
// Registers are A, B, C, D, E, H, L and F, register pairs AF, BC,
// DE, HL, SP and PC. Flags are ZF, NF, HF and CF, with Z and N
// accepted as well. [addr] names a byte of memory. Numbers are
// decimal, or hexadecimal with a 0x prefix.
package expect

import (
	"errors"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"strconv"
	"strings"
)

// ErrSyntax is the error underlying every parse failure.
var ErrSyntax = errors.New("expect: syntax error")

type reader func(c *cpu.CPU, bus mmu.Bus) uint16

// Expectation is a single expected value.
type Expectation struct {
	Target string // the register, flag or [address] as written
	Want   uint16

	width int // hex digits when printing
	max   uint16
	read  reader
}

// Expectations is a parsed list of expectations.
type Expectations []Expectation

// MismatchError reports an expectation that did not hold.
type MismatchError struct {
	Target string
	Want   uint16
	Got    uint16
	width  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected 0x%0*X, got 0x%0*X", e.Target, e.width, e.Want, e.width, e.Got)
}

func register8(r cpu.R8) reader {
	return func(c *cpu.CPU, _ mmu.Bus) uint16 { return uint16(c.Get8(r)) }
}

func register16(r cpu.Reg16) reader {
	return func(c *cpu.CPU, _ mmu.Bus) uint16 { return c.Get16(r) }
}

func flag(get func(cpu.Flags) bool) reader {
	return func(c *cpu.CPU, _ mmu.Bus) uint16 {
		if get(c.F) {
			return 1
		}
		return 0
	}
}

var targets = map[string]struct {
	width int
	max   uint16
	read  reader
}{
	"A":  {2, 0xFF, register8(cpu.RegA)},
	"B":  {2, 0xFF, register8(cpu.RegB)},
	"C":  {2, 0xFF, register8(cpu.RegC)},
	"D":  {2, 0xFF, register8(cpu.RegD)},
	"E":  {2, 0xFF, register8(cpu.RegE)},
	"H":  {2, 0xFF, register8(cpu.RegH)},
	"L":  {2, 0xFF, register8(cpu.RegL)},
	"F":  {2, 0xFF, func(c *cpu.CPU, _ mmu.Bus) uint16 { return uint16(c.F.Byte()) }},
	"AF": {4, 0xFFFF, register16(cpu.AF)},
	"BC": {4, 0xFFFF, register16(cpu.BC)},
	"DE": {4, 0xFFFF, register16(cpu.DE)},
	"HL": {4, 0xFFFF, register16(cpu.HL)},
	"SP": {4, 0xFFFF, register16(cpu.SP)},
	"PC": {4, 0xFFFF, register16(cpu.PC)},
	"ZF": {1, 1, flag(func(f cpu.Flags) bool { return f.Zero })},
	"NF": {1, 1, flag(func(f cpu.Flags) bool { return f.Subtract })},
	"HF": {1, 1, flag(func(f cpu.Flags) bool { return f.HalfCarry })},
	"CF": {1, 1, flag(func(f cpu.Flags) bool { return f.Carry })},
}

var aliases = map[string]string{"Z": "ZF", "N": "NF"}

// Parse parses a comma separated list of expectations. An empty
// string parses to no expectations.
func Parse(s string) (Expectations, error) {
	var list Expectations
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		e, err := parseOne(field)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func parseOne(field string) (Expectation, error) {
	name, value, ok := strings.Cut(field, "=")
	if !ok {
		return Expectation{}, fmt.Errorf("%w: %q is missing '='", ErrSyntax, field)
	}
	name = strings.ToUpper(strings.TrimSpace(name))

	e := Expectation{Target: name}
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		address, err := parseNumber(name[1:len(name)-1], 0xFFFF)
		if err != nil {
			return Expectation{}, fmt.Errorf("%w: address in %q: %v", ErrSyntax, field, err)
		}
		e.Target = fmt.Sprintf("[0x%04X]", address)
		e.width, e.max = 2, 0xFF
		e.read = func(_ *cpu.CPU, bus mmu.Bus) uint16 { return uint16(bus.Read(address)) }
	} else {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		t, ok := targets[name]
		if !ok {
			return Expectation{}, fmt.Errorf("%w: unknown target %q", ErrSyntax, name)
		}
		e.Target = name
		e.width, e.max, e.read = t.width, t.max, t.read
	}

	want, err := parseNumber(strings.TrimSpace(value), e.max)
	if err != nil {
		return Expectation{}, fmt.Errorf("%w: value in %q: %v", ErrSyntax, field, err)
	}
	e.Want = want
	return e, nil
}

// parseNumber parses a decimal or 0x prefixed hexadecimal number no
// larger than max.
func parseNumber(s string, max uint16) (uint16, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	n, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, err
	}
	if uint16(n) > max {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return uint16(n), nil
}

// Verify checks every expectation against the CPU and memory. All
// mismatches are reported together, each as a *MismatchError.
func (list Expectations) Verify(c *cpu.CPU, bus mmu.Bus) error {
	var result *multierror.Error
	for _, e := range list {
		if got := e.read(c, bus); got != e.Want {
			result = multierror.Append(result, &MismatchError{Target: e.Target, Want: e.Want, Got: got, width: e.width})
		}
	}
	return result.ErrorOrNil()
}

func (e Expectation) String() string {
	return fmt.Sprintf("%s=0x%0*X", e.Target, e.width, e.Want)
}

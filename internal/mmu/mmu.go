// Package mmu provides the flat 64kB memory bus the CPU executes
// against. There is no banking, no memory mapped I/O and no echo
// region: every address is plain read/write storage.
package mmu

import (
	"errors"
	"fmt"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/types"
)

// Size is the size of the address space, 0x0000 - 0xFFFF.
const Size = 0x10000

// ErrImageTooLarge is returned (wrapped in a *LoadError) when an
// image does not fit between its start address and the end of the
// address space.
var ErrImageTooLarge = errors.New("mmu: image exceeds address space")

// Bus is the interface the CPU uses to access memory.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// LoadError describes an image that could not be loaded.
type LoadError struct {
	Start  uint16 // requested start address
	Length int    // length of the image
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("mmu: cannot load %d bytes at 0x%04X: %d bytes past 0xFFFF",
		e.Length, e.Start, int(e.Start)+e.Length-Size)
}

func (e *LoadError) Unwrap() error {
	return ErrImageTooLarge
}

// MMU is the memory management unit. It owns all 64kB of memory,
// zero-initialized on creation.
type MMU struct {
	raw [Size]uint8
}

// NewMMU returns a new, zeroed MMU.
func NewMMU() *MMU {
	return &MMU{}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Load copies data into memory beginning at start. If the image would
// run past 0xFFFF nothing is written and a *LoadError is returned.
func (m *MMU) Load(start uint16, data []byte) error {
	if int(start)+len(data) > Size {
		return &LoadError{Start: start, Length: len(data)}
	}
	copy(m.raw[start:], data)
	return nil
}

// Checksum returns the xxhash64 of the whole address space, which
// makes for a cheap way to compare two machines' memory.
func (m *MMU) Checksum() uint64 {
	return xxhash.Sum64(m.raw[:])
}

var _ types.Stater = (*MMU)(nil)

// LoadState restores all of memory from s.
func (m *MMU) LoadState(s *types.State) {
	s.ReadData(m.raw[:])
}

// SaveState appends all of memory to s.
func (m *MMU) SaveState(s *types.State) {
	s.WriteData(m.raw[:])
}

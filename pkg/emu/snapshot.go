// Package emu handles the on-disk form of emulator snapshots: the
// compressed, checksummed envelope around a serialized machine state,
// and the timestamped save files it is written to.
package emu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"io"
)

const (
	// Magic identifies a snapshot.
	Magic = "SM83"
	// Version is the snapshot layout written by Encode.
	Version = 1

	headerSize   = len(Magic) + 1
	checksumSize = 8
)

var (
	// ErrBadSnapshot is the error underlying every snapshot decoding failure.
	ErrBadSnapshot = errors.New("emu: bad snapshot")
	// ErrBadMagic is returned for data that is not a snapshot.
	ErrBadMagic = fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	// ErrChecksum is returned when the decompressed state does not
	// match the stored checksum.
	ErrChecksum = fmt.Errorf("%w: checksum mismatch", ErrBadSnapshot)
	// ErrShortSnapshot is returned for data too short to hold a snapshot.
	ErrShortSnapshot = fmt.Errorf("%w: short data", ErrBadSnapshot)
)

// Encode wraps a serialized state in a snapshot envelope:
//
//	"SM83" | version | brotli(state) | xxhash64(state)
//
// The checksum is little-endian.
func Encode(state []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte(Version)

	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(state); err != nil {
		return nil, fmt.Errorf("emu: compressing state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("emu: compressing state: %w", err)
	}

	var sum [checksumSize]byte
	binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(state))
	buf.Write(sum[:])

	return buf.Bytes(), nil
}

// Decode unwraps a snapshot produced by Encode, returning the
// serialized state. Every failure wraps ErrBadSnapshot.
func Decode(raw []byte) ([]byte, error) {
	if len(raw) < headerSize+checksumSize {
		return nil, ErrShortSnapshot
	}
	if string(raw[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	if v := raw[len(Magic)]; v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, v)
	}

	body := raw[headerSize : len(raw)-checksumSize]
	state, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	if binary.LittleEndian.Uint64(raw[len(raw)-checksumSize:]) != xxhash.Sum64(state) {
		return nil, ErrChecksum
	}
	return state, nil
}

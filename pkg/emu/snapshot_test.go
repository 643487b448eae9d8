package emu

import (
	"bytes"
	"errors"
	"testing"
)

func TestSnapshot(t *testing.T) {
	state := make([]byte, 0x10020)
	for i := range state {
		state[i] = uint8(i * 7)
	}

	raw, err := Encode(state)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("SM83\x01")) {
		t.Fatalf("expected SM83 header, got % X", raw[:5])
	}

	t.Run("round trip", func(t *testing.T) {
		got, err := Decode(raw)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, state) {
			t.Error("expected decoded state to match")
		}
	})
	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte("GB80"), raw[4:]...)
		if _, err := Decode(bad); !errors.Is(err, ErrBadMagic) {
			t.Errorf("expected ErrBadMagic, got %v", err)
		}
	})
	t.Run("version", func(t *testing.T) {
		bad := append([]byte{}, raw...)
		bad[4] = 2
		if _, err := Decode(bad); !errors.Is(err, ErrBadSnapshot) {
			t.Errorf("expected ErrBadSnapshot, got %v", err)
		}
	})
	t.Run("checksum", func(t *testing.T) {
		bad := append([]byte{}, raw...)
		bad[len(bad)-1] ^= 0xFF
		if _, err := Decode(bad); !errors.Is(err, ErrChecksum) {
			t.Errorf("expected ErrChecksum, got %v", err)
		}
	})
	t.Run("short", func(t *testing.T) {
		if _, err := Decode(raw[:6]); !errors.Is(err, ErrShortSnapshot) {
			t.Errorf("expected ErrShortSnapshot, got %v", err)
		}
		if !errors.Is(ErrShortSnapshot, ErrBadSnapshot) {
			t.Error("expected ErrShortSnapshot to wrap ErrBadSnapshot")
		}
	})
	t.Run("truncated body", func(t *testing.T) {
		bad := append(append([]byte{}, raw[:len(raw)/2]...), raw[len(raw)-8:]...)
		if _, err := Decode(bad); !errors.Is(err, ErrBadSnapshot) {
			t.Errorf("expected ErrBadSnapshot, got %v", err)
		}
	})
}

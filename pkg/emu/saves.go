package emu

import (
	"fmt"
	"github.com/thelolagemann/sm83/pkg/utils"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// save file naming convention:
// <image name>.<timestamp>.sav

// Save represents a snapshot save file.
type Save struct {
	Path string    // the path to the save file
	Time time.Time // when the save was written, from its file name
}

// WriteFile writes a snapshot to path. The data goes to a temporary
// file in the same folder first, which is then renamed over path.
func WriteFile(path string, snapshot []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), fmt.Sprintf("%s.*", filepath.Base(path)))
	if err != nil {
		return err
	}
	if _, err := f.Write(snapshot); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("emu: writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}

// NewSave writes snapshot to a new save file for the given image
// name in folder, creating the folder if needed.
func NewSave(folder, name string, snapshot []byte) (*Save, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Save{
		Path: filepath.Join(folder, fmt.Sprintf("%s.%d.sav", name, now.UnixNano())),
		Time: time.Unix(0, now.UnixNano()),
	}
	if err := WriteFile(s.Path, snapshot); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSaves lists the save files for the given image name in folder,
// newest first. A missing folder holds no saves.
func LoadSaves(folder, name string) ([]*Save, error) {
	files, err := os.ReadDir(folder)
	if os.IsNotExist(err) {
		return make([]*Save, 0), nil
	}
	if err != nil {
		return nil, err
	}

	saves := make([]*Save, 0)
	for _, file := range files {
		if file.IsDir() || !isFileSaveFile(file.Name()) || !strings.HasPrefix(file.Name(), name+".") {
			continue
		}
		ts, ok := parseTimestampFromFilename(strings.TrimPrefix(file.Name(), name))
		if !ok {
			continue
		}
		saves = append(saves, &Save{
			Path: filepath.Join(folder, file.Name()),
			Time: time.Unix(0, ts),
		})
	}

	// sort the save files by timestamp
	sort.Slice(saves, func(i, j int) bool {
		return saves[i].Time.After(saves[j].Time)
	})

	return saves, nil
}

// Bytes reads the snapshot held by the save file.
func (s *Save) Bytes() ([]byte, error) {
	return utils.LoadFile(s.Path)
}

// parseTimestampFromFilename parses the timestamp from the given filename.
// The filename is expected to be in the format of ".<timestamp>.sav",
// where <timestamp> is the number of nanoseconds since the Unix epoch.
func parseTimestampFromFilename(filename string) (int64, bool) {
	// strip the file extension
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))

	n, err := strconv.ParseInt(strings.TrimPrefix(filename, "."), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isFileSaveFile returns true if the given filename is a save file.
func isFileSaveFile(filename string) bool {
	return strings.HasSuffix(filename, ".sav")
}

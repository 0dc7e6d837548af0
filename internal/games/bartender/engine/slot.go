package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSave is returned by Load when the slot has never been written.
var ErrNoSave = errors.New("engine: no saved game")

// Slot is a single save location.
type Slot interface {
	Save(s *State) error
	Load() (*State, error)
}

// FileSlot stores the save in one file on disk.
type FileSlot struct {
	Path string
}

// NewFileSlot returns a slot at path. A leading ~ is expanded to the home directory.
func NewFileSlot(path string) (*FileSlot, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("engine: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if path == "" {
		return nil, errors.New("engine: empty save path")
	}
	return &FileSlot{Path: path}, nil
}

// Save writes s to a temporary file next to the slot and renames it into
// place, so a failed write never clobbers the previous save.
func (fs *FileSlot) Save(s *State) error {
	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("engine: cannot create save directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fs.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("engine: cannot create save file: %w", err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, s); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("engine: cannot close save file: %w", err)
	}
	if err := os.Rename(tmpName, fs.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("engine: cannot replace save file: %w", err)
	}
	return nil
}

// Load reads and validates the saved run.
func (fs *FileSlot) Load() (*State, error) {
	f, err := os.Open(fs.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("engine: cannot open save file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Ensure FileSlot implements Slot
var _ Slot = (*FileSlot)(nil)

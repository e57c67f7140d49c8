package mapdata

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// snapshotVersion changes whenever the encoded layout does.
const snapshotVersion = 1

type snapshot struct {
	Version int
	Data    roadgraph.ProviderData
}

// WriteSnapshot gob-encodes data to w.
func WriteSnapshot(w io.Writer, data roadgraph.ProviderData) error {
	if err := gob.NewEncoder(w).Encode(snapshot{Version: snapshotVersion, Data: data}); err != nil {
		return fmt.Errorf("mapdata: encode snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot decodes provider data written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (roadgraph.ProviderData, error) {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return roadgraph.ProviderData{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if s.Version != snapshotVersion {
		return roadgraph.ProviderData{}, fmt.Errorf("%w: version %d, want %d", ErrInvalidSnapshot, s.Version, snapshotVersion)
	}

	return s.Data, nil
}

// SaveSnapshot writes a snapshot file, creating parent directories.
func SaveSnapshot(path string, data roadgraph.ProviderData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mapdata: create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapdata: create %s: %w", path, err)
	}
	if err := WriteSnapshot(f, data); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// LoadAny reads provider data from a snapshot (.gob) or an extract
// (.yaml, .yml, .json).
func LoadAny(path string) (roadgraph.ProviderData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gob":
		f, err := os.Open(path)
		if err != nil {
			return roadgraph.ProviderData{}, fmt.Errorf("mapdata: open %s: %w", path, err)
		}
		defer f.Close()

		return ReadSnapshot(f)
	case ".yaml", ".yml", ".json":
		e, err := Load(path)
		if err != nil {
			return roadgraph.ProviderData{}, err
		}

		return e.ProviderData()
	default:
		return roadgraph.ProviderData{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// snapEncMode is the CBOR encoder mode for snapshots. Deterministic
// encoding keeps identical configurations byte-identical on disk.
var snapEncMode cbor.EncMode

// snapDecMode is the CBOR decoder mode for snapshots.
var snapDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	snapEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	snapDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// Encode serializes a snapshot to CBOR bytes.
func Encode(snap *Snapshot) ([]byte, error) {
	return snapEncMode.Marshal(snap)
}

// Decode deserializes a snapshot from CBOR bytes.
func Decode(data []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := snapDecMode.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Store manages persistence of snapshots to a CBOR file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a snapshot store backed by the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists the snapshot to disk.
func (s *Store) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := Encode(snap)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist.
func (s *Store) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Clear removes the snapshot file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Package inspect describes the running UI as a tree of nodes so tools and
// tests can read panel state without looking at the screen.
package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Introspectable is implemented by components that can describe themselves.
type Introspectable interface {
	InspectNode() *Node
}

// InspectEnv enables the snapshot file when set to 1.
const InspectEnv = "SWITCHERPANEL_INSPECT"

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile = filepath.Join(os.TempDir(), "switcherpanel-inspect.json")
)

// IsEnabled reports whether InspectEnv is set.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv(InspectEnv) == "1"
	})
	return enabled
}

// Path returns the snapshot file written while inspection is enabled.
func Path() string {
	return inspectFile
}

// Recorder writes snapshots to a file. Every settle frame produces a
// snapshot, so writes are skipped when nothing but the timestamp changed.
type Recorder struct {
	mu   sync.Mutex
	path string
	last []byte
}

// NewRecorder returns a Recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record writes s unless it matches the previous snapshot. It reports
// whether the file was written.
func (r *Recorder) Record(s *Snapshot) (bool, error) {
	stamped := *s
	stamped.Timestamp = time.Time{}
	key, err := json.Marshal(&stamped)
	if err != nil {
		return false, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if bytes.Equal(key, r.last) {
		return false, nil
	}
	if err := WriteSnapshotToPath(s, r.path); err != nil {
		return false, err
	}
	r.last = key
	return true, nil
}

// WriteSnapshotToPath writes s as indented JSON.
func WriteSnapshotToPath(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

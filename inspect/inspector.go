// Package inspect writes structured snapshots of the UI state so that tools
// and tests can follow menu lifecycles without reading the screen.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Introspectable is implemented by UI components that can report their state.
type Introspectable interface {
	InspectNode() *Node
}

var (
	enabled     bool
	enabledOnce sync.Once
	inspectFile string
)

// IsEnabled returns true if HOLDMENU_INSPECT=1.
func IsEnabled() bool {
	enabledOnce.Do(func() {
		enabled = os.Getenv("HOLDMENU_INSPECT") == "1"
		if enabled {
			inspectFile = filepath.Join(os.TempDir(), "holdmenu-inspect.json")
		}
	})
	return enabled
}

// GetInspectFile returns the path snapshots are written to, or "" when
// inspection is off.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return inspectFile
}

// WriteSnapshot writes a snapshot to the inspection file. It is a no-op when
// inspection is off.
func WriteSnapshot(snapshot *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(snapshot, inspectFile)
}

// WriteSnapshotToPath writes a snapshot to a specific path.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

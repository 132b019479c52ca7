package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	data, err := json.Marshal(fixture())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Vehicles) != 2 || len(snap.Drivers) != 2 {
		t.Fatalf("loaded snapshot: %d vehicles, %d drivers", len(snap.Vehicles), len(snap.Drivers))
	}
	if err := snap.Validate(); err != nil {
		t.Fatalf("loaded snapshot invalid: %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected decode error")
	}
}

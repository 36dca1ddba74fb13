package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileMintsDeviceID(t *testing.T) {
	t.Parallel()

	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Authenticated() {
		t.Fatal("empty state must not report authenticated")
	}
	if len(state.DeviceID) != 32 {
		t.Fatalf("expected minted device id, got %q", state.DeviceID)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	saved := State{
		ServerURL:   "http://media.example.com:8096",
		ServerID:    "srv-1",
		UserID:      "user-1",
		Username:    "alice",
		AccessToken: "abc123",
		DeviceID:    "device-1",
		SavedAt:     time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat state: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("state file permissions = %o, want 600", perm)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ServerURL != saved.ServerURL || loaded.UserID != saved.UserID ||
		loaded.Username != saved.Username || loaded.AccessToken != saved.AccessToken ||
		loaded.ServerID != saved.ServerID || loaded.DeviceID != saved.DeviceID {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, saved)
	}
	if !loaded.SavedAt.Equal(saved.SavedAt) {
		t.Fatalf("saved_at mismatch: %v vs %v", loaded.SavedAt, saved.SavedAt)
	}
	if !loaded.Authenticated() {
		t.Fatal("loaded state should report authenticated")
	}
}

func TestDeviceIDSurvivesLogout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	state.AccessToken = "abc123"
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Logout keeps the device identifier so the server sees one device.
	cleared := State{DeviceID: state.DeviceID}
	if err := store.Save(cleared); err != nil {
		t.Fatalf("Save cleared: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Authenticated() {
		t.Fatal("cleared state must not report authenticated")
	}
	if reloaded.DeviceID != state.DeviceID {
		t.Fatalf("device id changed across logout: %q vs %q", reloaded.DeviceID, state.DeviceID)
	}
}

func TestClearRemovesState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	if err := store.Save(State{AccessToken: "abc123", DeviceID: "device-1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected state file removed, stat err %v", err)
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear again: %v", err)
	}
}

func TestCorruptStateSurfacesError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt state: %v", err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected decode error for corrupt state")
	}
}

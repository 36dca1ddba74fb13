package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// State is the persisted session for one server. The library core never
// writes this; only jellyctl does, so a user can stay logged in between
// invocations.
type State struct {
	ServerURL   string    `json:"server_url"`
	ServerID    string    `json:"server_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"access_token"`
	DeviceID    string    `json:"device_id"`
	SavedAt     time.Time `json:"saved_at"`
}

// Authenticated reports whether the state carries a usable token.
func (s State) Authenticated() bool {
	return strings.TrimSpace(s.AccessToken) != ""
}

// Store abstracts persistence for jellyctl session state.
type Store interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// FileStore writes session state to a JSON file on disk. A sibling lock file
// serializes concurrent jellyctl invocations.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore builds a FileStore rooted at the provided path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads session state from disk. A missing file resolves to an empty
// state with a freshly minted device identifier.
func (s *FileStore) Load() (State, error) {
	if err := s.acquire(); err != nil {
		return State{}, err
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{DeviceID: newDeviceID()}, nil
		}
		return State{}, fmt.Errorf("read session state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("decode session state: %w", err)
	}
	if strings.TrimSpace(state.DeviceID) == "" {
		state.DeviceID = newDeviceID()
	}
	return state, nil
}

// Save persists session state to disk with restricted permissions.
func (s *FileStore) Save(state State) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensure session state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

// Clear removes the persisted state. Clearing an absent file is not an error.
func (s *FileStore) Clear() error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}

func (s *FileStore) acquire() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensure session state directory: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session state: %w", err)
	}
	return nil
}

func newDeviceID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

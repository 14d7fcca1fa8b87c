package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"movietime/internal/dto/response"
)

// IdentityStore persists the identity projection to a local JSON file. Its
// mere presence counts as "logged in" until explicitly cleared; there are no
// tokens or expiry.
type IdentityStore struct {
	path string
}

func NewIdentityStore(path string) *IdentityStore {
	return &IdentityStore{path: path}
}

// Save writes the projection, creating parent directories as needed.
func (s *IdentityStore) Save(user *response.UserProjection) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	b, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, b, 0600)
}

// Load returns the stored projection, or nil when nobody is signed in.
func (s *IdentityStore) Load() (*response.UserProjection, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user response.UserProjection
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Clear signs out by removing the record.
func (s *IdentityStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

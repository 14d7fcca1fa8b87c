package client

import (
	"path/filepath"
	"testing"

	"movietime/internal/dto/response"
)

func TestIdentityStore(t *testing.T) {
	store := NewIdentityStore(filepath.Join(t.TempDir(), "session.json"))

	t.Run("LoadWithoutRecord", func(t *testing.T) {
		user, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if user != nil {
			t.Errorf("fresh store returned %+v, want nil", user)
		}
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		saved := &response.UserProjection{ID: "u-1", Name: "Ann", Email: "ann@x.com"}
		if err := store.Save(saved); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		user, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if user == nil || *user != *saved {
			t.Errorf("Load = %+v, want %+v", user, saved)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		user, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if user != nil {
			t.Errorf("Clear left record %+v", user)
		}

		// clearing twice is fine
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear failed: %v", err)
		}
	})
}

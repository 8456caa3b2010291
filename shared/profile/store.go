package profile

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

const itemKey = "profile"

// Storage is the subset of *gdata.Manager the store needs.
type Storage interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store loads and saves the profile document.
type Store struct {
	storage Storage
}

// Open opens the per-user data directory for app.
func Open(app string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("open profile storage: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(s Storage) *Store {
	return &Store{storage: s}
}

// Load returns the saved profile, or an empty one when nothing is saved yet.
func (s *Store) Load() (Profile, error) {
	raw, err := s.storage.LoadItem(itemKey)
	if err != nil {
		return Parse(nil), fmt.Errorf("load profile: %w", err)
	}
	return Parse(raw), nil
}

func (s *Store) Save(p Profile) error {
	if err := s.storage.SaveItem(itemKey, p.Bytes()); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

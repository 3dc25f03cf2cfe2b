package telemetry

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// ItemKey is the gdata item holding the counters.
const ItemKey = "telemetry"

// Store loads and saves the serialized counters.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// GdataStore keeps the counters in the per-user application data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdataStore opens the gdata manager for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata for %q: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Load() ([]byte, error) {
	return s.m.LoadItem(ItemKey)
}

func (s *GdataStore) Save(data []byte) error {
	return s.m.SaveItem(ItemKey, data)
}

// MemoryStore keeps the counters in memory.
type MemoryStore struct {
	Data  []byte
	Saves int
}

func (s *MemoryStore) Load() ([]byte, error) {
	return s.Data, nil
}

func (s *MemoryStore) Save(data []byte) error {
	s.Data = append(s.Data[:0], data...)
	s.Saves++
	return nil
}

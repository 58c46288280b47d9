package sink

import (
	"context"
	"sort"
	"sync"

	"explorergen/internal/errors"
)

// MemorySink keeps explorers in memory. The serve command publishes from it.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) Location(name string) string { return "memory://" + FileName(name) }

func (s *MemorySink) Put(ctx context.Context, name string, data []byte) error {
	if err := validName(name); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.mu.Lock()
	s.files[name] = buf
	s.mu.Unlock()
	return nil
}

// Get returns the stored explorer.
func (s *MemorySink) Get(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	if !ok {
		return nil, errors.NotFound("explorer " + name)
	}
	return data, nil
}

// Names lists stored explorers in order.
func (s *MemorySink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.files))
	for n := range s.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

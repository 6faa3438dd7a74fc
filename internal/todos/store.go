package todos

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps todos in a single JSON file, rewritten atomically (temp file +
// rename) on every change. A mutex serializes writers within this process;
// there is no cross-process locking.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Filters narrows List results. Nil/empty fields match everything.
type Filters struct {
	Completed *bool
	Category  string
	Priority  string
}

func (s *Store) read() ([]Todo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Todo{}, nil
		}
		return nil, fmt.Errorf("failed to read todo file: %w", err)
	}

	var items []Todo
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse todo file: %w", err)
	}
	return items, nil
}

func (s *Store) write(items []Todo) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize todos: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write todo file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace todo file: %w", err)
	}
	return nil
}

func (s *Store) List(f Filters) ([]Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return nil, err
	}

	filtered := make([]Todo, 0, len(items))
	for _, t := range items {
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

func (s *Store) Get(id string) (Todo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return Todo{}, false, err
	}
	for _, t := range items {
		if t.ID == id {
			return t, true, nil
		}
	}
	return Todo{}, false, nil
}

func (s *Store) Create(in Input) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return Todo{}, err
	}

	now := s.now().UTC()
	t := Todo{
		ID:        uuid.NewString(),
		Category:  "other",
		Priority:  "medium",
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(&t, in, now)

	items = append(items, t)
	if err := s.write(items); err != nil {
		return Todo{}, err
	}
	return t, nil
}

func (s *Store) Update(id string, in Input) (Todo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return Todo{}, false, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		now := s.now().UTC()
		applyInput(&items[i], in, now)
		items[i].UpdatedAt = now
		if err := s.write(items); err != nil {
			return Todo{}, false, err
		}
		return items[i], true, nil
	}
	return Todo{}, false, nil
}

func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return false, err
	}

	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := s.write(items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ToggleComplete(id string) (Todo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return Todo{}, false, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		now := s.now().UTC()
		items[i].Completed = !items[i].Completed
		if items[i].Completed {
			completedAt := now
			items[i].CompletedAt = &completedAt
		} else {
			items[i].CompletedAt = nil
		}
		items[i].UpdatedAt = now
		if err := s.write(items); err != nil {
			return Todo{}, false, err
		}
		return items[i], true, nil
	}
	return Todo{}, false, nil
}

// applyInput merges the provided fields into t, keeping the completed /
// completedAt invariant intact when the completed flag changes.
func applyInput(t *Todo, in Input, now time.Time) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Tags != nil {
		t.Tags = *in.Tags
	}
	if in.Completed != nil && *in.Completed != t.Completed {
		t.Completed = *in.Completed
		if t.Completed {
			completedAt := now
			t.CompletedAt = &completedAt
		} else {
			t.CompletedAt = nil
		}
	}
}

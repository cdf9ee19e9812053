package persona

import (
	"errors"
	"net/url"
	"strings"
	"sync"
)

// ErrInvalidName rejects blank custom persona names.
var ErrInvalidName = errors.New("persona name is required")

// customIDOffset keeps user-created ids disjoint from the curated range.
const customIDOffset = 1000

// Store exposes catalog retrieval and custom persona creation.
type Store interface {
	List() []Persona
	FindByID(id int64) (Persona, bool)
	FindByCategory(category string) []Persona
	Search(query string) []Persona
	CreateCustom(name string) (Persona, error)
}

// MemoryStore implements Store with an in-memory slice, suitable for the
// single-process scope. Curated entries are immutable after seeding; custom
// entries are appended for the process lifetime.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []Persona
	nextID int64
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas,
// assigning ids in insertion order starting at 1.
func NewMemoryStore(items []Persona) *MemoryStore {
	s := &MemoryStore{items: make([]Persona, 0, len(items))}
	var id int64
	for _, item := range items {
		id++
		item.ID = id
		s.items = append(s.items, item)
	}
	s.nextID = id + customIDOffset
	return s
}

// List returns the catalog in insertion order.
func (s *MemoryStore) List() []Persona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Persona(nil), s.items...)
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id int64) (Persona, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Persona{}, false
}

// FindByCategory returns personas whose category matches exactly,
// case-insensitively.
func (s *MemoryStore) FindByCategory(category string) []Persona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []Persona
	for _, item := range s.items {
		if strings.EqualFold(item.Category, category) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Search matches the query case-insensitively against name, description,
// and category. An empty query returns the full catalog.
func (s *MemoryStore) Search(query string) []Persona {
	if query == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var matches []Persona
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}

// CreateCustom synthesizes a user-created persona for the given name. When a
// persona with the same name already exists (any case) it is returned as-is,
// making creation idempotent by name.
func (s *MemoryStore) CreateCustom(name string) (Persona, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Persona{}, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}

	created := Persona{
		ID:          s.nextID,
		Name:        name,
		Category:    "Custom",
		Description: "Custom personality: " + name,
		ImageURL:    "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random",
		IsCustom:    true,
	}
	s.nextID++
	s.items = append(s.items, created)
	return created, nil
}

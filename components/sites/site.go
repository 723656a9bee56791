package sites

import (
	"context"
	"fmt"
	"sync"
)

// Site is a configured site in an installation.
type Site struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Handle   string `json:"handle,omitempty" yaml:"handle"`
	Language string `json:"language,omitempty" yaml:"language"`
	Primary  bool   `json:"primary,omitempty" yaml:"primary"`
}

// Registry lists the current sites in display order.
type Registry interface {
	AllSites(ctx context.Context) ([]Site, error)
}

// RegistryFunc adapts a function to Registry.
type RegistryFunc func(ctx context.Context) ([]Site, error)

func (fn RegistryFunc) AllSites(ctx context.Context) ([]Site, error) {
	if fn == nil {
		return nil, nil
	}
	return fn(ctx)
}

// Store is an in-memory Registry whose contents can change at runtime.
type Store struct {
	mu    sync.RWMutex
	sites []Site
}

// NewStore returns a store seeded with sites. Seeds are validated the same way
// as Set.
func NewStore(sites ...Site) (*Store, error) {
	store := &Store{}
	if err := store.Set(sites); err != nil {
		return nil, err
	}
	return store, nil
}

// AllSites returns a copy of the current site list.
func (s *Store) AllSites(ctx context.Context) ([]Site, error) {
	if s == nil {
		return nil, nil
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Site{}, s.sites...), nil
}

// Set replaces the site list.
func (s *Store) Set(sites []Site) error {
	if s == nil {
		return fmt.Errorf("sites: nil store")
	}
	clean, err := normalizeSites(sites)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sites = clean
	s.mu.Unlock()
	return nil
}

// Add appends a site. IDs must stay unique.
func (s *Store) Add(site Site) error {
	if s == nil {
		return fmt.Errorf("sites: nil store")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]Site{}, s.sites...), site)
	clean, err := normalizeSites(next)
	if err != nil {
		return err
	}
	s.sites = clean
	return nil
}

// Remove deletes the site with id and reports whether it existed.
func (s *Store) Remove(id int) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, site := range s.sites {
		if site.ID == id {
			s.sites = append(append([]Site{}, s.sites[:idx]...), s.sites[idx+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of sites.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sites)
}

func normalizeSites(sites []Site) ([]Site, error) {
	out := make([]Site, 0, len(sites))
	seen := make(map[int]struct{}, len(sites))
	for idx, site := range sites {
		site.Name = sanitizeName(site.Name)
		if site.Name == "" {
			return nil, fmt.Errorf("sites: site %d (id %d) has an empty name", idx, site.ID)
		}
		if _, exists := seen[site.ID]; exists {
			return nil, fmt.Errorf("sites: duplicate site id %d", site.ID)
		}
		seen[site.ID] = struct{}{}
		out = append(out, site)
	}
	return out, nil
}

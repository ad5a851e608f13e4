package chart

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Extension is appended to a logical chart name to find its document.
const Extension = ".yaml"

// Store loads charts from a filesystem and caches them by path.
//
// Cached charts are shared by reference and never mutated. Concurrent loads
// of the same uncached chart parse it once; every caller sees the fully
// populated result.
type Store struct {
	fsys  fs.FS
	mu    sync.RWMutex
	cache map[string]*Chart
	group singleflight.Group
}

// NewStore creates a store reading chart documents from fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:  fsys,
		cache: make(map[string]*Chart),
	}
}

// LoadByName resolves a logical name such as "dmg/armor_minor" to its
// document and loads it. Repeated calls return the identical *Chart.
func (s *Store) LoadByName(name string) (*Chart, error) {
	c, err := s.LoadFromSource(s.Resolve(name))
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, &NotFoundError{Name: name, Path: nf.Path, Err: nf.Err}
		}
		return nil, err
	}
	return c, nil
}

// Resolve maps a logical chart name to the path of its document.
func (s *Store) Resolve(name string) string {
	return path.Clean(name) + Extension
}

// LoadFromSource loads the chart document at p, consulting the cache first.
func (s *Store) LoadFromSource(p string) (*Chart, error) {
	if c, ok := s.cached(p); ok {
		return c, nil
	}

	v, err, _ := s.group.Do(p, func() (any, error) {
		if c, ok := s.cached(p); ok {
			return c, nil
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &NotFoundError{Path: p, Err: err}
			}
			return nil, fmt.Errorf("read chart %s: %w", p, err)
		}

		c, err := Parse(p, data)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cache[p] = c
		s.mu.Unlock()

		slog.Debug("chart loaded", "path", p, "name", c.Name, "entries", len(c.Entries))
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Chart), nil
}

// Len returns the number of cached charts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func (s *Store) cached(p string) (*Chart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cache[p]
	return c, ok
}

package planfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rcastellanos/malla/internal/domain"
)

// Store reads and writes plan documents as *.json files in one directory.
// The plan name is the file stem.
type Store struct {
	dir string
}

// NewStore creates a store over the given directory. The directory is
// created lazily on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string { return s.dir }

// List returns the available plan names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plan directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the named plan's records.
func (s *Store) Load(name string) (Records, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("reading plan %q: %w", name, err)
	}
	return Parse(data)
}

// Save writes the named plan's records, creating the directory if needed.
func (s *Store) Save(name string, records Records) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating plan directory: %w", err)
	}
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("writing plan %q: %w", name, err)
	}
	return nil
}

// LoadGraph loads the named plan and builds its graph.
func (s *Store) LoadGraph(name string) (*domain.Graph, error) {
	records, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	return Build(name, records), nil
}

// SaveGraph exports the graph and writes it under its plan name.
func (s *Store) SaveGraph(g *domain.Graph) error {
	return s.Save(g.PlanName, Export(g))
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

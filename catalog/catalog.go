// Package catalog serves the read-only list of target positions.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pivot/backend/models"
)

//go:embed positions.yaml
var embeddedPositions []byte

// ErrPositionNotFound is returned by Get for an unknown id
var ErrPositionNotFound = errors.New("position not found")

var validLevels = map[string]bool{
	"entry": true, "mid": true, "senior": true, "lead": true, "principal": true, "executive": true,
}

type catalogFile struct {
	Positions []models.Position `yaml:"positions"`
}

// Filter narrows List. Zero values match everything.
type Filter struct {
	Department string
	Level      string
	Remote     *bool
	// Query matches title, department, description or a required skill,
	// case-insensitively.
	Query string
}

// Catalog is immutable after loading and safe for concurrent use.
type Catalog struct {
	positions []models.Position
	byID      map[string]int
}

// Load reads the override file when path is set, the embedded catalog otherwise.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedPositions)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a positions document.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse positions: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(file.Positions))}
	for i, p := range file.Positions {
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("position %d: missing id", i)
		case p.Title == "" || p.Department == "":
			return nil, fmt.Errorf("position %q: title and department are required", p.ID)
		case !validLevels[p.Level]:
			return nil, fmt.Errorf("position %q: invalid level %q", p.ID, p.Level)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("position %q: duplicate id", p.ID)
		}
		if p.RequiredSkills == nil {
			p.RequiredSkills = []string{}
		}
		if p.NiceToHaveSkills == nil {
			p.NiceToHaveSkills = []string{}
		}
		if p.Responsibilities == nil {
			p.Responsibilities = []string{}
		}
		c.byID[p.ID] = len(c.positions)
		c.positions = append(c.positions, p)
	}
	return c, nil
}

// Len returns the number of positions
func (c *Catalog) Len() int {
	return len(c.positions)
}

// List returns positions matching f in catalog order
func (c *Catalog) List(f Filter) []models.Position {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Position, 0, len(c.positions))
	for _, p := range c.positions {
		if f.Department != "" && p.Department != f.Department {
			continue
		}
		if f.Level != "" && p.Level != f.Level {
			continue
		}
		if f.Remote != nil && p.Remote != *f.Remote {
			continue
		}
		if query != "" && !matches(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p models.Position, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Department), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, skill := range p.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

// Get returns the position with id
func (c *Catalog) Get(id string) (*models.Position, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrPositionNotFound
	}
	p := c.positions[i]
	return &p, nil
}

// Departments returns the distinct department names, sorted
func (c *Catalog) Departments() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range c.positions {
		if !seen[p.Department] {
			seen[p.Department] = true
			out = append(out, p.Department)
		}
	}
	sort.Strings(out)
	return out
}

package project

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Alijeyrad/portfolio_backend/internal/schema"
)

//go:embed projects.yaml
var showcaseYAML []byte

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List() []schema.Project
	Get(id string) (schema.Project, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// projectService never mutates its list after construction, so it needs no locking.
type projectService struct {
	projects []schema.Project
	byID     map[string]int
}

// New returns the showcase compiled into the binary.
func New() (Service, error) {
	return Parse(showcaseYAML)
}

// Parse builds a Service from a YAML list of projects.
func Parse(data []byte) (Service, error) {
	var projects []schema.Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}

	byID := make(map[string]int, len(projects))
	for i := range projects {
		if err := schema.Validate(&projects[i]); err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		if _, dup := byID[projects[i].ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, projects[i].ID)
		}
		byID[projects[i].ID] = i
	}

	return &projectService{projects: projects, byID: byID}, nil
}

func (s *projectService) List() []schema.Project {
	out := make([]schema.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

func (s *projectService) Get(id string) (schema.Project, error) {
	i, ok := s.byID[id]
	if !ok {
		return schema.Project{}, ErrNotFound
	}
	return s.projects[i].Clone(), nil
}

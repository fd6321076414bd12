package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/susround/internal/model"
)

// Minimum pool sizes: each player samples without replacement from a single
// pool, so a pool must hold at least one full hand.
const (
	MinCrewTasks          = 4
	MinImpostorObjectives = 3
	MinSupportRoutines    = 3
	MinPrompts            = 1
)

// Banks holds the read-only string pools that tasks and prompts are drawn from
type Banks struct {
	CrewTasks          []string `yaml:"crew_tasks"`
	ImpostorObjectives []string `yaml:"impostor_objectives"`
	SupportRoutines    []string `yaml:"support_routines"`
	Prompts            []string `yaml:"prompts"`
}

// Default returns a fresh copy of the built-in banks
func Default() *Banks {
	return &Banks{
		CrewTasks:          clone(defaultCrewTasks),
		ImpostorObjectives: clone(defaultImpostorObjectives),
		SupportRoutines:    clone(defaultSupportRoutines),
		Prompts:            clone(defaultPrompts),
	}
}

// ForKind returns the pool that tasks of the given kind are drawn from
func (b *Banks) ForKind(kind model.TaskKind) []string {
	switch kind {
	case model.TaskKindImpostor:
		return b.ImpostorObjectives
	case model.TaskKindSupport:
		return b.SupportRoutines
	default:
		return b.CrewTasks
	}
}

// Validate checks every pool is large enough and has no blank entries
func (b *Banks) Validate() error {
	pools := []struct {
		name  string
		items []string
		min   int
	}{
		{"crew_tasks", b.CrewTasks, MinCrewTasks},
		{"impostor_objectives", b.ImpostorObjectives, MinImpostorObjectives},
		{"support_routines", b.SupportRoutines, MinSupportRoutines},
		{"prompts", b.Prompts, MinPrompts},
	}
	var errs []error
	for _, p := range pools {
		if len(p.items) < p.min {
			errs = append(errs, fmt.Errorf("content: %s needs at least %d entries, has %d", p.name, p.min, len(p.items)))
		}
		for i, item := range p.items {
			if strings.TrimSpace(item) == "" {
				errs = append(errs, fmt.Errorf("content: %s[%d] is blank", p.name, i))
			}
		}
	}
	return errors.Join(errs...)
}

// Parse decodes and validates a YAML banks document. Pools missing from the
// document fall back to the built-in defaults.
func Parse(data []byte) (*Banks, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("content: banks payload is empty")
	}
	var doc Banks
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: decode banks: %w", err)
	}
	banks := Default()
	if doc.CrewTasks != nil {
		banks.CrewTasks = trimAll(doc.CrewTasks)
	}
	if doc.ImpostorObjectives != nil {
		banks.ImpostorObjectives = trimAll(doc.ImpostorObjectives)
	}
	if doc.SupportRoutines != nil {
		banks.SupportRoutines = trimAll(doc.SupportRoutines)
	}
	if doc.Prompts != nil {
		banks.Prompts = trimAll(doc.Prompts)
	}
	if err := banks.Validate(); err != nil {
		return nil, err
	}
	return banks, nil
}

// LoadFile reads a YAML banks file from disk
func LoadFile(path string) (*Banks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	banks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return banks, nil
}

func clone(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}

func trimAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}

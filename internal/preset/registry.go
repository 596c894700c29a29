package preset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateID        = errors.New("duplicate preset id")
	ErrMissingDefault     = errors.New("registry has no default preset")
	ErrMeaningNotRetained = errors.New("reduced motion does not retain meaning")
	ErrIncomplete         = errors.New("preset is incomplete")
)

// Registry is the frozen set of presets. It has no mutation methods and only
// hands out copies.
type Registry struct {
	order []string
	byID  map[string]Preset
}

func NewRegistry(presets []Preset) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(presets)),
		byID:  make(map[string]Preset, len(presets)),
	}
	for i, p := range presets {
		if err := validatePreset(p); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i, err)
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	if _, ok := r.byID[DefaultID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefault, DefaultID)
	}
	return r, nil
}

func validatePreset(p Preset) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrIncomplete)
	}
	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("%w: %s label is required", ErrIncomplete, p.ID)
	}
	if strings.TrimSpace(p.Meaning) == "" {
		return fmt.Errorf("%w: %s meaning is required", ErrIncomplete, p.ID)
	}
	if strings.TrimSpace(p.LearningObjective) == "" {
		return fmt.Errorf("%w: %s learning objective is required", ErrIncomplete, p.ID)
	}
	if p.Animation.DurationMs <= 0 {
		return fmt.Errorf("%w: %s animation duration must be positive, got %d", ErrIncomplete, p.ID, p.Animation.DurationMs)
	}
	if strings.TrimSpace(p.Animation.Behavior) == "" {
		return fmt.Errorf("%w: %s animation behavior is required", ErrIncomplete, p.ID)
	}
	if strings.TrimSpace(p.Animation.Easing) == "" {
		return fmt.Errorf("%w: %s animation easing is required", ErrIncomplete, p.ID)
	}
	if !p.ReducedMotion.RetainsMeaning {
		return fmt.Errorf("%w: %s", ErrMeaningNotRetained, p.ID)
	}
	if strings.TrimSpace(p.ReducedMotion.Behavior) == "" {
		return fmt.Errorf("%w: %s reduced motion behavior is required", ErrIncomplete, p.ID)
	}
	if strings.TrimSpace(p.ReducedMotion.Cue) == "" {
		return fmt.Errorf("%w: %s reduced motion cue is required", ErrIncomplete, p.ID)
	}
	if p.ReducedMotion.Behavior == p.Animation.Behavior {
		return fmt.Errorf("%w: %s reduced motion behavior must differ from animated behavior %q", ErrIncomplete, p.ID, p.Animation.Behavior)
	}
	return nil
}

// Get returns the preset for id, or the default preset when id is unknown.
func (r *Registry) Get(id string) Preset {
	if p, ok := r.byID[id]; ok {
		return p
	}
	return r.byID[DefaultID]
}

func (r *Registry) Lookup(id string) (Preset, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// IDs returns preset ids in declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) All() []Preset {
	presets := make([]Preset, 0, len(r.order))
	for _, id := range r.order {
		presets = append(presets, r.byID[id])
	}
	return presets
}

func (r *Registry) Len() int {
	return len(r.order)
}

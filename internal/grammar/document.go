package grammar

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"aionmotion/internal/preset"
	"aionmotion/internal/transition"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrDuplicate     = errors.New("duplicate entry")
)

// Document is the YAML form of a motion grammar.
type Document struct {
	Version           int                `yaml:"version"`
	Presets           []preset.Preset    `yaml:"presets"`
	RelationTypes     []RelationType     `yaml:"relation_types"`
	ModuleTransitions []ModuleTransition `yaml:"module_transitions"`
}

type RelationType struct {
	Name   string `yaml:"name"`
	Preset string `yaml:"preset"`
}

type ModuleTransition struct {
	Module      string       `yaml:"module"`
	Transitions []Transition `yaml:"transitions"`
}

type Transition struct {
	Key    string `yaml:"key"`
	Preset string `yaml:"preset"`
}

func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading grammar: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("loading grammar %s: %w", path, err)
	}
	return doc, nil
}

func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing grammar: %w", err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// validateDocument checks the tables. Per-preset invariants are left to
// preset.NewRegistry.
func validateDocument(doc *Document) error {
	if doc.Version != 1 {
		return fmt.Errorf("unsupported version: %d", doc.Version)
	}
	if len(doc.Presets) == 0 {
		return fmt.Errorf("at least one preset is required")
	}

	presetIDs := make(map[string]struct{}, len(doc.Presets))
	for _, p := range doc.Presets {
		presetIDs[p.ID] = struct{}{}
	}

	relNames := make(map[string]struct{})
	for i, rel := range doc.RelationTypes {
		if strings.TrimSpace(rel.Name) == "" {
			return fmt.Errorf("relation type %d name is required", i)
		}
		key := transition.NormalizeRelationType(rel.Name)
		if _, exists := relNames[key]; exists {
			return fmt.Errorf("%w: relation type %s", ErrDuplicate, rel.Name)
		}
		relNames[key] = struct{}{}
		if _, ok := presetIDs[rel.Preset]; !ok {
			return fmt.Errorf("relation type %s: %w: %q", rel.Name, ErrUnknownPreset, rel.Preset)
		}
	}

	modules := make(map[string]struct{})
	for i, mod := range doc.ModuleTransitions {
		if strings.TrimSpace(mod.Module) == "" {
			return fmt.Errorf("module %d name is required", i)
		}
		if _, exists := modules[mod.Module]; exists {
			return fmt.Errorf("%w: module %s", ErrDuplicate, mod.Module)
		}
		modules[mod.Module] = struct{}{}

		keys := make(map[string]struct{})
		for _, tr := range mod.Transitions {
			if strings.TrimSpace(tr.Key) == "" {
				return fmt.Errorf("module %s has transition with empty key", mod.Module)
			}
			if _, exists := keys[tr.Key]; exists {
				return fmt.Errorf("%w: module %s transition %s", ErrDuplicate, mod.Module, tr.Key)
			}
			keys[tr.Key] = struct{}{}
			if _, ok := presetIDs[tr.Preset]; !ok {
				return fmt.Errorf("module %s transition %s: %w: %q", mod.Module, tr.Key, ErrUnknownPreset, tr.Preset)
			}
		}
	}

	return nil
}

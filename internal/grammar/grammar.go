// Package grammar assembles the preset registry and transition maps from a
// YAML grammar document. The default grammar ships embedded in the binary.
package grammar

import (
	_ "embed"
	"fmt"
	"sync"

	"aionmotion/internal/preset"
	"aionmotion/internal/transition"
)

//go:embed default.yaml
var defaultYAML []byte

type Grammar struct {
	Presets     *preset.Registry
	Transitions *transition.Maps
}

func Build(doc *Document) (*Grammar, error) {
	registry, err := preset.NewRegistry(doc.Presets)
	if err != nil {
		return nil, fmt.Errorf("building preset registry: %w", err)
	}

	relations := make(map[string]string, len(doc.RelationTypes))
	for _, rel := range doc.RelationTypes {
		relations[rel.Name] = rel.Preset
	}
	modules := make(map[string]map[string]string, len(doc.ModuleTransitions))
	for _, mod := range doc.ModuleTransitions {
		transitions := make(map[string]string, len(mod.Transitions))
		for _, tr := range mod.Transitions {
			transitions[tr.Key] = tr.Preset
		}
		modules[mod.Module] = transitions
	}

	return &Grammar{
		Presets:     registry,
		Transitions: transition.NewMaps(relations, modules),
	}, nil
}

// Load reads the grammar at path, or the embedded default when path is empty.
func Load(path string) (*Grammar, error) {
	if path == "" {
		return Default(), nil
	}
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

var (
	defaultOnce    sync.Once
	defaultGrammar *Grammar
)

// Default returns the embedded grammar. It panics if the embedded data is
// invalid, which the package tests rule out.
func Default() *Grammar {
	defaultOnce.Do(func() {
		doc, err := ParseDocument(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded grammar: %v", err))
		}
		g, err := Build(doc)
		if err != nil {
			panic(fmt.Sprintf("embedded grammar: %v", err))
		}
		defaultGrammar = g
	})
	return defaultGrammar
}

// DefaultYAML returns a copy of the embedded grammar source.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

package transition

import (
	"sort"
	"strings"

	"aionmotion/internal/preset"
)

const keySeparator = "->"

// Maps holds the two static lookup tables that turn semantic events into preset ids.
type Maps struct {
	relations map[string]string
	modules   map[string]map[string]string
}

// NewMaps copies relations and modules. Relation type keys are normalized.
func NewMaps(relations map[string]string, modules map[string]map[string]string) *Maps {
	m := &Maps{
		relations: make(map[string]string, len(relations)),
		modules:   make(map[string]map[string]string, len(modules)),
	}
	for relType, id := range relations {
		m.relations[NormalizeRelationType(relType)] = id
	}
	for module, transitions := range modules {
		inner := make(map[string]string, len(transitions))
		for key, id := range transitions {
			inner[key] = id
		}
		m.modules[module] = inner
	}
	return m
}

// Key joins two visualization states into a transition key such as "nigredo->albedo".
func Key(from, to string) string {
	return from + keySeparator + to
}

// NormalizeRelationType lower-cases a relation tag and folds "_" and spaces into "-",
// so INTEGRATES_INTO and integrates-into are the same key.
func NormalizeRelationType(relationType string) string {
	s := strings.ToLower(strings.TrimSpace(relationType))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}

func (m *Maps) PresetForRelationType(relationType string) string {
	if id, ok := m.LookupRelationType(relationType); ok {
		return id
	}
	return preset.DefaultID
}

func (m *Maps) LookupRelationType(relationType string) (string, bool) {
	id, ok := m.relations[NormalizeRelationType(relationType)]
	return id, ok
}

func (m *Maps) PresetForModuleTransition(moduleName, transitionKey string) string {
	if id, ok := m.LookupModuleTransition(moduleName, transitionKey); ok {
		return id
	}
	return preset.DefaultID
}

func (m *Maps) LookupModuleTransition(moduleName, transitionKey string) (string, bool) {
	transitions, ok := m.modules[moduleName]
	if !ok {
		return "", false
	}
	id, ok := transitions[transitionKey]
	return id, ok
}

// RelationTypes returns the registered (normalized) relation types, sorted.
func (m *Maps) RelationTypes() []string {
	return sortedKeys(m.relations)
}

func (m *Maps) Modules() []string {
	names := make([]string, 0, len(m.modules))
	for name := range m.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transitions returns the registered transition keys of one module, sorted.
// It returns nil for an unknown module.
func (m *Maps) Transitions(moduleName string) []string {
	transitions, ok := m.modules[moduleName]
	if !ok {
		return nil
	}
	return sortedKeys(transitions)
}

// PresetIDs returns every preset id referenced by either table.
func (m *Maps) PresetIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, id := range m.relations {
		ids[id] = struct{}{}
	}
	for _, transitions := range m.modules {
		for _, id := range transitions {
			ids[id] = struct{}{}
		}
	}
	return ids
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

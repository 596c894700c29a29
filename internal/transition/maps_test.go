package transition

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"aionmotion/internal/preset"
)

func testMaps() *Maps {
	return NewMaps(
		map[string]string{
			"opposes":         preset.OppositionID,
			"develops-toward": preset.TransformationID,
		},
		map[string]map[string]string{
			"alchemyLab": {
				"nigredo->albedo": preset.TransformationID,
				"rubedo->nigredo": preset.CyclicalReturnID,
			},
		},
	)
}

func TestPresetForRelationType(t *testing.T) {
	m := testMaps()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "registered", input: "opposes", expected: preset.OppositionID},
		{name: "upper snake case", input: "DEVELOPS_TOWARD", expected: preset.TransformationID},
		{name: "padded with spaces", input: "  develops toward ", expected: preset.TransformationID},
		{name: "unknown", input: "unknown-relation-xyz", expected: preset.IntegrationID},
		{name: "empty", input: "", expected: preset.IntegrationID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.PresetForRelationType(tt.input); got != tt.expected {
				t.Errorf("PresetForRelationType(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPresetForModuleTransition(t *testing.T) {
	m := testMaps()

	t.Run("registered", func(t *testing.T) {
		if got := m.PresetForModuleTransition("alchemyLab", Key("nigredo", "albedo")); got != preset.TransformationID {
			t.Fatalf("expected transformation, got %q", got)
		}
	})

	t.Run("unknown module", func(t *testing.T) {
		if got := m.PresetForModuleTransition("noSuchModule", "a->b"); got != preset.IntegrationID {
			t.Fatalf("expected integration, got %q", got)
		}
	})

	t.Run("unknown transition in known module", func(t *testing.T) {
		if got := m.PresetForModuleTransition("alchemyLab", "albedo->nigredo"); got != preset.IntegrationID {
			t.Fatalf("expected integration, got %q", got)
		}
		if _, ok := m.LookupModuleTransition("alchemyLab", "albedo->nigredo"); ok {
			t.Fatalf("expected lookup miss")
		}
	})

	t.Run("module names match exactly", func(t *testing.T) {
		if _, ok := m.LookupModuleTransition("AlchemyLab", "nigredo->albedo"); ok {
			t.Fatalf("expected lookup miss for differently cased module")
		}
	})
}

func TestIntrospection(t *testing.T) {
	m := testMaps()

	if diff := cmp.Diff([]string{"develops-toward", "opposes"}, m.RelationTypes()); diff != "" {
		t.Fatalf("relation types mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alchemyLab"}, m.Modules()); diff != "" {
		t.Fatalf("modules mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"nigredo->albedo", "rubedo->nigredo"}, m.Transitions("alchemyLab")); diff != "" {
		t.Fatalf("transitions mismatch (-want +got):\n%s", diff)
	}
	if got := m.Transitions("noSuchModule"); got != nil {
		t.Fatalf("expected nil transitions, got %#v", got)
	}

	want := map[string]struct{}{
		preset.OppositionID:     {},
		preset.TransformationID: {},
		preset.CyclicalReturnID: {},
	}
	if diff := cmp.Diff(want, m.PresetIDs()); diff != "" {
		t.Fatalf("preset ids mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMapsCopiesInput(t *testing.T) {
	relations := map[string]string{"opposes": preset.OppositionID}
	modules := map[string]map[string]string{"conceptGraph": {"overview->polarized": preset.OppositionID}}
	m := NewMaps(relations, modules)

	relations["opposes"] = preset.IntegrationID
	modules["conceptGraph"]["overview->polarized"] = preset.IntegrationID

	if got := m.PresetForRelationType("opposes"); got != preset.OppositionID {
		t.Fatalf("maps mutated through relations input: %q", got)
	}
	if got := m.PresetForModuleTransition("conceptGraph", "overview->polarized"); got != preset.OppositionID {
		t.Fatalf("maps mutated through modules input: %q", got)
	}
}

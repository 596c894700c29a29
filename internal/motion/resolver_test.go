package motion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aionmotion/internal/grammar"
	"aionmotion/internal/preset"
	"aionmotion/internal/transition"
)

func TestResolve_ModeFollowsPreference(t *testing.T) {
	req := Request{RelationType: "opposes"}

	reduced := NewDefault(WithPreference(StaticPreference(true))).Resolve(req)
	if reduced.Mode != ModeReduced {
		t.Fatalf("expected reduced mode, got %q", reduced.Mode)
	}

	animated := NewDefault(WithPreference(StaticPreference(false))).Resolve(req)
	if animated.Mode != ModeAnimated {
		t.Fatalf("expected animated mode, got %q", animated.Mode)
	}

	none := NewDefault().Resolve(req)
	if none.Mode != ModeAnimated {
		t.Fatalf("expected animated mode without a preference source, got %q", none.Mode)
	}
}

func TestResolve_SemanticEquivalenceAcrossModes(t *testing.T) {
	r := NewDefault()
	req := Request{RelationType: "opposes"}

	animated := r.Resolve(req)
	req.ReducedMotionRequested = true
	reduced := r.Resolve(req)

	want := Plan{
		SemanticPreset:    preset.OppositionID,
		Mode:              ModeAnimated,
		Meaning:           animated.Meaning,
		LearningObjective: animated.LearningObjective,
		Behavior:          "divergent-split",
		Cue:               "900ms cubic-bezier(0.7, 0, 0.3, 1)",
	}
	if diff := cmp.Diff(want, animated); diff != "" {
		t.Fatalf("animated plan mismatch (-want +got):\n%s", diff)
	}
	if reduced.Behavior != "instant-separation" {
		t.Fatalf("expected instant-separation, got %q", reduced.Behavior)
	}
	if reduced.SemanticPreset != animated.SemanticPreset ||
		reduced.Meaning != animated.Meaning ||
		reduced.LearningObjective != animated.LearningObjective {
		t.Fatalf("semantics differ across modes:\nanimated %+v\nreduced  %+v", animated, reduced)
	}
}

func TestResolve_EveryPresetPreservesMeaning(t *testing.T) {
	g := grammar.Default()
	r := NewFromGrammar(g)

	for _, relType := range g.Transitions.RelationTypes() {
		t.Run(relType, func(t *testing.T) {
			animated := r.Resolve(Request{RelationType: relType})
			reduced := r.Resolve(Request{RelationType: relType, ReducedMotionRequested: true})

			if animated.SemanticPreset != reduced.SemanticPreset {
				t.Fatalf("preset differs: %q vs %q", animated.SemanticPreset, reduced.SemanticPreset)
			}
			if animated.Meaning != reduced.Meaning || animated.LearningObjective != reduced.LearningObjective {
				t.Fatalf("meaning differs across modes")
			}
			if animated.Behavior == reduced.Behavior {
				t.Fatalf("behavior should differ across modes, both %q", animated.Behavior)
			}
			if reduced.Cue == "" {
				t.Fatalf("reduced cue is empty")
			}
		})
	}
}

func TestResolve_Fallbacks(t *testing.T) {
	r := NewDefault()

	t.Run("unknown relation type", func(t *testing.T) {
		plan := r.Resolve(Request{RelationType: "unknown-relation-xyz"})
		if plan.SemanticPreset != preset.IntegrationID {
			t.Fatalf("expected integration, got %q", plan.SemanticPreset)
		}
		if !plan.Fallback {
			t.Fatalf("expected fallback flag")
		}
	})

	t.Run("unknown module transition", func(t *testing.T) {
		plan := r.Resolve(Request{ModuleName: "noSuchModule", TransitionKey: "a->b"})
		if plan.SemanticPreset != preset.IntegrationID {
			t.Fatalf("expected integration, got %q", plan.SemanticPreset)
		}
		if !plan.Fallback {
			t.Fatalf("expected fallback flag")
		}
	})

	t.Run("empty request", func(t *testing.T) {
		plan := r.Resolve(Request{})
		if plan.SemanticPreset != preset.IntegrationID || plan.Behavior != "convergent-merge" {
			t.Fatalf("unexpected plan: %+v", plan)
		}
	})

	t.Run("registered integration is not a fallback", func(t *testing.T) {
		plan := r.Resolve(Request{RelationType: "integrates-into"})
		if plan.Fallback {
			t.Fatalf("expected no fallback flag")
		}
	})
}

func TestResolve_RelationTypeTakesPrecedence(t *testing.T) {
	plan := NewDefault().Resolve(Request{
		RelationType:  "opposes",
		ModuleName:    "alchemyLab",
		TransitionKey: "nigredo->albedo",
	})
	if plan.SemanticPreset != preset.OppositionID {
		t.Fatalf("expected opposition, got %q", plan.SemanticPreset)
	}
}

func TestResolve_ExplicitOverride(t *testing.T) {
	r := NewDefault(WithPreference(StaticPreference(false)))

	plan := r.Resolve(Request{RelationType: "opposes", ReducedMotionRequested: true})
	if plan.Mode != ModeReduced {
		t.Fatalf("expected reduced mode, got %q", plan.Mode)
	}

	t.Run("override cannot force animated against platform", func(t *testing.T) {
		r := NewDefault(WithPreference(StaticPreference(true)))
		plan := r.Resolve(Request{RelationType: "opposes", ReducedMotionRequested: false})
		if plan.Mode != ModeReduced {
			t.Fatalf("expected reduced mode, got %q", plan.Mode)
		}
	})

	t.Run("request preference overrides resolver source", func(t *testing.T) {
		r := NewDefault(WithPreference(StaticPreference(false)))
		plan := r.Resolve(Request{RelationType: "opposes", Preference: StaticPreference(true)})
		if plan.Mode != ModeReduced {
			t.Fatalf("expected reduced mode, got %q", plan.Mode)
		}
	})
}

func TestResolve_AlchemyLabEndToEnd(t *testing.T) {
	plan := NewDefault(WithPreference(StaticPreference(false))).Resolve(Request{
		ModuleName:    "alchemyLab",
		TransitionKey: "nigredo->albedo",
	})

	if plan.SemanticPreset != preset.TransformationID {
		t.Fatalf("expected transformation, got %q", plan.SemanticPreset)
	}
	if plan.Mode != ModeAnimated {
		t.Fatalf("expected animated, got %q", plan.Mode)
	}
	if plan.Behavior != "staged-morph" {
		t.Fatalf("expected staged-morph, got %q", plan.Behavior)
	}
	if plan.Cue != "1600ms cubic-bezier(0.4, 0, 0.2, 1)" {
		t.Fatalf("unexpected cue %q", plan.Cue)
	}
}

func TestResolve_PreferenceReadOncePerCall(t *testing.T) {
	calls := 0
	r := NewDefault(WithPreference(PreferenceFunc(func() bool {
		calls++
		return calls%2 == 0
	})))

	first := r.Resolve(Request{RelationType: "opposes"})
	second := r.Resolve(Request{RelationType: "opposes"})
	if calls != 2 {
		t.Fatalf("expected 2 preference reads, got %d", calls)
	}
	if first.Mode != ModeAnimated || second.Mode != ModeReduced {
		t.Fatalf("expected animated then reduced, got %q then %q", first.Mode, second.Mode)
	}
}

func TestResolve_StrictLogsFallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	strict := NewDefault(WithLogger(zap.New(core)), WithStrict(true))
	strict.Resolve(Request{RelationType: "opposes"})
	strict.Resolve(Request{RelationType: "opose"})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if got := entry.ContextMap()["relation_type"]; got != "opose" {
		t.Fatalf("expected logged relation type opose, got %v", got)
	}

	lenient := NewDefault(WithLogger(zap.New(core)))
	lenient.Resolve(Request{RelationType: "opose"})
	if logs.Len() != 1 {
		t.Fatalf("expected lenient resolver not to log, got %d entries", logs.Len())
	}
}

func TestPresetIDForRelation(t *testing.T) {
	r := NewDefault()
	if got := r.PresetIDForRelation("returns-to"); got != preset.CyclicalReturnID {
		t.Fatalf("expected cyclical-return, got %q", got)
	}
	if got := r.PresetIDForRelation("unknown"); got != preset.IntegrationID {
		t.Fatalf("expected integration, got %q", got)
	}

	t.Run("agrees with Resolve for unregistered preset ids", func(t *testing.T) {
		maps := transition.NewMaps(map[string]string{"haunts": "ghost-trail"}, nil)
		r := New(grammar.Default().Presets, maps)
		plan := r.Resolve(Request{RelationType: "haunts"})
		if got := r.PresetIDForRelation("haunts"); got != plan.SemanticPreset || got != preset.IntegrationID {
			t.Fatalf("expected integration from both, got %q and %q", got, plan.SemanticPreset)
		}
	})
}

func TestResolverPreference(t *testing.T) {
	if NewDefault().Preference() != nil {
		t.Fatalf("expected no default preference source")
	}
	source := StaticPreference(true)
	if got := NewDefault(WithPreference(source)).Preference(); got != source {
		t.Fatalf("expected configured source, got %v", got)
	}
}

func TestEnvPreference(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "1", expected: true},
		{value: "true", expected: true},
		{value: "reduce", expected: true},
		{value: "0", expected: false},
		{value: "no-preference", expected: false},
		{value: "", expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvReducedMotion, tt.value)
			if got := (EnvPreference{}).PrefersReducedMotion(); got != tt.expected {
				t.Errorf("EnvPreference with %q = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestAnyPreference(t *testing.T) {
	if (AnyPreference{}).PrefersReducedMotion() {
		t.Fatalf("empty AnyPreference should report no preference")
	}
	if (AnyPreference{nil, StaticPreference(false)}).PrefersReducedMotion() {
		t.Fatalf("expected no preference")
	}
	if !(AnyPreference{StaticPreference(false), StaticPreference(true)}).PrefersReducedMotion() {
		t.Fatalf("expected reduced preference")
	}
}

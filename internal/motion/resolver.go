// Package motion resolves semantic events into motion plans.
//
// A Resolver combines the preset registry, the transition maps and a
// reduced-motion preference source. Resolution never fails: unknown keys
// degrade to the integration preset so that motion selection cannot block
// rendering or navigation.
package motion

import (
	"fmt"

	"go.uber.org/zap"

	"aionmotion/internal/grammar"
	"aionmotion/internal/preset"
	"aionmotion/internal/transition"
)

type Mode string

const (
	ModeAnimated Mode = "animated"
	ModeReduced  Mode = "reduced"
)

// Request names either a relation type or a module transition. RelationType
// wins when both are set.
type Request struct {
	RelationType  string
	ModuleName    string
	TransitionKey string

	// ReducedMotionRequested forces reduced mode. It cannot force animated mode.
	ReducedMotionRequested bool

	// Preference overrides the resolver's source for this request.
	Preference PreferenceSource
}

type Plan struct {
	SemanticPreset    string `json:"semantic_preset"`
	Mode              Mode   `json:"mode"`
	Meaning           string `json:"meaning"`
	LearningObjective string `json:"learning_objective"`
	Behavior          string `json:"behavior"`
	Cue               string `json:"cue"`
	Fallback          bool   `json:"fallback,omitempty"`
}

type Resolver struct {
	presets     *preset.Registry
	transitions *transition.Maps
	preference  PreferenceSource
	logger      *zap.Logger
	strict      bool
}

type Option func(*Resolver)

func WithPreference(source PreferenceSource) Option {
	return func(r *Resolver) {
		r.preference = source
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStrict logs every lookup that falls back to the default preset.
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

func New(presets *preset.Registry, transitions *transition.Maps, opts ...Option) *Resolver {
	r := &Resolver{
		presets:     presets,
		transitions: transitions,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewFromGrammar(g *grammar.Grammar, opts ...Option) *Resolver {
	return New(g.Presets, g.Transitions, opts...)
}

// NewDefault builds a resolver over the embedded default grammar.
func NewDefault(opts ...Option) *Resolver {
	return NewFromGrammar(grammar.Default(), opts...)
}

func (r *Resolver) Resolve(req Request) Plan {
	id, found := r.lookup(req)
	if !found && r.strict {
		r.logger.Warn("motion lookup fell back to default preset",
			zap.String("relation_type", req.RelationType),
			zap.String("module", req.ModuleName),
			zap.String("transition", req.TransitionKey),
			zap.String("preset", preset.DefaultID),
		)
	}

	p, ok := r.presets.Lookup(id)
	if !ok {
		p = r.presets.Get(preset.DefaultID)
		found = false
	}

	plan := PlanFor(p, r.mode(req))
	plan.Fallback = !found
	return plan
}

// PlanFor renders p in mode m.
func PlanFor(p preset.Preset, m Mode) Plan {
	plan := Plan{
		SemanticPreset:    p.ID,
		Mode:              m,
		Meaning:           p.Meaning,
		LearningObjective: p.LearningObjective,
	}
	if m == ModeReduced {
		plan.Behavior = p.ReducedMotion.Behavior
		plan.Cue = p.ReducedMotion.Cue
	} else {
		plan.Behavior = p.Animation.Behavior
		plan.Cue = AnimatedCue(p.Animation)
	}
	return plan
}

func (r *Resolver) lookup(req Request) (string, bool) {
	if req.RelationType != "" {
		if id, ok := r.transitions.LookupRelationType(req.RelationType); ok {
			return id, true
		}
		return preset.DefaultID, false
	}
	if id, ok := r.transitions.LookupModuleTransition(req.ModuleName, req.TransitionKey); ok {
		return id, true
	}
	return preset.DefaultID, false
}

func (r *Resolver) mode(req Request) Mode {
	if req.ReducedMotionRequested {
		return ModeReduced
	}
	source := req.Preference
	if source == nil {
		source = r.preference
	}
	if source != nil && source.PrefersReducedMotion() {
		return ModeReduced
	}
	return ModeAnimated
}

// PresetIDForRelation returns only the preset id for a relation type, for
// callers that just pick a class name.
func (r *Resolver) PresetIDForRelation(relationType string) string {
	return r.presets.Get(r.transitions.PresetForRelationType(relationType)).ID
}

// Preference returns the resolver's default source, or nil when none is set.
func (r *Resolver) Preference() PreferenceSource {
	return r.preference
}

func (r *Resolver) Presets() *preset.Registry {
	return r.presets
}

func (r *Resolver) Transitions() *transition.Maps {
	return r.transitions
}

// AnimatedCue renders duration and easing as "900ms linear".
func AnimatedCue(a preset.Animation) string {
	return fmt.Sprintf("%dms %s", a.DurationMs, a.Easing)
}

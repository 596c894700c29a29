package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"aionmotion/internal/motion"
	"aionmotion/internal/preset"
)

type ResolveMotionPlanInput struct {
	RelationType  string `json:"relation_type,omitempty" jsonschema:"relation type tag such as opposes; takes precedence over module and transition"`
	Module        string `json:"module,omitempty" jsonschema:"visualization module name such as alchemyLab"`
	Transition    string `json:"transition,omitempty" jsonschema:"state transition key such as nigredo->albedo"`
	ReducedMotion bool   `json:"reduced_motion,omitempty" jsonschema:"force the reduced-motion rendering"`
}

type GetPresetInput struct {
	ID string `json:"id" jsonschema:"preset id"`
}

type ListPresetsInput struct{}

type ListRelationTypesInput struct{}

type ListModuleTransitionsInput struct {
	Module string `json:"module,omitempty" jsonschema:"restrict to one module"`
}

type MotionPlanOutput struct {
	SemanticPreset    string `json:"semantic_preset"`
	Mode              string `json:"mode"`
	Meaning           string `json:"meaning"`
	LearningObjective string `json:"learning_objective"`
	Behavior          string `json:"behavior"`
	Cue               string `json:"cue"`
	Fallback          bool   `json:"fallback"`
}

type PresetOutput struct {
	ID                string              `json:"id"`
	Label             string              `json:"label"`
	Meaning           string              `json:"meaning"`
	LearningObjective string              `json:"learning_objective"`
	Animation         AnimationOutput     `json:"animation"`
	ReducedMotion     ReducedMotionOutput `json:"reduced_motion"`
}

type AnimationOutput struct {
	Easing     string `json:"easing"`
	DurationMs int    `json:"duration_ms"`
	Behavior   string `json:"behavior"`
}

type ReducedMotionOutput struct {
	Behavior       string `json:"behavior"`
	Cue            string `json:"cue"`
	RetainsMeaning bool   `json:"retains_meaning"`
}

type ListPresetsOutput struct {
	Presets []PresetOutput `json:"presets"`
}

type RelationTypeOutput struct {
	Name   string `json:"name"`
	Preset string `json:"preset"`
}

type ListRelationTypesOutput struct {
	RelationTypes []RelationTypeOutput `json:"relation_types"`
}

type ModuleTransitionOutput struct {
	Module     string `json:"module"`
	Transition string `json:"transition"`
	Preset     string `json:"preset"`
}

type ListModuleTransitionsOutput struct {
	Transitions []ModuleTransitionOutput `json:"transitions"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "resolve_motion_plan",
		Description: "Resolve the motion plan for a relation type or a module state transition",
	}, s.handleResolveMotionPlan)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_preset",
		Description: "Retrieve one semantic motion preset",
	}, s.handleGetPreset)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_presets",
		Description: "List every semantic motion preset with its reduced-motion equivalent",
	}, s.handleListPresets)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_relation_types",
		Description: "List registered relation types and the preset each maps to",
	}, s.handleListRelationTypes)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_module_transitions",
		Description: "List registered module state transitions and their presets",
	}, s.handleListModuleTransitions)
}

func (s *Server) handleResolveMotionPlan(ctx context.Context, req *sdk.CallToolRequest, input ResolveMotionPlanInput) (*sdk.CallToolResult, MotionPlanOutput, error) {
	if input.RelationType == "" && input.Module == "" {
		return nil, MotionPlanOutput{}, fmt.Errorf("relation_type or module is required")
	}
	plan := s.resolver.Resolve(motion.Request{
		RelationType:           input.RelationType,
		ModuleName:             input.Module,
		TransitionKey:          input.Transition,
		ReducedMotionRequested: input.ReducedMotion,
	})
	return nil, motionPlanOutput(plan), nil
}

func (s *Server) handleGetPreset(ctx context.Context, req *sdk.CallToolRequest, input GetPresetInput) (*sdk.CallToolResult, PresetOutput, error) {
	if input.ID == "" {
		return nil, PresetOutput{}, fmt.Errorf("id is required")
	}
	p, ok := s.resolver.Presets().Lookup(input.ID)
	if !ok {
		return nil, PresetOutput{}, fmt.Errorf("preset not found")
	}
	return nil, presetOutput(p), nil
}

func (s *Server) handleListPresets(ctx context.Context, req *sdk.CallToolRequest, input ListPresetsInput) (*sdk.CallToolResult, ListPresetsOutput, error) {
	all := s.resolver.Presets().All()
	output := make([]PresetOutput, 0, len(all))
	for _, p := range all {
		output = append(output, presetOutput(p))
	}
	return nil, ListPresetsOutput{Presets: output}, nil
}

func (s *Server) handleListRelationTypes(ctx context.Context, req *sdk.CallToolRequest, input ListRelationTypesInput) (*sdk.CallToolResult, ListRelationTypesOutput, error) {
	maps := s.resolver.Transitions()
	names := maps.RelationTypes()
	output := make([]RelationTypeOutput, 0, len(names))
	for _, name := range names {
		output = append(output, RelationTypeOutput{Name: name, Preset: maps.PresetForRelationType(name)})
	}
	return nil, ListRelationTypesOutput{RelationTypes: output}, nil
}

func (s *Server) handleListModuleTransitions(ctx context.Context, req *sdk.CallToolRequest, input ListModuleTransitionsInput) (*sdk.CallToolResult, ListModuleTransitionsOutput, error) {
	maps := s.resolver.Transitions()
	modules := maps.Modules()
	if input.Module != "" {
		if maps.Transitions(input.Module) == nil {
			return nil, ListModuleTransitionsOutput{}, fmt.Errorf("module not found")
		}
		modules = []string{input.Module}
	}

	output := make([]ModuleTransitionOutput, 0)
	for _, module := range modules {
		for _, key := range maps.Transitions(module) {
			output = append(output, ModuleTransitionOutput{
				Module:     module,
				Transition: key,
				Preset:     maps.PresetForModuleTransition(module, key),
			})
		}
	}
	return nil, ListModuleTransitionsOutput{Transitions: output}, nil
}

func motionPlanOutput(plan motion.Plan) MotionPlanOutput {
	return MotionPlanOutput{
		SemanticPreset:    plan.SemanticPreset,
		Mode:              string(plan.Mode),
		Meaning:           plan.Meaning,
		LearningObjective: plan.LearningObjective,
		Behavior:          plan.Behavior,
		Cue:               plan.Cue,
		Fallback:          plan.Fallback,
	}
}

func presetOutput(p preset.Preset) PresetOutput {
	return PresetOutput{
		ID:                p.ID,
		Label:             p.Label,
		Meaning:           p.Meaning,
		LearningObjective: p.LearningObjective,
		Animation: AnimationOutput{
			Easing:     p.Animation.Easing,
			DurationMs: p.Animation.DurationMs,
			Behavior:   p.Animation.Behavior,
		},
		ReducedMotion: ReducedMotionOutput{
			Behavior:       p.ReducedMotion.Behavior,
			Cue:            p.ReducedMotion.Cue,
			RetainsMeaning: p.ReducedMotion.RetainsMeaning,
		},
	}
}

package validate

import (
	"context"
	"fmt"
	"strings"

	"aionmotion/internal/grammar"
	"aionmotion/internal/motion"
	"aionmotion/internal/preset"
	"aionmotion/internal/store"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeUnmappedRelationType = "unmapped_relation_type"
	codeUnusedPreset         = "unused_preset"
	codeMeaningNotPreserved  = "meaning_not_preserved"
)

const maxExamples = 3

type Issue struct {
	Severity     Severity
	Code         string
	Message      string
	RelationType string
	Preset       string
	Examples     []store.RelationExample
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarn)
}

func (r *Report) filter(severity Severity) []Issue {
	var issues []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			issues = append(issues, issue)
		}
	}
	return issues
}

type Options struct {
	// Strict reports unmapped relation types as errors instead of warnings.
	Strict bool
}

// Run audits the grammar on its own and against the relation types each
// source reports.
func Run(ctx context.Context, g *grammar.Grammar, sources []TaxonomySource, opts Options) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("grammar is required")
	}

	issues := make([]Issue, 0)
	issues = append(issues, checkEquivalence(g.Presets.All())...)
	issues = append(issues, checkUnusedPresets(g)...)

	unmappedSeverity := SeverityWarn
	if opts.Strict {
		unmappedSeverity = SeverityError
	}

	seen := make(map[string]int)
	uses := make(map[string]int)
	for _, source := range sources {
		usages, err := source.ListRelationTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("list relation types: %w", err)
		}
		for _, usage := range usages {
			if _, ok := g.Transitions.LookupRelationType(usage.Name); ok {
				continue
			}
			examples, err := source.ListRelationExamples(ctx, usage.Name, maxExamples)
			if err != nil {
				return nil, fmt.Errorf("list relation examples %s: %w", usage.Name, err)
			}
			uses[usage.Name] += usage.Count
			if i, dup := seen[usage.Name]; dup {
				issues[i].Examples = appendExamples(issues[i].Examples, examples)
				continue
			}
			seen[usage.Name] = len(issues)
			issues = append(issues, Issue{
				Severity:     unmappedSeverity,
				Code:         codeUnmappedRelationType,
				RelationType: usage.Name,
				Examples:     appendExamples(nil, examples),
			})
		}
	}
	for name, i := range seen {
		issues[i].Message = fmt.Sprintf("relation type %q (%d uses) has no motion preset and falls back to integration", name, uses[name])
	}

	return &Report{Issues: issues}, nil
}

// checkEquivalence renders every preset in both modes and reports any whose
// semantics drift between them.
func checkEquivalence(presets []preset.Preset) []Issue {
	var issues []Issue
	for _, p := range presets {
		animated := motion.PlanFor(p, motion.ModeAnimated)
		reduced := motion.PlanFor(p, motion.ModeReduced)

		var problems []string
		if animated.SemanticPreset != reduced.SemanticPreset {
			problems = append(problems, "preset differs")
		}
		if animated.Meaning != reduced.Meaning || animated.LearningObjective != reduced.LearningObjective {
			problems = append(problems, "meaning differs")
		}
		if animated.Behavior == reduced.Behavior {
			problems = append(problems, "behavior identical in both modes")
		}
		if strings.TrimSpace(reduced.Cue) == "" {
			problems = append(problems, "reduced cue empty")
		}
		if len(problems) == 0 {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeMeaningNotPreserved,
			Message:  strings.Join(problems, "; "),
			Preset:   p.ID,
		})
	}
	return issues
}

func checkUnusedPresets(g *grammar.Grammar) []Issue {
	referenced := g.Transitions.PresetIDs()
	var issues []Issue
	for _, id := range g.Presets.IDs() {
		if _, ok := referenced[id]; ok {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnusedPreset,
			Message:  "preset is not targeted by any relation type or module transition",
			Preset:   id,
		})
	}
	return issues
}

func appendExamples(dst, src []store.RelationExample) []store.RelationExample {
	for _, ex := range src {
		if len(dst) >= maxExamples {
			break
		}
		dst = append(dst, ex)
	}
	return dst
}

package preset

// Preset ids shipped with the default grammar.
const (
	OppositionID     = "opposition"
	IntegrationID    = "integration"
	TransformationID = "transformation"
	CyclicalReturnID = "cyclical-return"
)

// DefaultID is returned for any id, relation type or transition that is not registered.
const DefaultID = IntegrationID

// Preset is a semantic motion contract: one conceptual relationship, an
// animated rendering of it and a static rendering that carries the same meaning.
type Preset struct {
	ID                string        `json:"id" yaml:"id"`
	Label             string        `json:"label" yaml:"label"`
	Meaning           string        `json:"meaning" yaml:"meaning"`
	LearningObjective string        `json:"learning_objective" yaml:"learning_objective"`
	Animation         Animation     `json:"animation" yaml:"animation"`
	ReducedMotion     ReducedMotion `json:"reduced_motion" yaml:"reduced_motion"`
}

type Animation struct {
	Easing     string `json:"easing" yaml:"easing"`
	DurationMs int    `json:"duration_ms" yaml:"duration_ms"`
	Behavior   string `json:"behavior" yaml:"behavior"`
}

type ReducedMotion struct {
	Behavior       string `json:"behavior" yaml:"behavior"`
	Cue            string `json:"cue" yaml:"cue"`
	RetainsMeaning bool   `json:"retains_meaning" yaml:"retains_meaning"`
}

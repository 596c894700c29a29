package validate

import (
	"context"

	"aionmotion/internal/store"
)

type TaxonomySource interface {
	ListRelationTypes(ctx context.Context) ([]store.RelationTypeUsage, error)
	ListRelationExamples(ctx context.Context, relType string, limit int) ([]store.RelationExample, error)
}

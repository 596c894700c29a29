// Package store reads the relation taxonomy actually used by content, from a
// content database or from content files. It never writes.
package store

import "context"

type Store interface {
	Close(ctx context.Context) error

	// ListRelationTypes returns every relation type in use with its edge count,
	// ordered by relation type.
	ListRelationTypes(ctx context.Context) ([]RelationTypeUsage, error)

	// ListRelationExamples returns up to limit edges carrying relType.
	ListRelationExamples(ctx context.Context, relType string, limit int) ([]RelationExample, error)
}

package postgres

import (
	"context"
	"fmt"

	"aionmotion/internal/store"
)

func (c *Client) ListRelationTypes(ctx context.Context) ([]store.RelationTypeUsage, error) {
	query := `SELECT rel_type, COUNT(*) FROM edges GROUP BY rel_type ORDER BY rel_type`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing relation types: %w", err)
	}
	defer rows.Close()

	usages := []store.RelationTypeUsage{}
	for rows.Next() {
		var u store.RelationTypeUsage
		var count int64
		if err := rows.Scan(&u.Name, &count); err != nil {
			return nil, fmt.Errorf("scanning relation type: %w", err)
		}
		u.Count = int(count)
		usages = append(usages, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relation types: %w", err)
	}

	return usages, nil
}

func (c *Client) ListRelationExamples(ctx context.Context, relType string, limit int) ([]store.RelationExample, error) {
	if limit < 1 {
		return []store.RelationExample{}, nil
	}

	query := `
SELECT src.name, dst.name, e.rel_type, COALESCE(src.source_file, '')
FROM edges e
JOIN entities src ON src.id = e.src_id
JOIN entities dst ON dst.id = e.dst_id
WHERE e.rel_type = $1
ORDER BY src.name, dst.name
LIMIT $2
`

	rows, err := c.pool.Query(ctx, query, relType, limit)
	if err != nil {
		return nil, fmt.Errorf("listing relation examples: %w", err)
	}
	defer rows.Close()

	examples := []store.RelationExample{}
	for rows.Next() {
		var ex store.RelationExample
		if err := rows.Scan(&ex.From, &ex.To, &ex.Type, &ex.SourceFile); err != nil {
			return nil, fmt.Errorf("scanning relation example: %w", err)
		}
		examples = append(examples, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relation examples: %w", err)
	}

	return examples, nil
}

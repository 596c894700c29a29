// Package files reads the relation taxonomy from markdown content files whose
// frontmatter declares relations.
package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"aionmotion/internal/parser"
	"aionmotion/internal/store"
)

var _ store.Store = (*Client)(nil)

type Client struct {
	edges []store.RelationExample
}

// New walks paths once and keeps every declared relation in memory. Files
// without frontmatter are skipped; malformed frontmatter is an error.
func New(ctx context.Context, paths []string) (*Client, error) {
	c := &Client{}
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
				return nil
			}
			doc, err := parser.ParseFile(path)
			if errors.Is(err, parser.ErrNoFrontmatter) {
				return nil
			}
			if err != nil {
				return err
			}
			for _, rel := range doc.Relations {
				c.edges = append(c.edges, store.RelationExample{
					From:       doc.Title,
					To:         rel.Target,
					Type:       rel.Type,
					SourceFile: doc.SourceFile,
				})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning content %s: %w", root, err)
		}
	}
	return c, nil
}

func (c *Client) Close(ctx context.Context) error {
	return nil
}

func (c *Client) ListRelationTypes(ctx context.Context) ([]store.RelationTypeUsage, error) {
	counts := make(map[string]int)
	for _, edge := range c.edges {
		counts[edge.Type]++
	}

	usages := make([]store.RelationTypeUsage, 0, len(counts))
	for name, count := range counts {
		usages = append(usages, store.RelationTypeUsage{Name: name, Count: count})
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i].Name < usages[j].Name })
	return usages, nil
}

func (c *Client) ListRelationExamples(ctx context.Context, relType string, limit int) ([]store.RelationExample, error) {
	examples := []store.RelationExample{}
	for _, edge := range c.edges {
		if len(examples) >= limit {
			break
		}
		if edge.Type == relType {
			examples = append(examples, edge)
		}
	}
	return examples, nil
}

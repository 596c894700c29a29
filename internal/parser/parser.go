package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a content file: a chapter, concept or symbol page whose
// frontmatter declares how it relates to other entities.
type Document struct {
	Frontmatter map[string]any
	Title       string
	Relations   []Relation
	SourceFile  string
}

type Relation struct {
	Type   string
	Target string
}

var (
	ErrNoFrontmatter = errors.New("no frontmatter found")
	ErrInvalidYAML   = errors.New("invalid YAML in frontmatter")
	ErrMissingTitle  = errors.New("frontmatter missing required 'title' field")
)

func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.SourceFile = path
	return doc, nil
}

func Parse(content []byte) (*Document, error) {
	block, ok := splitFrontmatter(content)
	if !ok {
		return nil, ErrNoFrontmatter
	}

	var frontmatter map[string]any
	if err := yaml.Unmarshal(block, &frontmatter); err != nil {
		return nil, ErrInvalidYAML
	}

	title, ok := frontmatter["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	relations, err := parseRelations(frontmatter["relations"])
	if err != nil {
		return nil, err
	}

	return &Document{
		Frontmatter: frontmatter,
		Title:       title,
		Relations:   relations,
	}, nil
}

// splitFrontmatter returns the YAML between the opening and closing "---"
// lines. LF and CRLF line endings are accepted, and the closing marker may end
// the file.
func splitFrontmatter(content []byte) ([]byte, bool) {
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	first, rest, found := bytes.Cut(trimmed, []byte("\n"))
	if !found || !isMarker(first) {
		return nil, false
	}

	offset := 0
	for offset <= len(rest) {
		line := rest[offset:]
		next := len(rest)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if isMarker(line) {
			return rest[:offset], true
		}
		if next == len(rest) {
			break
		}
		offset = next
	}
	return nil, false
}

func isMarker(line []byte) bool {
	return string(bytes.TrimRight(line, "\r")) == "---"
}

// parseRelations accepts either a list of {type, target} maps or a map from
// relation type to one target or a list of targets.
func parseRelations(value any) ([]Relation, error) {
	if value == nil {
		return nil, nil
	}
	var relations []Relation
	switch v := value.(type) {
	case []any:
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("relation %d must be a mapping", i)
			}
			relType, _ := m["type"].(string)
			target, _ := m["target"].(string)
			if strings.TrimSpace(relType) == "" {
				return nil, fmt.Errorf("relation %d missing type", i)
			}
			relations = append(relations, Relation{Type: relType, Target: target})
		}
	case map[string]any:
		types := make([]string, 0, len(v))
		for relType := range v {
			types = append(types, relType)
		}
		sort.Strings(types)
		for _, relType := range types {
			targets, err := parseTargets(v[relType])
			if err != nil {
				return nil, fmt.Errorf("relation %s: %w", relType, err)
			}
			for _, target := range targets {
				relations = append(relations, Relation{Type: relType, Target: target})
			}
		}
	default:
		return nil, fmt.Errorf("relations must be a list or a mapping")
	}
	return relations, nil
}

func parseTargets(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		targets := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("targets must be strings")
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			targets = append(targets, s)
		}
		return targets, nil
	default:
		return nil, fmt.Errorf("targets must be string or list of strings")
	}
}

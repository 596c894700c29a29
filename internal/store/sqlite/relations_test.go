package sqlite

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"aionmotion/internal/store"
)

const contentDDL = `
CREATE TABLE entities (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	source_file TEXT
);
CREATE TABLE edges (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	src_id   INTEGER NOT NULL REFERENCES entities(id),
	dst_id   INTEGER NOT NULL REFERENCES entities(id),
	rel_type TEXT NOT NULL
);
INSERT INTO entities (id, name, source_file) VALUES
	(1, 'Ego', 'chapters/01-ego.md'),
	(2, 'Shadow', 'chapters/02-shadow.md'),
	(3, 'Self', NULL);
INSERT INTO edges (src_id, dst_id, rel_type) VALUES
	(1, 2, 'OPPOSES'),
	(2, 3, 'INTEGRATES_INTO'),
	(1, 3, 'INTEGRATES_INTO');
`

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	c, err := New(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	c.db.SetMaxOpenConns(1)
	t.Cleanup(func() { c.Close(ctx) })

	if _, err := c.db.ExecContext(ctx, contentDDL); err != nil {
		t.Fatalf("seeding content tables: %v", err)
	}
	return c
}

func TestListRelationTypes(t *testing.T) {
	c := newTestClient(t)

	usages, err := c.ListRelationTypes(context.Background())
	if err != nil {
		t.Fatalf("listing relation types: %v", err)
	}

	want := []store.RelationTypeUsage{
		{Name: "INTEGRATES_INTO", Count: 2},
		{Name: "OPPOSES", Count: 1},
	}
	if diff := cmp.Diff(want, usages); diff != "" {
		t.Fatalf("usages mismatch (-want +got):\n%s", diff)
	}
}

func TestListRelationExamples(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	t.Run("ordered and limited", func(t *testing.T) {
		examples, err := c.ListRelationExamples(ctx, "INTEGRATES_INTO", 1)
		if err != nil {
			t.Fatalf("listing examples: %v", err)
		}
		want := []store.RelationExample{
			{From: "Ego", To: "Self", Type: "INTEGRATES_INTO", SourceFile: "chapters/01-ego.md"},
		}
		if diff := cmp.Diff(want, examples); diff != "" {
			t.Fatalf("examples mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("all examples", func(t *testing.T) {
		examples, err := c.ListRelationExamples(ctx, "INTEGRATES_INTO", 5)
		if err != nil {
			t.Fatalf("listing examples: %v", err)
		}
		if len(examples) != 2 {
			t.Fatalf("expected 2 examples, got %d", len(examples))
		}
		if examples[1].SourceFile != "chapters/02-shadow.md" {
			t.Fatalf("unexpected source file %q", examples[1].SourceFile)
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		examples, err := c.ListRelationExamples(ctx, "OPPOSES", 0)
		if err != nil {
			t.Fatalf("listing examples: %v", err)
		}
		if len(examples) != 0 {
			t.Fatalf("expected no examples, got %d", len(examples))
		}
	})
}

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "memory", input: "sqlite://:memory:", expected: ":memory:"},
		{name: "absolute", input: "sqlite:///var/lib/aion/content.db", expected: "/var/lib/aion/content.db"},
		{name: "dot relative", input: "sqlite://./content.db", expected: "./content.db"},
		{name: "bare relative", input: "sqlite://content.db", expected: "./content.db"},
		{name: "escaped with query", input: "sqlite://my%20content.db?_pragma=foreign_keys(1)", expected: "./my content.db?_pragma=foreign_keys(1)"},
		{name: "wrong scheme", input: "postgres://localhost/aion", wantErr: true},
		{name: "empty path", input: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDSN(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/postprocessors/chunker"
)

// registryMockProcessor is a named no-op processor.
type registryMockProcessor struct {
	name string
}

func (m *registryMockProcessor) Name() string { return m.name }
func (m *registryMockProcessor) Process(_ context.Context, _ *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	return chunks, nil
}

func namedBuilder(name string) BuilderFunc {
	return func(_ map[string]any) (driven.PostProcessor, error) {
		return &registryMockProcessor{name: name}, nil
	}
}

func TestRegistry_Build(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", func(cfg map[string]any) (driven.PostProcessor, error) {
		name, _ := cfg["name"].(string)
		if name == "" {
			return nil, errors.New("name required")
		}
		return &registryMockProcessor{name: name}, nil
	})

	tests := []struct {
		name     string
		proc     string
		cfg      map[string]any
		wantName string
		wantErr  string
	}{
		{"config reaches builder", "echo", map[string]any{"name": "custom"}, "custom", ""},
		{"builder error is wrapped", "echo", nil, "", `processor "echo": name required`},
		{"unknown name", "missing", nil, "", `unknown processor: "missing" (known: [echo])`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, err := r.Build(tt.proc, tt.cfg)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if proc.Name() != tt.wantName {
				t.Errorf("name = %q, want %q", proc.Name(), tt.wantName)
			}
		})
	}
}

func TestRegistry_UnknownIsSentinel(t *testing.T) {
	_, err := NewRegistry().Build("nope", nil)
	if !errors.Is(err, ErrUnknownProcessor) {
		t.Errorf("expected ErrUnknownProcessor, got %v", err)
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register("chunker", namedBuilder("first"))
	r.Register("chunker", namedBuilder("second"))

	proc, err := r.Build("chunker", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if proc.Name() != "second" {
		t.Errorf("expected the later registration, got %q", proc.Name())
	}
}

func TestRegistry_HasAndNames(t *testing.T) {
	r := NewRegistry()
	if r.Has("alpha") || len(r.Names()) != 0 {
		t.Fatal("expected an empty registry")
	}

	r.Register("beta", namedBuilder("beta"))
	r.Register("alpha", namedBuilder("alpha"))

	if !r.Has("alpha") {
		t.Error("expected alpha to be registered")
	}
	names := r.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("expected sorted [alpha beta], got %v", names)
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	for _, name := range []string{"chunker", "keywords"} {
		if !r.Has(name) {
			t.Errorf("expected %q to be registered after RegisterDefaults", name)
		}
	}
}

func TestBuildChunker(t *testing.T) {
	tests := []struct {
		name        string
		cfg         map[string]any
		wantSize    int
		wantOverlap int
	}{
		{"explicit config", map[string]any{"chunk_size": 500, "overlap": 100}, 500, 100},
		{"toml int64", map[string]any{"chunk_size": int64(300), "overlap": int64(0)}, 300, 0},
		{"nil config", nil, chunker.DefaultChunkSize, chunker.DefaultChunkOverlap},
		{"size only", map[string]any{"chunk_size": 250}, 250, chunker.DefaultChunkOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, err := buildChunker(tt.cfg)
			if err != nil {
				t.Fatalf("buildChunker failed: %v", err)
			}
			c, ok := proc.(*chunker.Processor)
			if !ok {
				t.Fatalf("expected *chunker.Processor, got %T", proc)
			}
			if c.ChunkSize() != tt.wantSize {
				t.Errorf("chunk size = %d, want %d", c.ChunkSize(), tt.wantSize)
			}
			if c.Overlap() != tt.wantOverlap {
				t.Errorf("overlap = %d, want %d", c.Overlap(), tt.wantOverlap)
			}
		})
	}
}

func TestGetIntFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      map[string]any
		key      string
		expected int
		found    bool
	}{
		{"int value", map[string]any{"size": 100}, "size", 100, true},
		{"int64 value", map[string]any{"size": int64(200)}, "size", 200, true},
		{"float64 value", map[string]any{"size": float64(300)}, "size", 300, true},
		{"zero value", map[string]any{"size": 0}, "size", 0, true},
		{"string value", map[string]any{"size": "400"}, "size", 0, false},
		{"missing key", map[string]any{"other": 100}, "size", 0, false},
		{"nil config", nil, "size", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := getIntFromConfig(tt.cfg, tt.key)
			if result != tt.expected || ok != tt.found {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.expected, tt.found, result, ok)
			}
		})
	}
}

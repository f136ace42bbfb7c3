package openapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewProviderSelection(t *testing.T) {
	if _, ok := NewProvider("https://example.com/openapi.yaml").(*HTTPProvider); !ok {
		t.Error("expected url source to select the http provider")
	}
	if _, ok := NewProvider("./openapi.yaml").(*FileProvider); !ok {
		t.Error("expected file source to select the file provider")
	}
}

func TestFileProviderFetch(t *testing.T) {
	specFile := filepath.Join(t.TempDir(), "spec.yaml")
	content := []byte("paths: {}\n")
	if err := os.WriteFile(specFile, content, 0644); err != nil {
		t.Fatal(err)
	}

	provider := &FileProvider{}
	data, err := provider.Fetch(context.Background(), specFile)
	if err != nil {
		t.Fatalf("unexpected fetch error: %s", err)
	}
	if string(data) != string(content) {
		t.Errorf("fetched %q, expected %q", data, content)
	}

	if _, err := provider.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected fetch error for missing file")
	}
}

type countingProvider struct {
	fetches int
	data    []byte
}

func (p *countingProvider) Fetch(_ context.Context, _ string) ([]byte, error) {
	p.fetches++
	return p.data, nil
}

func TestCachedProvider(t *testing.T) {
	inner := &countingProvider{data: []byte("paths: {}")}
	cached, err := NewCachedProvider(inner, 8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		data, err := cached.Fetch(context.Background(), "spec.yaml")
		if err != nil {
			t.Fatalf("unexpected fetch error: %s", err)
		}
		if string(data) != "paths: {}" {
			t.Errorf("unexpected data %q", data)
		}
	}
	if inner.fetches != 1 {
		t.Errorf("expected a single upstream fetch, got %d", inner.fetches)
	}
}

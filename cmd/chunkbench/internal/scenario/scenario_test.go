package scenario

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-drift/streams/pkg/streams"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing scenario: %v", err)
	}
	return path
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	sc, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	resolved, err := sc.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if resolved.ChunkSize != streams.DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", resolved.ChunkSize, streams.DefaultChunkSize)
	}
	if len(resolved.Batches) != defaultBatchCount {
		t.Errorf("got %d batches, want %d", len(resolved.Batches), defaultBatchCount)
	}
	for _, n := range resolved.Batches {
		if n != defaultBatchLen {
			t.Errorf("batch length = %d, want %d", n, defaultBatchLen)
			break
		}
	}
}

func TestLoad_ExplicitBatches(t *testing.T) {
	path := writeScenario(t, `
chunk:
  size: 16
batches: [3, 0, 7]
`)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	resolved, err := sc.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if resolved.ChunkSize != 16 {
		t.Errorf("ChunkSize = %d, want 16", resolved.ChunkSize)
	}
	if want := []int{3, 0, 7}; !reflect.DeepEqual(resolved.Batches, want) {
		t.Errorf("Batches = %v, want %v", resolved.Batches, want)
	}
}

func TestLoad_GenerateConfig(t *testing.T) {
	path := writeScenario(t, `
generate:
  batchCount: 3
  batchLen: 5
`)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	resolved, err := sc.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if want := []int{5, 5, 5}; !reflect.DeepEqual(resolved.Batches, want) {
		t.Errorf("Batches = %v, want %v", resolved.Batches, want)
	}
}

func TestResolve_MinVersionSatisfied(t *testing.T) {
	sc := &Scenario{Streams: StreamsConfig{MinVersion: "v0.1.0"}}
	if _, err := sc.Resolve(); err != nil {
		t.Errorf("Resolve failed for an old enough minVersion: %v", err)
	}
}

func TestResolve_MinVersionTooNew(t *testing.T) {
	sc := &Scenario{Streams: StreamsConfig{MinVersion: "v99.0.0"}}
	_, err := sc.Resolve()
	if err == nil {
		t.Fatal("Resolve should fail when the scenario needs a newer library")
	}
	if !strings.Contains(err.Error(), "v99.0.0") {
		t.Errorf("error %q should name the required version", err)
	}
}

func TestResolve_InvalidMinVersion(t *testing.T) {
	sc := &Scenario{Streams: StreamsConfig{MinVersion: "0.1"}}
	if _, err := sc.Resolve(); err == nil {
		t.Error("Resolve should reject a non-semver minVersion")
	}
}

func TestResolve_NegativeBatchLength(t *testing.T) {
	sc := &Scenario{Batches: []int{1, -2}}
	if _, err := sc.Resolve(); err == nil {
		t.Error("Resolve should reject negative batch lengths")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeScenario(t, "batches: [not-a-number")
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed YAML")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load should fail when the file does not exist")
	}
}

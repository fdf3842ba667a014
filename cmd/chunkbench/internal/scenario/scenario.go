// Package scenario loads the optional chunkbench scenario file.
package scenario

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/streams/pkg/streams"
)

// Scenario represents a chunkbench scenario file.
type Scenario struct {
	Streams  StreamsConfig  `yaml:"streams"`
	Chunk    ChunkConfig    `yaml:"chunk"`
	Batches  []int          `yaml:"batches,omitempty"`
	Generate GenerateConfig `yaml:"generate"`
}

// StreamsConfig contains library compatibility settings.
type StreamsConfig struct {
	// MinVersion is the minimum streams library version the scenario
	// was written for (e.g. "v0.3.0").
	MinVersion string `yaml:"minVersion,omitempty"`
}

// ChunkConfig contains splitter settings.
type ChunkConfig struct {
	Size int `yaml:"size,omitempty"`
}

// GenerateConfig describes synthetic batches, used when no explicit batch
// lengths are listed.
type GenerateConfig struct {
	BatchCount int `yaml:"batchCount,omitempty"`
	BatchLen   int `yaml:"batchLen,omitempty"`
}

// Resolved contains resolved scenario values.
type Resolved struct {
	// ChunkSize is the maximum chunk length.
	ChunkSize int
	// Batches holds the length of each source batch, in order.
	Batches []int
}

const (
	defaultBatchCount = 64
	defaultBatchLen   = 10000
)

// Load reads a scenario file. An empty path yields an empty scenario, so
// every setting falls back to its default during Resolve.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return &Scenario{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	return &s, nil
}

// Resolve validates the scenario and fills in defaults.
func (s *Scenario) Resolve() (*Resolved, error) {
	if min := s.Streams.MinVersion; min != "" {
		if !semver.IsValid(min) {
			return nil, fmt.Errorf("invalid streams.minVersion %q", min)
		}
		if semver.Compare(streams.Version, min) < 0 {
			return nil, fmt.Errorf("scenario requires streams %s or newer, have %s", min, streams.Version)
		}
	}

	size := s.Chunk.Size
	if size == 0 {
		size = streams.DefaultChunkSize
	}

	batches := s.Batches
	if len(batches) == 0 {
		count := s.Generate.BatchCount
		if count == 0 {
			count = defaultBatchCount
		}
		length := s.Generate.BatchLen
		if length == 0 {
			length = defaultBatchLen
		}
		if count < 0 || length < 0 {
			return nil, fmt.Errorf("generate counts must not be negative, got batchCount=%d batchLen=%d", count, length)
		}
		batches = make([]int, count)
		for i := range batches {
			batches[i] = length
		}
	}
	for i, n := range batches {
		if n < 0 {
			return nil, fmt.Errorf("batch %d has negative length %d", i, n)
		}
	}

	return &Resolved{
		ChunkSize: size,
		Batches:   batches,
	}, nil
}

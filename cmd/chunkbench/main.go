// Command chunkbench runs the chunk-splitting pipeline over a synthetic
// batch stream and reports what came out the other end.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/streams/cmd/chunkbench/internal/scenario"
	"github.com/go-drift/streams/pkg/streams"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "path to a scenario YAML file (optional)")
	)
	flag.Parse()

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		os.Exit(1)
	}
	resolved, err := sc.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving scenario: %v\n", err)
		os.Exit(1)
	}

	batches := buildBatches(resolved.Batches)

	chunked, err := streams.Chunked[int](streams.FromSlice(batches), resolved.ChunkSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building splitter: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	var firstChunkAt time.Time
	tapped := streams.OnFirst(chunked, func(first []int) error {
		firstChunkAt = time.Now()
		return nil
	})

	var (
		chunkCount int
		elemCount  int
		smallest   = -1
		largest    int
	)
	sub := tapped.Listen(streams.Handler[[]int]{
		OnData: func(chunk []int) {
			chunkCount++
			elemCount += len(chunk)
			if smallest < 0 || len(chunk) < smallest {
				smallest = len(chunk)
			}
			if len(chunk) > largest {
				largest = len(chunk)
			}
		},
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "Stream error: %v\n", err)
			os.Exit(1)
		},
	})
	defer sub.Cancel()
	elapsed := time.Since(start)

	fmt.Printf("Chunk size:      %d\n", resolved.ChunkSize)
	fmt.Printf("Source batches:  %d\n", len(batches))
	fmt.Printf("Chunks emitted:  %d\n", chunkCount)
	fmt.Printf("Elements:        %d\n", elemCount)
	if chunkCount > 0 {
		fmt.Printf("Smallest chunk:  %d\n", smallest)
		fmt.Printf("Largest chunk:   %d\n", largest)
		fmt.Printf("First chunk at:  %v\n", firstChunkAt.Sub(start))
	}
	fmt.Printf("Elapsed:         %v\n", elapsed)
}

// buildBatches materializes batches with the given lengths, numbering the
// elements globally so chunk output stays recognizable when debugging.
func buildBatches(lengths []int) [][]int {
	batches := make([][]int, len(lengths))
	next := 0
	for i, n := range lengths {
		batch := make([]int, n)
		for j := range batch {
			batch[j] = next
			next++
		}
		batches[i] = batch
	}
	return batches
}

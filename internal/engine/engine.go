// Package engine orchestrates cipher execution. Algorithms whose output is
// chunk-independent are partitioned across a small fixed pool of workers
// and reassembled in chunk order; every other algorithm runs as a single
// synchronous call on the caller's goroutine.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/textcipher/internal/cipher"
	"github.com/vk/textcipher/internal/ctxlog"
)

// DefaultWorkers is the fixed chunk count used when no worker count is
// configured. It is deliberately independent of input size: chunk cost is
// linear in length, so a constant fan-out keeps reassembly simple without
// hurting balance.
const DefaultWorkers = 4

// defaultWaitTimeout bounds each wait on a pending chunk. Elapsing the
// timeout only emits a progress notification; the engine re-arms the wait
// and never abandons a chunk.
const defaultWaitTimeout = 10 * time.Second

// Chunk is a contiguous substring of the input, identified by its start
// offset and length. The engine's chunks partition the input with no gaps
// and no overlaps; the final chunk absorbs the division remainder.
type Chunk struct {
	Start int
	Len   int
}

// Partition splits [0, n) into exactly `workers` contiguous chunks. All
// chunks share the base length n/workers except the last, which also
// takes the n%workers remainder.
func Partition(n, workers int) []Chunk {
	base := n / workers
	chunks := make([]Chunk, workers)
	for i := range chunks {
		chunks[i] = Chunk{Start: i * base, Len: base}
	}
	chunks[workers-1].Len += n % workers
	return chunks
}

// outcome is the resolved result of one chunk: its transformed text or
// the fault that ended it.
type outcome struct {
	text string
	err  error
}

// Engine runs ciphers over input text, concurrently where the algorithm
// permits. The zero value is not usable; construct with New.
type Engine struct {
	workers     int
	waitTimeout time.Duration
}

// New returns an Engine with the given worker count. A non-positive count
// selects DefaultWorkers.
func New(workers int) *Engine {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Engine{workers: workers, waitTimeout: defaultWaitTimeout}
}

// Run transforms text with the given cipher instance. When alg is
// concurrency-eligible the text is partitioned and dispatched to workers;
// otherwise the cipher is invoked once on the whole text. The returned
// text is always assembled in chunk order, never completion order.
//
// A fault inside any chunk fails the whole run; there is no partial
// output. A stalled chunk is waited on indefinitely, with a progress
// notification logged each time the bounded wait elapses.
func (e *Engine) Run(ctx context.Context, c cipher.Cipher, text string, mode cipher.Mode, alg cipher.Algorithm) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if !alg.Concurrent() {
		logger.Debug("Algorithm not eligible for concurrent execution, running synchronously.", "algorithm", alg)
		return c.Apply(text, mode), nil
	}

	chunks := Partition(len(text), e.workers)
	logger.Debug("Input partitioned.", "length", len(text), "chunks", len(chunks))

	outcomes := make([]chan outcome, len(chunks))
	for i, ck := range chunks {
		outcomes[i] = make(chan outcome, 1)
		go e.worker(c, text, mode, ck, outcomes[i])
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := range outcomes {
		out := e.collect(logger.With("chunk", i), outcomes[i])
		if out.err != nil {
			return "", fmt.Errorf("chunk %d failed: %w", i, out.err)
		}
		sb.WriteString(out.text)
	}
	logger.Debug("All chunks collected.")
	return sb.String(), nil
}

// worker executes a single chunk and resolves its outcome channel exactly
// once. A panic in the cipher is recovered into the chunk's fault.
func (e *Engine) worker(c cipher.Cipher, text string, mode cipher.Mode, ck Chunk, out chan<- outcome) {
	defer func() {
		if r := recover(); r != nil {
			out <- outcome{err: fmt.Errorf("worker panic: %v", r)}
		}
	}()
	out <- outcome{text: c.Apply(text[ck.Start:ck.Start+ck.Len], mode)}
}

// collect blocks until the chunk's outcome resolves, logging a liveness
// notification each time the bounded wait elapses. It never cancels the
// chunk: a wedged worker stalls the run rather than corrupting the output.
func (e *Engine) collect(logger *slog.Logger, out <-chan outcome) outcome {
	timer := time.NewTimer(e.waitTimeout)
	defer timer.Stop()
	for {
		select {
		case o := <-out:
			return o
		case <-timer.C:
			logger.Info("Still waiting for chunk to complete...")
			timer.Reset(e.waitTimeout)
		}
	}
}

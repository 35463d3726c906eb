// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When the stream
	// is finished err is io.EOF, possibly together with a final n > 0.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Generator builds one cycle of n samples in [-1, 1].
type Generator func(n int) ([]float64, error)

// Registry of cycle generators by shape name (e.g., "triangle", "sine").
type Registry struct {
	shapes map[string]Generator

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		shapes: make(map[string]Generator),
		mtx:    &sync.Mutex{},
	}
}

// DefaultShapes returns a registry holding every built-in shape.
func DefaultShapes() *Registry {
	r := NewRegistry()
	r.Register(ShapeTriangle, Triangle)
	r.Register(ShapeSine, Sine)
	r.Register(ShapeSaw, Saw)

	return r
}

func (r *Registry) Register(name string, g Generator) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.shapes[name] = g
}

func (r *Registry) Get(name string) (Generator, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	g, ok := r.shapes[name]
	return g, ok
}

// Names lists the registered shapes in lexical order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.shapes))
}

// Generate looks up name and builds a cycle of n samples with it.
func (r *Registry) Generate(name string, n int) ([]float64, error) {
	g, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}

	return g(n)
}

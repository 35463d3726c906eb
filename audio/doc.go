// SPDX-License-Identifier: EPL-2.0

// Package audio provides the waveform building blocks of the wavetable tools.
//
// This package contains:
//   - Source interface for streaming interleaved float32 samples
//   - Cycle generators (Triangle, Sine, Saw) and a shape Registry
//   - CycleSource to stream one generated cycle into an encoder
//   - ResizeCycle for periodic cubic resizing of a cycle
//   - Oscillator for phase-accumulator playback of a fixed-point table
//   - MonoMixer for folding multi-channel streams
//
// # Cycles
//
// Every generator returns exactly n samples in [-1, 1] forming one period
// that begins at zero amplitude, so the cycle can be tiled without a step:
//
//	cycle, err := audio.Triangle(2048)
//
// Generators are looked up by name through a Registry:
//
//	shapes := audio.DefaultShapes()
//	cycle, err := shapes.Generate("triangle", 2048)
//
// # Streaming
//
// A cycle becomes a Source with NewCycleSource, which repeats each sample on
// every channel of its frame:
//
//	src, err := audio.NewCycleSource(cycle, 48000, 2)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// ReadSamples returns io.EOF once the cycle is exhausted, possibly together
// with the last samples.
//
// # Playback
//
// Oscillator steps through a quantized table at a given pitch:
//
//	osc, err := audio.NewOscillator(audio.OscillatorConfig{
//	    Table:      values,
//	    Channels:   1,
//	    FullScale:  16384,
//	    SampleRate: 48000,
//	    Frequency:  440,
//	    Frames:     48000,
//	})
package audio

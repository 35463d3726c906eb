// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ik5/wavetable/audio"
	"github.com/ik5/wavetable/formats/wav"
	"github.com/ik5/wavetable/table"
)

const (
	DefaultPreviewFrequency = 440.0
	DefaultPreviewDuration  = time.Second
)

// PreviewParams controls an audible rendering of a table. Zero fields take
// the defaults.
type PreviewParams struct {
	Frequency  float64
	Duration   time.Duration
	SampleRate int
	// Mono averages the table's channels into one.
	Mono bool
}

// Preview plays tbl through a phase-accumulator oscillator, the way the
// synthesizer firmware reads its lookup table, and writes the result to w as
// 16-bit PCM. It returns the number of frames written.
func Preview(w io.WriteSeeker, tbl *table.Table, p PreviewParams) (frames int, err error) {
	if tbl == nil || tbl.Len() == 0 {
		return 0, table.ErrEmptyInput
	}
	if p.Frequency == 0 {
		p.Frequency = DefaultPreviewFrequency
	}
	if p.Duration == 0 {
		p.Duration = DefaultPreviewDuration
	}
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Duration < 0 {
		return 0, fmt.Errorf("preview duration %s: %w", p.Duration, audio.ErrInvalidSampleCount)
	}

	osc, err := audio.NewOscillator(audio.OscillatorConfig{
		Table:      tbl.Values,
		Channels:   tbl.Channels,
		FullScale:  table.FullScale,
		SampleRate: p.SampleRate,
		Frequency:  p.Frequency,
		Frames:     previewFrames(p.Duration, p.SampleRate),
	})
	if err != nil {
		return 0, err
	}

	var src audio.Source = osc
	if p.Mono && tbl.Channels > 1 {
		src = audio.NewMonoMixer(osc)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return wav.Encode(w, src, 2)
}

// previewFrames converts d to frames at rate. Whole seconds and the
// sub-second remainder are scaled separately so the product cannot overflow.
func previewFrames(d time.Duration, rate int) int {
	secs, rem := int64(d/time.Second), int64(d%time.Second)

	return int(secs*int64(rate) + rem*int64(rate)/int64(time.Second))
}

// PreviewFile is Preview into a newly created file at path.
func PreviewFile(path string, tbl *table.Table, p PreviewParams) (frames int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()

	return Preview(f, tbl, p)
}

// SPDX-License-Identifier: EPL-2.0

// Package wavetable turns a single waveform cycle into a fixed-point lookup
// table for synthesizer firmware.
//
// The work happens in two independent steps that share only a WAV file.
//
// # Synthesis
//
// Synthesize generates one cycle of a named shape and stores it:
//
//	cycle, err := wavetable.SynthesizeFile("triangle.wav", wavetable.Params{
//	    Shape:      "triangle",
//	    Samples:    2048,
//	    SampleRate: 48000,
//	})
//
// The triangle is rotated a quarter cycle so it starts at a zero crossing
// and loops without a click. Four-byte samples are stored as IEEE float.
//
// # Export
//
// Export reads the file back, divides by the peak amplitude, scales to 16384
// and clips to [-16383, 16384]:
//
//	tbl, err := wavetable.ExportFile("triangle.wav")
//	if errors.Is(err, table.ErrSilentInput) {
//	    // the file holds only zeros
//	}
//	fmt.Println(tbl) // 0, -32, -64, ...
//
// WithLength resizes the cycle first when the firmware table has a
// different length than the file.
//
// Tables render through table.List or table.CArray.
//
// # Preview
//
// Preview plays a table through a 32-bit phase accumulator oscillator, the
// same lookup the firmware performs, and writes an audible 16-bit WAV:
//
//	_, err := wavetable.PreviewFile("preview.wav", tbl, wavetable.PreviewParams{
//	    Frequency: 440,
//	    Duration:  2 * time.Second,
//	})
//
// See the subpackages for the building blocks: audio (shapes, sources,
// oscillator), formats/wav (container codec) and table (normalization and
// rendering).
package wavetable

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/ik5/wavetable"
	"github.com/ik5/wavetable/audio"
	"github.com/ik5/wavetable/table"
)

var errUnknownFormat = errors.New("unknown export format")

func generateCommand() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "write one waveform cycle to a WAV file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "shape",
				Value:  wavetable.DefaultShape,
				Usage:  "Waveform shape (" + strings.Join(audio.DefaultShapes().Names(), ", ") + ")",
				EnvVar: "WAVETABLE_SHAPE",
			},
			cli.IntFlag{
				Name:   "samples",
				Value:  wavetable.DefaultSamples,
				Usage:  "Samples in the cycle",
				EnvVar: "WAVETABLE_SAMPLES",
			},
			cli.IntFlag{
				Name:   "rate",
				Value:  wavetable.DefaultSampleRate,
				Usage:  "Sample rate in Hz",
				EnvVar: "WAVETABLE_RATE",
			},
			cli.IntFlag{
				Name:   "channels",
				Value:  wavetable.DefaultChannels,
				Usage:  "Channel count",
				EnvVar: "WAVETABLE_CHANNELS",
			},
			cli.IntFlag{
				Name:   "width",
				Value:  wavetable.DefaultSampleWidth,
				Usage:  "Bytes per sample: 2 or 3 for PCM, 4 for float",
				EnvVar: "WAVETABLE_WIDTH",
			},
			cli.StringFlag{
				Name:   "out",
				Value:  "wavetable.wav",
				Usage:  "Destination WAV file",
				EnvVar: "WAVETABLE_FILE",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	p := wavetable.Params{
		Shape:       c.String("shape"),
		Samples:     c.Int("samples"),
		SampleRate:  c.Int("rate"),
		Channels:    c.Int("channels"),
		SampleWidth: c.Int("width"),
	}
	if p.Shape == audio.ShapeTriangle && p.Samples%4 != 0 {
		slog.Warn("triangle cycle length is not a multiple of 4, the first sample will not be exactly zero",
			"samples", p.Samples)
	}

	path := c.String("out")
	if _, err := wavetable.SynthesizeFile(path, p); err != nil {
		return err
	}

	slog.Info("wrote cycle",
		"path", path,
		"shape", p.Shape,
		"samples", p.Samples,
		"rate", p.SampleRate,
		"channels", p.Channels,
		"width", p.SampleWidth)

	return nil
}

func exportCommand() cli.Command {
	return cli.Command{
		Name:  "export",
		Usage: "print a WAV cycle as a normalized int16 table",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "in",
				Value:  "wavetable.wav",
				Usage:  "Source WAV file",
				EnvVar: "WAVETABLE_FILE",
			},
			cli.StringFlag{
				Name:   "format",
				Value:  "list",
				Usage:  "Output format: list, compact or c",
				EnvVar: "WAVETABLE_FORMAT",
			},
			cli.StringFlag{
				Name:  "name",
				Value: "wavetable",
				Usage: "Array name for the c format",
			},
			cli.IntFlag{
				Name:  "per-line",
				Value: 16,
				Usage: "Values per line for the c format",
			},
			cli.IntFlag{
				Name:  "length",
				Usage: "Resize the cycle to this many frames (0 keeps the file length)",
			},
			cli.StringFlag{
				Name:  "out",
				Usage: "Write the table to this file instead of stdout",
			},
		},
		Action: runExport,
	}
}

func renderer(c *cli.Context) (table.Renderer, error) {
	switch format := c.String("format"); format {
	case "list":
		return table.List{Separator: ", "}, nil
	case "compact":
		return table.List{Separator: ","}, nil
	case "c":
		return table.CArray{Name: c.String("name"), PerLine: c.Int("per-line")}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func runExport(c *cli.Context) (err error) {
	r, err := renderer(c)
	if err != nil {
		return err
	}

	var opts []wavetable.ExportOption
	if n := c.Int("length"); n != 0 {
		opts = append(opts, wavetable.WithLength(n))
	}

	in := c.String("in")
	tbl, err := wavetable.ExportFile(in, opts...)
	if err != nil {
		return err
	}

	var w io.Writer = c.App.Writer
	if out := c.String("out"); out != "" {
		f, ferr := os.Create(out)
		if ferr != nil {
			return fmt.Errorf("creating %s: %w", out, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("closing %s: %w", out, cerr))
			}
		}()
		w = f
	}

	if err := r.Render(w, tbl); err != nil {
		return err
	}

	slog.Info("exported table",
		"path", in,
		"element_count", tbl.Len(),
		"frames", tbl.Frames,
		"channels", tbl.Channels)

	return nil
}

func previewCommand() cli.Command {
	return cli.Command{
		Name:  "preview",
		Usage: "render an exported table through the firmware oscillator to an audible WAV",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "in",
				Value:  "wavetable.wav",
				Usage:  "Source WAV cycle",
				EnvVar: "WAVETABLE_FILE",
			},
			cli.Float64Flag{
				Name:  "freq",
				Value: wavetable.DefaultPreviewFrequency,
				Usage: "Playback frequency in Hz",
			},
			cli.DurationFlag{
				Name:  "duration",
				Value: wavetable.DefaultPreviewDuration,
				Usage: "Length of the preview",
			},
			cli.IntFlag{
				Name:   "rate",
				Value:  wavetable.DefaultSampleRate,
				Usage:  "Output sample rate in Hz",
				EnvVar: "WAVETABLE_RATE",
			},
			cli.BoolFlag{
				Name:  "mono",
				Usage: "Mix multi-channel tables down to one channel",
			},
			cli.StringFlag{
				Name:  "out",
				Value: "preview.wav",
				Usage: "Destination WAV file",
			},
		},
		Action: runPreview,
	}
}

func runPreview(c *cli.Context) error {
	tbl, err := wavetable.ExportFile(c.String("in"))
	if err != nil {
		return err
	}

	p := wavetable.PreviewParams{
		Frequency:  c.Float64("freq"),
		Duration:   c.Duration("duration"),
		SampleRate: c.Int("rate"),
		Mono:       c.Bool("mono"),
	}
	slog.Debug("preview table", "frames", tbl.Frames, "channels", tbl.Channels)

	out := c.String("out")
	frames, err := wavetable.PreviewFile(out, tbl, p)
	if err != nil {
		return err
	}

	slog.Info("wrote preview", "path", out, "frames", frames, "freq", p.Frequency)

	return nil
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		slog.Error("wavetable failed", "error", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "wavetable"
	app.Usage = "synthesize a waveform cycle and export it as a firmware lookup table"
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "Load defaults for WAVETABLE_* variables from this file when it exists",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug details to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

		return loadEnv(c.String("env-file"), c.IsSet("env-file"))
	}
	app.Commands = []cli.Command{
		generateCommand(),
		exportCommand(),
		previewCommand(),
	}

	return app
}

// loadEnv reads path into the environment without overriding variables that
// are already set. A missing default file is not an error.
func loadEnv(path string, explicit bool) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		slog.Debug("loaded env file", "path", path)
		return nil
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return nil
	default:
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
}

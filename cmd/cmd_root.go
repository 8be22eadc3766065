// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/carpullers/config"
	"github.com/jcodagnone/carpullers/pullers"
	"github.com/jcodagnone/carpullers/utils"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "carpullers [file]",
	Short: "Convert car puller trips to GeoJSON points",
	Long: `
carpullers reads a document of car puller trips, {"data": [{"origin": [lng, lat],
"destination": [lng, lat]}, ...]}, and prints every trip as a pair of GeoJSON
Point geometries, one JSON object per line, in input order.

The input defaults to car-pullers.json in the working directory. It can be
changed with the file argument, --input, CARPULLERS_INPUT or the input key of
carpullers.yaml. Use - to read standard input.

$ carpullers
{"origin":{"type":"Point","coordinates":[-122.4,37.7]},"destination":{"type":"Point","coordinates":[-73.9,40.7]}}
`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(cmd, args, nil)
	},
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// convert runs the converter configured from flags, environment and config
// file. A positional file argument overrides every other input setting.
func convert(cmd *cobra.Command, args []string, route *pullers.Route) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if cfg.Input == pullers.StdinPath && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "Reading from stdin. Paste the document and press Ctrl+D to finish.")
	}

	c := pullers.NewConverter(&pullers.Options{
		InputPath: cfg.Input,
		Progress:  cfg.Progress && !isatty.IsTerminal(os.Stdout.Fd()),
		Route:     route,
	}, cmd.OutOrStdout())
	c.SetInput(cmd.InOrStdin())

	if err := c.Run(); err != nil {
		return err
	}

	if cfg.Verbose {
		if route != nil {
			log.Printf("Converted %s from %s, %s skipped as going the other way",
				utils.Count(c.Metrics.Emitted, "trip"),
				cfg.Input,
				utils.Count(c.Metrics.Skipped, "trip"))
		} else {
			log.Printf("Converted %s from %s", utils.Count(c.Metrics.Emitted, "trip"), cfg.Input)
		}
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP(
		"input",
		"i",
		config.DefaultInput,
		"Document to convert, - for standard input",
	)
	rootCmd.PersistentFlags().BoolP(
		"verbose",
		"v",
		false,
		"Log a summary on stderr",
	)
	rootCmd.PersistentFlags().Bool(
		"progress",
		true,
		"Show a progress bar on stderr when it is a terminal and stdout is not",
	)
}

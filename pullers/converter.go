// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package pullers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

const (
	// DefaultInputPath is the document read when no input is configured.
	DefaultInputPath = "car-pullers.json"

	// StdinPath selects standard input as the document source.
	StdinPath = "-"
)

// Options configures a Converter.
type Options struct {
	InputPath string
	// Progress allows a progress bar on stderr when stderr is a terminal.
	Progress bool
	// Route, when set, drops the trips that do not follow it.
	Route *Route
}

// Metrics counts what a run did.
type Metrics struct {
	Records int // entries in the data array
	Read    int // trips decoded so far
	Emitted int
	Skipped int // dropped by the route filter
}

// Converter turns a car pullers document into GeoJSON lines.
type Converter struct {
	options *Options
	out     io.Writer
	stdin   io.Reader
	Metrics Metrics
}

// NewConverter creates a converter writing one JSON object per line to out.
func NewConverter(options *Options, out io.Writer) *Converter {
	return &Converter{
		options: options,
		out:     out,
		stdin:   os.Stdin,
	}
}

// SetInput replaces the reader used when the input path is StdinPath.
func (c *Converter) SetInput(r io.Reader) {
	c.stdin = r
}

func (c *Converter) inputPath() string {
	if c.options.InputPath == "" {
		return DefaultInputPath
	}

	return c.options.InputPath
}

func (c *Converter) load() (*Document, error) {
	path := c.inputPath()
	if path == StdinPath {
		return Load(c.stdin, "stdin")
	}

	return LoadFile(path)
}

// Run converts the configured input. Trips are written in input order as soon
// as they are transformed; lines written before a failing record are kept.
func (c *Converter) Run() (err error) {
	doc, err := c.load()
	if err != nil {
		return err
	}

	c.Metrics.Records = doc.Len()

	w := bufio.NewWriter(c.out)

	defer func() {
		if ferr := w.Flush(); ferr != nil {
			err = errors.Join(err, fmt.Errorf("flushing output: %w", ferr))
		}
	}()

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	var bar *progressbar.ProgressBar
	if c.options.Progress && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(doc.Len(),
			progressbar.OptionSetDescription("Converting "+doc.Name()),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	trips := c.track(doc.Trips(), bar)
	if c.options.Route != nil {
		trips = c.options.Route.Filter(trips)
	}

	for trip, err := range trips {
		if err != nil {
			return fmt.Errorf("converting %s: %w", doc.Name(), err)
		}

		if err := enc.Encode(trip); err != nil {
			return fmt.Errorf("writing trip: %w", err)
		}

		c.Metrics.Emitted++
	}

	c.Metrics.Skipped = c.Metrics.Read - c.Metrics.Emitted

	return nil
}

// track counts the trips read and advances the progress bar, if any.
func (c *Converter) track(trips iter.Seq2[Trip, error], bar *progressbar.ProgressBar) iter.Seq2[Trip, error] {
	return func(yield func(Trip, error) bool) {
		for trip, err := range trips {
			if err == nil {
				c.Metrics.Read++

				if bar != nil {
					if berr := bar.Add(1); berr != nil {
						yield(Trip{}, fmt.Errorf("updating progress bar: %w", berr))

						return
					}
				}
			}

			if !yield(trip, err) {
				return
			}
		}
	}
}

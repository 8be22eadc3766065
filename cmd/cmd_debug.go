// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcodagnone/carpullers/config"
	"github.com/jcodagnone/carpullers/pullers"
	"github.com/jcodagnone/carpullers/spatial"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

var debugCellsResolution int

var debugCellsCmd = &cobra.Command{
	Use:   "cells [file]",
	Short: "Print the H3 cells of every trip",
	Long: `Reads the input document and prints, for every trip, its position in the data
array followed by the H3 cells of its origin and destination, tab separated.

$ carpullers debug cells --resolution 8 car-pullers.json`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		if len(args) > 0 {
			cfg.Input = args[0]
		}

		var doc *pullers.Document
		if cfg.Input == pullers.StdinPath {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				fmt.Fprintln(os.Stderr, "Reading from stdin. Paste the document and press Ctrl+D to finish.")
			}

			doc, err = pullers.Load(cmd.InOrStdin(), "stdin")
		} else {
			doc, err = pullers.LoadFile(cfg.Input)
		}

		if err != nil {
			return err
		}

		return writeCells(cmd.OutOrStdout(), doc, debugCellsResolution)
	},
}

// writeCells prints one "index<TAB>origin cell<TAB>destination cell" line per
// trip.
func writeCells(out io.Writer, doc *pullers.Document, res int) (err error) {
	w := bufio.NewWriter(out)

	defer func() {
		if ferr := w.Flush(); ferr != nil {
			err = errors.Join(err, fmt.Errorf("flushing output: %w", ferr))
		}
	}()

	i := 0

	for trip, err := range doc.Trips() {
		if err != nil {
			return err
		}

		origin, err := cell(trip.Origin, res)
		if err != nil {
			return fmt.Errorf("record %d: origin: %w", i, err)
		}

		destination, err := cell(trip.Destination, res)
		if err != nil {
			return fmt.Errorf("record %d: destination: %w", i, err)
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, origin, destination); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}

		i++
	}

	return nil
}

func cell(g spatial.Geometry, res int) (string, error) {
	p, err := g.Point()
	if err != nil {
		return "", err
	}

	c, err := p.Cell(res)
	if err != nil {
		return "", err
	}

	return c.String(), nil
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugCellsCmd)
	debugCellsCmd.Flags().IntVar(
		&debugCellsResolution,
		"resolution",
		8,
		"H3 resolution, 0 to 15",
	)
}

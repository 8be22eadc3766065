// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/jcodagnone/carpullers/pullers"
	"github.com/jcodagnone/carpullers/spatial"
	"github.com/spf13/cobra"
)

var filterOptions struct {
	origin      string
	destination string
}

var filterCmd = &cobra.Command{
	Use:   "filter [file]",
	Short: "Convert only the trips going the same way as a driver",
	Long: `Like the root command, but prints only the car pullers whose trip follows
the driver route: the puller destination is not farther from the driver
destination than the puller origin is, or the puller origin is not farther from
the driver origin than the puller destination is. Distances are compared in
whole kilometers.

Points are given as lng,lat.

$ carpullers filter --driver-origin 44.8006397,41.7094968 --driver-destination 44.73565,41.7272321`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, err := spatial.ParsePoint(filterOptions.origin)
		if err != nil {
			return fmt.Errorf("parsing --driver-origin: %w", err)
		}

		destination, err := spatial.ParsePoint(filterOptions.destination)
		if err != nil {
			return fmt.Errorf("parsing --driver-destination: %w", err)
		}

		return convert(cmd, args, &pullers.Route{
			Origin:      origin,
			Destination: destination,
		})
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().StringVar(
		&filterOptions.origin,
		"driver-origin",
		"",
		"Where the driver starts, as lng,lat",
	)
	filterCmd.Flags().StringVar(
		&filterOptions.destination,
		"driver-destination",
		"",
		"Where the driver goes, as lng,lat",
	)
	_ = filterCmd.MarkFlagRequired("driver-origin")
	_ = filterCmd.MarkFlagRequired("driver-destination")
}

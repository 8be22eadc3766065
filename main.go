// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/carpullers/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}

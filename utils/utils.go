// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatInt formats an integer with commas for human readability.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// Count renders n followed by noun, pluralized with a trailing "s".
func Count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return FormatInt(int64(n)) + " " + noun + "s"
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/relcheck/relcheck/internal/config"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(resolveColor("colors.pass", "#007a00", "#00c800"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(resolveColor("colors.fail", "#b00000", "#ff5050"))
)

// marker renders the leading PASS/FAIL tag for a diagnostic line.
func marker(passed bool, color bool) string {
	switch {
	case passed && color:
		return passStyle.Render("PASS")
	case passed:
		return "PASS"
	case color:
		return failStyle.Render("FAIL")
	default:
		return "FAIL"
	}
}

// ColorAuto decides the default for --color: explicit user config wins,
// otherwise color is enabled only on a terminal.
func ColorAuto() bool {
	if v, err := config.GetBool("color"); err == nil {
		return v
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveColor picks the configured color if the user set one, else a
// default matched to the terminal background.
func resolveColor(key string, light string, dark string) color.Color {
	if v, err := config.GetString(key); err == nil {
		return lipgloss.Color(v)
	}
	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

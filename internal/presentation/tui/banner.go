package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"              _                         _ ",
	"   ___  _ __ | |__   ___   __ _ _ __ __| |",
	"  / _ \\| '_ \\| '_ \\ / _ \\ / _` | '__/ _` |",
	" | (_) | | | | |_) | (_) | (_| | | | (_| |",
	"  \\___/|_| |_|_.__/ \\___/ \\__,_|_|  \\__,_|",
}

// Gradient from cyan to violet.
var bannerColors = []string{"#22d3ee", "#38bdf8", "#818cf8", "#a78bfa", "#c084fc"}

// PrintBanner writes the onboard banner to w, colored when w is a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}

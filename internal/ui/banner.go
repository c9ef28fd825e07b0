package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var bannerLines = []string{
	"  ____  _  _          _  _                 ____                             _",
	" / ___|(_)| |_       | |(_) _ __   __ _   | __ )  _ __   __ _  _ __    ___ | |__    ___  ___",
	"| |  _ | || __|   _  | || || '__| / _` |  |  _ \\ | '__| / _` || '_ \\  / __|| '_ \\  / _ \\/ __|",
	"| |_| || || |_   | |_| || || |   | (_| |  | |_) || |   | (_| || | | || (__ | | | ||  __/\\__ \\",
	" \\____||_| \\__|   \\___/ |_||_|    \\__,_|  |____/ |_|    \\__,_||_| |_| \\___||_| |_| \\___||___/",
}

// Separator is a dashed rule as wide as the banner.
func Separator() string {
	width := 0
	for _, line := range bannerLines {
		width = max(width, len(line))
	}
	return strings.Repeat("-", width)
}

// Banner renders the product banner followed by a separator.
func (s *Status) Banner() {
	style := s.renderer.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	for _, line := range bannerLines {
		fmt.Fprintln(s.out, style.Render(line))
	}
	fmt.Fprintf(s.out, "%s\n\n", Separator())
}

// Header prints the version line and the command description.
func (s *Status) Header(version, author, license, description string) {
	dim := s.renderer.NewStyle().Faint(true)
	fmt.Fprintf(s.out, "Version: %s\t Author: %s\t License: %s\n\n", version, author, license)
	fmt.Fprintf(s.out, "Description:\n %s\n\n", dim.Render(description))
	fmt.Fprintf(s.out, "%s\n\n", Separator())
}

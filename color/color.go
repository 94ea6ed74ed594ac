// Package color holds the palette of the command line output.
package color

import "github.com/charmbracelet/lipgloss"

// New returns the color for an ANSI code or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

// Status returns the color of an airing status as reported by the site or the metadata API.
func Status(status string) lipgloss.Color {
	switch status {
	case "Ongoing", "Currently Airing":
		return Green
	case "Completed", "Finished Airing":
		return Blue
	case "Upcoming", "Not yet aired":
		return Orange
	default:
		return Gray
	}
}

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Styles holds the color scheme of the browser.
type Styles struct {
	BgColor     tcell.Color
	FgColor     tcell.Color
	BorderColor tcell.Color

	TableHeaderBg tcell.Color
	TableHeaderFg tcell.Color

	TitleFg tcell.Color
	CrumbFg tcell.Color

	// Filter bar controls.
	ControlFg       tcell.Color
	ControlBg       tcell.Color
	ControlActiveBg tcell.Color

	// Pagination links.
	LinkFg       tcell.Color
	LinkActiveFg tcell.Color
	LinkActiveBg tcell.Color
	DisabledFg   tcell.Color

	// Map markers.
	MarkerFg         tcell.Color
	MarkerSelectedFg tcell.Color
	MarkerSelectedBg tcell.Color
	MarkerFocusFg    tcell.Color
}

// DefaultStyles returns the dark scheme.
func DefaultStyles() *Styles {
	return &Styles{
		BgColor:     tcell.ColorBlack,
		FgColor:     tcell.ColorWhite,
		BorderColor: tcell.ColorDarkCyan,

		TableHeaderBg: tcell.ColorDarkCyan,
		TableHeaderFg: tcell.ColorBlack,

		TitleFg: tcell.ColorAqua,
		CrumbFg: tcell.ColorGray,

		ControlFg:       tcell.ColorWhite,
		ControlBg:       tcell.ColorDarkSlateGray,
		ControlActiveBg: tcell.ColorDarkCyan,

		LinkFg:       tcell.ColorAqua,
		LinkActiveFg: tcell.ColorBlack,
		LinkActiveBg: tcell.ColorAqua,
		DisabledFg:   tcell.ColorGray,

		MarkerFg:         tcell.ColorYellow,
		MarkerSelectedFg: tcell.ColorBlack,
		MarkerSelectedBg: tcell.ColorYellow,
		MarkerFocusFg:    tcell.ColorAqua,
	}
}

// RatingColor picks the color used for a rating value.
func (s *Styles) RatingColor(rating float64) tcell.Color {
	switch {
	case rating >= 4:
		return tcell.ColorGreen
	case rating >= 2.5:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}

// Tag wraps text in a tview color tag.
func Tag(color tcell.Color, text string) string {
	return fmt.Sprintf("[%s]%s[-]", ColorName(color), text)
}

// ColorName converts a tcell color to a name tview tags accept.
func ColorName(color tcell.Color) string {
	switch color {
	case tcell.ColorGreen:
		return "green"
	case tcell.ColorRed:
		return "red"
	case tcell.ColorYellow:
		return "yellow"
	case tcell.ColorWhite:
		return "white"
	case tcell.ColorGray:
		return "gray"
	case tcell.ColorAqua:
		return "aqua"
	case tcell.ColorDarkCyan:
		return "darkcyan"
	default:
		return fmt.Sprintf("#%06x", color.Hex())
	}
}

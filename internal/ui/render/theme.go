package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Border      tcell.Color
	TitleFg     tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	MarkerFg    tcell.Color
	SearchFg    tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Border:      tcell.ColorDefault,
		TitleFg:     tcell.ColorGreen,
		DirectoryFg: tcell.ColorBlue,
		FileFg:      tcell.ColorWhite,
		MarkerFg:    tcell.ColorYellow,
		SearchFg:    tcell.ColorYellow,
		ErrorFg:     tcell.ColorRed,
	}
}

package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	VolumeFg    tcell.Color
	FileFg      tcell.Color
	DetailFg    tcell.Color
	BorderFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	InfoFg      tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		VolumeFg:    tcell.Color51,
		FileFg:      tcell.ColorDefault,
		DetailFg:    tcell.ColorLightSlateGray,
		BorderFg:    tcell.Color240,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		InfoFg:      tcell.Color220,
		ErrorFg:     tcell.Color196,
	}
}

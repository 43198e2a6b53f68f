package theme

import "github.com/thenoetrevino/applyboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Title      string
	Subtle     string
	Normal     string
	SelectedBg string
	CardBg     string
	InfoFg     string
	InfoBg     string
	ErrorFg    string
	ErrorBg    string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	SelectedBg = colors.Selected
	CardBg = "#1F2937"
	InfoFg = colors.Title
	InfoBg = colors.Info
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}

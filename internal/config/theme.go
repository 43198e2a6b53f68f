package config

// ColorScheme holds the UI colors as hex strings
type ColorScheme struct {
	Accent   string `yaml:"accent"`
	Title    string `yaml:"title"`
	Subtle   string `yaml:"subtle"`
	Normal   string `yaml:"normal"`
	Selected string `yaml:"selected"`
	Info     string `yaml:"info"`
	ErrorFg  string `yaml:"error_fg"`
	ErrorBg  string `yaml:"error_bg"`
}

// DefaultColorScheme returns the built-in palette
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Accent:   "#7C3AED",
		Title:    "#F9FAFB",
		Subtle:   "#6B7280",
		Normal:   "#D1D5DB",
		Selected: "#F59E0B",
		Info:     "#10B981",
		ErrorFg:  "#FEE2E2",
		ErrorBg:  "#B91C1C",
	}
}

// ApplyDefaults fills empty colors from the default palette
func (c *ColorScheme) ApplyDefaults() {
	merged := DefaultColorScheme()
	merged.MergeFrom(*c)
	*c = merged
}

// MergeFrom overwrites colors that are set in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	set := func(v *string, o string) {
		if o != "" {
			*v = o
		}
	}
	set(&c.Accent, other.Accent)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.Selected, other.Selected)
	set(&c.Info, other.Info)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)
}

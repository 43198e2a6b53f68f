package notifications

import "github.com/thenoetrevino/applyboard/internal/tui/theme"

type style struct {
	icon             string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	if s == Error {
		return style{
			icon:             "✕",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.ErrorBg,
		}
	}
	return style{
		icon:             "🔔",
		foreground:       theme.InfoFg,
		background:       theme.InfoBg,
		borderForeground: theme.InfoBg,
	}
}

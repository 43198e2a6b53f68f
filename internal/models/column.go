package models

// StatusColumnConfig is the display configuration of one board column.
// It is client-side view state keyed by status; only Title is editable.
type StatusColumnConfig struct {
	Status Status
	Title  string
	Color  string // Border color (hex)
	Accent string // Highlight color used while a card hovers the column
}

// DefaultColumnConfigs returns the seed configuration, one entry per status.
func DefaultColumnConfigs() map[Status]StatusColumnConfig {
	return map[Status]StatusColumnConfig{
		StatusPending:   {Status: StatusPending, Title: "To Apply", Color: "#9CA3AF", Accent: "#E5E7EB"},
		StatusApplied:   {Status: StatusApplied, Title: "Applied", Color: "#60A5FA", Accent: "#BFDBFE"},
		StatusAptitude:  {Status: StatusAptitude, Title: "Aptitude Test", Color: "#A78BFA", Accent: "#DDD6FE"},
		StatusInterview: {Status: StatusInterview, Title: "Interview", Color: "#FBBF24", Accent: "#FDE68A"},
		StatusPassed:    {Status: StatusPassed, Title: "Offer", Color: "#34D399", Accent: "#A7F3D0"},
		StatusRejected:  {Status: StatusRejected, Title: "Rejected", Color: "#F87171", Accent: "#FECACA"},
	}
}

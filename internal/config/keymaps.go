package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCompany    string `yaml:"add_company"`
	DeleteCompany string `yaml:"delete_company"`
	ViewCompany   string `yaml:"view_company"`

	// Drag and drop
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Columns
	RenameColumn string `yaml:"rename_column"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Refresh string `yaml:"refresh"`
	Quit    string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCompany:    "a",
		DeleteCompany: "d",
		ViewCompany:   "space",

		PickUp:     "m",
		Drop:       "enter",
		CancelDrag: "esc",

		RenameColumn: "R",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Refresh: "r",
		Quit:    "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&k.AddCompany, d.AddCompany)
	fill(&k.DeleteCompany, d.DeleteCompany)
	fill(&k.ViewCompany, d.ViewCompany)
	fill(&k.PickUp, d.PickUp)
	fill(&k.Drop, d.Drop)
	fill(&k.CancelDrag, d.CancelDrag)
	fill(&k.RenameColumn, d.RenameColumn)
	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevCard, d.PrevCard)
	fill(&k.NextCard, d.NextCard)
	fill(&k.Refresh, d.Refresh)
	fill(&k.Quit, d.Quit)
}

package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	DragMode                       // A card is picked up and hovering a column
	AddCompanyMode                 // Add-company form is open
	RenameColumnMode               // Editing the selected column's title
	DeleteConfirmMode              // Confirming company deletion
	DetailMode                     // Showing the selected company
)

// UIState manages the user interface state.
// This includes navigation (column/card selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the column
	selectedCard int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal size.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) SelectedCard() int   { return s.selectedCard }

// MoveColumn shifts the column selection by delta, clamped to [0, count).
// The card selection resets to the top.
func (s *UIState) MoveColumn(delta, count int) {
	if count <= 0 {
		return
	}
	s.selectedColumn = clamp(s.selectedColumn+delta, 0, count-1)
	s.selectedCard = 0
}

// MoveCard shifts the card selection by delta within a column of count cards.
func (s *UIState) MoveCard(delta, count int) {
	if count <= 0 {
		s.selectedCard = 0
		return
	}
	s.selectedCard = clamp(s.selectedCard+delta, 0, count-1)
}

// ClampCard keeps the card selection valid after the column shrank.
func (s *UIState) ClampCard(count int) {
	s.MoveCard(0, count)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// Add-company form fields, in tab order
const (
	FieldName = iota
	FieldPosition
	FieldDeadline
	FieldLink
	fieldCount
)

var fieldLabels = [fieldCount]string{"Company", "Position", "Deadline (YYYY-MM-DD)", "Application link"}

// FormState holds the add-company form and the column rename input.
type FormState struct {
	inputs [fieldCount]textinput.Model
	focus  int
	status models.Status // column the company is added to

	Rename       textinput.Model
	RenameStatus models.Status
}

// NewFormState creates empty inputs.
func NewFormState() *FormState {
	f := &FormState{}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = models.MaxNameLength
		f.inputs[i] = ti
	}
	f.inputs[FieldLink].CharLimit = 2048
	f.Rename = textinput.New()
	f.Rename.CharLimit = models.MaxColumnTitleLength
	return f
}

// OpenAdd clears the form and focuses the first field.
func (f *FormState) OpenAdd(status models.Status) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = FieldName
	f.status = status
	return f.inputs[FieldName].Focus()
}

// OpenRename starts editing a column title.
func (f *FormState) OpenRename(status models.Status, current string) tea.Cmd {
	f.RenameStatus = status
	f.Rename.SetValue(current)
	f.Rename.CursorEnd()
	return f.Rename.Focus()
}

// Focus returns the index of the focused field.
func (f *FormState) Focus() int { return f.focus }

// Cycle moves focus by delta, wrapping around.
func (f *FormState) Cycle(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// UpdateFocused forwards msg to the focused input.
func (f *FormState) UpdateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// SetValue fills one field.
func (f *FormState) SetValue(field int, v string) {
	f.inputs[field].SetValue(v)
}

// Draft builds the company to submit.
func (f *FormState) Draft() models.CompanyDraft {
	return models.CompanyDraft{
		Name:            f.inputs[FieldName].Value(),
		Position:        f.inputs[FieldPosition].Value(),
		Status:          f.status,
		Deadline:        strings.TrimSpace(f.inputs[FieldDeadline].Value()),
		ApplicationLink: strings.TrimSpace(f.inputs[FieldLink].Value()),
	}
}

// Fields returns label and rendered input per field.
func (f *FormState) Fields() [][2]string {
	out := make([][2]string, fieldCount)
	for i := range f.inputs {
		out[i] = [2]string{fieldLabels[i], f.inputs[i].View()}
	}
	return out
}

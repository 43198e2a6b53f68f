package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/models"
)

// FormProps describes the add-company dialog.
type FormProps struct {
	Column string
	Fields [][2]string // label, rendered input
	Focus  int
}

// RenderAddForm renders the add-company dialog.
func RenderAddForm(p FormProps) string {
	lines := []string{TitleStyle().Render("Add company to " + p.Column), ""}
	for i, f := range p.Fields {
		label := subtleStyle().Render(f[0])
		if i == p.Focus {
			label = TitleStyle().Render(f[0])
		}
		lines = append(lines, label, f[1], "")
	}
	lines = append(lines, subtleStyle().Render("tab next · enter save · esc cancel"))
	return ModalStyle().Render(strings.Join(lines, "\n"))
}

// RenderRename renders the column rename dialog.
func RenderRename(input string) string {
	return ModalStyle().Render(strings.Join([]string{
		TitleStyle().Render("Rename column"),
		"",
		input,
		"",
		subtleStyle().Render("enter save · esc cancel"),
	}, "\n"))
}

// RenderConfirmDelete asks before deleting a company.
func RenderConfirmDelete(c *models.Company) string {
	return ModalStyle().Render(strings.Join([]string{
		TitleStyle().Render("Delete " + c.Name + "?"),
		"",
		subtleStyle().Render("y delete · n cancel"),
	}, "\n"))
}

// RenderDetail shows a company with its markdown description.
func RenderDetail(c *models.Company, width int) string {
	width = max(width, 20)
	lines := []string{
		TitleStyle().Render(c.Name),
		c.Position,
		subtleStyle().Render("Status: " + string(c.Status)),
	}
	if c.PositionType != models.PositionTypeNone {
		lines = append(lines, subtleStyle().Render("Type: "+string(c.PositionType)))
	}
	if c.Deadline != "" {
		lines = append(lines, subtleStyle().Render("Deadline: "+deadlineDate(c.Deadline)))
	}
	if c.ApplicationLink != "" {
		lines = append(lines, subtleStyle().Render("Link: "+c.ApplicationLink))
	}
	lines = append(lines, "", RenderDescription(DescriptionProps{
		Description: c.Description,
		Width:       width,
	}))
	return ModalStyle().Width(width + 6).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

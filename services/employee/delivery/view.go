package delivery

import (
	"strings"

	"employeeform/services/employee/validation"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles for the page.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	JSON   lipgloss.Style
	Modal  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Label:  lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Help:   lipgloss.NewStyle().Faint(true),
		JSON:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginLeft(2),
		Modal:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// View renders the page.
func (m Model) View() string {
	switch m.state {
	case stateForm:
		return m.viewForm()
	case stateConfirm:
		return m.viewConfirm()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewBrowse() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Employee Records"))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	for _, emp := range m.employees {
		if !emp.ShowJSON {
			continue
		}
		data, err := sonic.MarshalIndent(emp, "", "  ")
		if err != nil {
			continue
		}
		b.WriteString(m.styles.JSON.Render(string(data)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("n new • e edit • d delete • t toggle json • x export • C clear all • q quit"))
	return b.String()
}

func (m Model) viewForm() string {
	title := "New Employee"
	if m.editID != "" {
		title = "Edit Employee"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	for i, field := range validation.Fields {
		b.WriteString(m.styles.Label.Render(fieldLabels[field]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.fieldErrs[field]; ok {
			b.WriteString(m.styles.Error.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("enter submit • tab next field • esc cancel"))
	return b.String()
}

func (m Model) viewConfirm() string {
	body := m.confirmPrompt + "\n\n[y]es   [n]o"
	return m.styles.Modal.Render(body)
}

// Package delivery renders the single-page employee form: a table of
// committed records above an edit form, with modal confirmation for the
// destructive actions. It is purely a caller of the employee store.
package delivery

import (
	"context"
	"errors"
	"os"

	"employeeform/domain"
	"employeeform/services/employee/validation"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ExportFileName is the fixed name of the export artifact.
const ExportFileName = "employees.json"

type sessionState int

const (
	stateBrowse sessionState = iota
	stateForm
	stateConfirm
)

type (
	opDoneMsg    struct{ err error }
	formRejected domain.FieldErrors
	statusMsg    string
)

var fieldLabels = map[string]string{
	validation.FieldName:     "Name",
	validation.FieldDOB:      "Date of birth",
	validation.FieldEmail:    "Email",
	validation.FieldPassword: "Password",
	validation.FieldPhone:    "Phone",
}

// Model defines the state of the employee form page.
type Model struct {
	uc domain.EmployeeUseCase

	state  sessionState
	mode   domain.Mode
	editID string

	inputs    []textinput.Model
	focus     int
	fieldErrs domain.FieldErrors

	table     table.Model
	employees []domain.Employee

	confirmPrompt string
	confirmReply  chan bool

	status string
	width  int
	height int
	styles Styles
}

func NewModel(uc domain.EmployeeUseCase) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "Name", Width: 20},
			{Title: "DOB", Width: 12},
			{Title: "Email", Width: 26},
			{Title: "Phone", Width: 12},
			{Title: "JSON", Width: 4},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	inputs := make([]textinput.Model, len(validation.Fields))
	for i, field := range validation.Fields {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[field]
		ti.CharLimit = 100
		ti.Width = 40
		inputs[i] = ti
	}

	m := Model{
		uc:        uc,
		state:     stateBrowse,
		inputs:    inputs,
		fieldErrs: domain.FieldErrors{},
		table:     t,
		styles:    DefaultStyles(),
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case confirmRequestMsg:
		m.state = stateConfirm
		m.confirmPrompt = msg.prompt
		m.confirmReply = msg.reply
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.refresh()
		return m, nil

	case formRejected:
		m.state = stateForm
		m.fieldErrs = domain.FieldErrors(msg)
		return m, nil

	case statusMsg:
		m.status = string(msg)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateConfirm:
			return m.updateConfirm(msg)
		case stateForm:
			return m.updateForm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.openForm(domain.ModeCreate, nil)
		return m, textinput.Blink
	case "e", "enter":
		if emp := m.selected(); emp != nil {
			m.openForm(domain.ModeEdit, emp)
			return m, textinput.Blink
		}
		return m, nil
	case "d":
		if emp := m.selected(); emp != nil {
			return m, m.deleteCmd(emp.ID)
		}
		return m, nil
	case "t":
		if emp := m.selected(); emp != nil {
			return m, m.toggleCmd(emp.ID)
		}
		return m, nil
	case "x":
		return m, m.exportCmd()
	case "C":
		return m, m.clearAllCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Discard the draft without committing.
		m.state = stateBrowse
		m.fieldErrs = domain.FieldErrors{}
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, textinput.Blink
	case "shift+tab", "up":
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, textinput.Blink
	case "enter":
		return m.submitDraft()
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	// Live validation on every keystroke, same field only.
	field := validation.Fields[m.focus]
	if errMsg := validation.Field(field, m.inputs[m.focus].Value()); errMsg != "" {
		m.fieldErrs[field] = errMsg
	} else {
		delete(m.fieldErrs, field)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.answerConfirm(true)
		return m, nil
	case "n", "N", "esc":
		m.answerConfirm(false)
		return m, nil
	}
	return m, nil
}

func (m *Model) answerConfirm(ok bool) {
	if m.confirmReply != nil {
		m.confirmReply <- ok
		m.confirmReply = nil
	}
	m.confirmPrompt = ""
	m.state = stateBrowse
}

func (m *Model) openForm(mode domain.Mode, emp *domain.Employee) {
	m.state = stateForm
	m.mode = mode
	m.fieldErrs = domain.FieldErrors{}
	m.editID = ""

	values := map[string]string{}
	if mode == domain.ModeEdit && emp != nil {
		m.editID = emp.ID
		values = map[string]string{
			validation.FieldName:     emp.Name,
			validation.FieldDOB:      emp.DOB,
			validation.FieldEmail:    emp.Email,
			validation.FieldPassword: emp.Password,
			validation.FieldPhone:    emp.Phone,
		}
	}

	for i, field := range validation.Fields {
		m.inputs[i].SetValue(values[field])
		m.inputs[i].Blur()
	}
	m.setFocus(0)
}

func (m *Model) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) submitDraft() (tea.Model, tea.Cmd) {
	draft := domain.Draft{
		Mode:     m.mode,
		ID:       m.editID,
		Name:     m.inputs[0].Value(),
		DOB:      m.inputs[1].Value(),
		Email:    m.inputs[2].Value(),
		Password: m.inputs[3].Value(),
		Phone:    m.inputs[4].Value(),
	}

	if errs := validation.Draft(draft); len(errs) > 0 {
		m.fieldErrs = errs
		return m, nil
	}

	m.state = stateBrowse
	m.fieldErrs = domain.FieldErrors{}
	if draft.Mode == domain.ModeEdit {
		return m, m.updateCmd(draft.ID, draft)
	}
	return m, m.createCmd(draft)
}

// selected returns the record under the table cursor, or nil when the
// collection is empty.
func (m Model) selected() *domain.Employee {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.employees) {
		return nil
	}
	emp := m.employees[idx]
	return &emp
}

// refresh snapshots the committed collection into the table rows.
func (m *Model) refresh() {
	m.employees = m.uc.AllUC()

	rows := make([]table.Row, 0, len(m.employees))
	for _, emp := range m.employees {
		jsonMark := ""
		if emp.ShowJSON {
			jsonMark = "on"
		}
		rows = append(rows, table.Row{shortID(emp.ID), emp.Name, emp.DOB, emp.Email, emp.Phone, jsonMark})
	}
	m.table.SetRows(rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m Model) createCmd(draft domain.Draft) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.uc.CreateUC(context.Background(), draft); err != nil {
			var fe domain.FieldErrors
			if errors.As(err, &fe) {
				return formRejected(fe)
			}
			return opDoneMsg{err: err}
		}
		return opDoneMsg{}
	}
}

func (m Model) updateCmd(id string, draft domain.Draft) tea.Cmd {
	return func() tea.Msg {
		if err := m.uc.UpdateUC(context.Background(), id, draft); err != nil {
			var fe domain.FieldErrors
			if errors.As(err, &fe) {
				return formRejected(fe)
			}
			return opDoneMsg{err: err}
		}
		return opDoneMsg{}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: m.uc.DeleteUC(context.Background(), id)}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: m.uc.ToggleDisplayUC(context.Background(), id)}
	}
}

func (m Model) clearAllCmd() tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: m.uc.ClearAllUC(context.Background())}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(ExportFileName)
		if err != nil {
			return opDoneMsg{err: err}
		}
		defer f.Close()
		if err := m.uc.ExportUC(context.Background(), f); err != nil {
			return opDoneMsg{err: err}
		}
		return statusMsg("Exported to " + ExportFileName)
	}
}

// Run starts the interactive form. The confirmer must be the one injected
// into the store so its modals land on this program.
func Run(uc domain.EmployeeUseCase, confirmer *ModalConfirmer) error {
	p := tea.NewProgram(NewModel(uc), tea.WithAltScreen())
	confirmer.Attach(p.Send)
	_, err := p.Run()
	return err
}

package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"todolite/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureListState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		if m.Session.Open() {
			next := m.handleEditorKey(typed)
			return next, nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Add:
			m.openCreateEditor()
			return m, nil
		case m.Keys.Edit, "enter":
			m.openEditEditorAtCursor()
			return m, nil
		case m.Keys.Toggle, "x":
			m.toggleAtCursor()
			return m, nil
		case m.Keys.Delete:
			m.removeAtCursor()
			return m, nil
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case AddTaskMsg:
		m.applyAdd(typed.Title, typed.Note)
		return m, nil
	case ToggleTaskMsg:
		m.applyToggle(typed.ID)
		return m, nil
	case RemoveTaskMsg:
		m.applyRemove(typed.ID)
		return m, nil
	case BeginEditMsg:
		m.openEditEditorFor(typed.ID)
		return m, nil
	case SetOrderingMsg:
		m.applyOrdering(typed.Ordering)
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rightPane := ""
	if m.Session.Open() {
		rightPane = m.renderEditorPanel()
	} else {
		rightPane = m.renderMetadataPane()
	}
	rightPane += m.renderCommandPalette() + m.renderHelpIfVisible()

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todolite | %d tasks | ordering: %s | selected: %s", m.Store.Len(), m.Store.Ordering(), m.SelectedTaskID),
		LeftPane:   m.renderTaskView(),
		RightPane:  rightPane,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: %s add | %s edit | space toggle | %s delete | / cmd | %s help | %s quit", m.Keys.Add, m.Keys.Edit, m.Keys.Delete, m.Keys.Help, m.Keys.Quit),
	})
}

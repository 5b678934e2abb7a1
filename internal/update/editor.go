package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Session.Cancel()
		m.blurEditor()
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
		return m
	case "tab":
		if m.Editor.Field == FieldTitle {
			m.Editor.Field = FieldNote
			m.titleInput.Blur()
			m.noteArea.Focus()
		} else {
			m.Editor.Field = FieldTitle
			m.noteArea.Blur()
			m.titleInput.Focus()
		}
		return m
	case "ctrl+s":
		m.commitEditor()
		return m
	case "enter":
		// Enter commits from the title field; in the note textarea it
		// inserts a newline as usual.
		if m.Editor.Field == FieldTitle {
			m.commitEditor()
			return m
		}
	}

	if m.Editor.Field == FieldTitle {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		_ = cmd
		return m
	}
	var cmd tea.Cmd
	m.noteArea, cmd = m.noteArea.Update(msg)
	_ = cmd
	return m
}

func (m *Model) openCreateEditor() {
	m.Session.BeginCreate()
	m.Editor = EditorState{Field: FieldTitle}
	m.titleInput.SetValue("")
	m.noteArea.SetValue("")
	m.noteArea.Blur()
	m.titleInput.Focus()
	m.Status = StatusBar{Text: "editor open: new task", IsError: false}
}

func (m *Model) openEditEditorAtCursor() {
	task, ok := m.taskAtCursor()
	if !ok {
		return
	}
	m.openEditEditorFor(task.ID)
}

func (m *Model) openEditEditorFor(id string) {
	if !m.Session.BeginEdit(m.Store, id) {
		return
	}
	m.Editor = EditorState{Field: FieldTitle}
	m.titleInput.SetValue(m.Session.InitialTitle())
	m.noteArea.SetValue(m.Session.InitialNote())
	m.noteArea.Blur()
	m.titleInput.Focus()
	m.Status = StatusBar{Text: fmt.Sprintf("editor open: %s", m.Session.InitialTitle()), IsError: false}
}

func (m *Model) commitEditor() {
	editing := m.Session.Editing()
	task, ok := m.Session.Commit(m.Store, m.titleInput.Value(), m.noteArea.Value())
	if !ok {
		m.Editor.Err = "title is required"
		m.Status = StatusBar{Text: "title is required", IsError: true}
		return
	}
	m.blurEditor()
	switch {
	case task.ID == "":
		m.Status = StatusBar{Text: "task no longer exists", IsError: false}
	case editing:
		m.Status = StatusBar{Text: fmt.Sprintf("updated: %s", task.Title), IsError: false}
		m.moveCursorToTask(task.ID)
	default:
		m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Title), IsError: false}
		m.moveCursorToTask(task.ID)
	}
	m.syncTaskList()
}

func (m *Model) blurEditor() {
	m.titleInput.Blur()
	m.noteArea.Blur()
	m.titleInput.SetValue("")
	m.noteArea.SetValue("")
	m.Editor = EditorState{Field: FieldTitle}
}

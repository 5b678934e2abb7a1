package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"todolite/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Tasks (list)"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.titleInput = textinput.New()
	m.titleInput.Prompt = "title> "
	m.titleInput.CharLimit = m.titleLimit
	m.titleInput.Width = 42

	m.noteArea = textarea.New()
	m.noteArea.SetWidth(54)
	m.noteArea.SetHeight(6)
	m.noteArea.ShowLineNumbers = false
	m.noteArea.Placeholder = "Optional note (markdown)"

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func (m *Model) syncTaskList() {
	tasks := m.visibleTasks()
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		desc := firstLine(task.Note)
		if desc == "" {
			if task.Completed {
				desc = "done"
			} else {
				desc = "active"
			}
		}
		items = append(items, listItem{title: task.Title, description: desc})
	}
	m.taskList.SetItems(items)
	if m.Cursor >= len(items) && len(items) > 0 {
		m.Cursor = len(items) - 1
	}
	if len(items) > 0 {
		m.taskList.Select(m.Cursor)
	}
	m.syncSelectedToCursor()
}

func (m Model) renderTaskView() string {
	tasks := m.visibleTasks()
	items := make([]views.TaskItemData, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, views.TaskItemData{
			ID:        task.ID,
			Title:     task.Title,
			Note:      task.Note,
			Completed: task.Completed,
		})
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		ListView:   m.taskList.View(),
		Items:      items,
		SelectedID: m.SelectedTaskID,
		Ordering:   string(m.Store.Ordering()),
	})
}

func (m Model) renderEditorPanel() string {
	mode := "create"
	if m.Session.Editing() {
		mode = "edit"
	}
	return views.RenderEditorPanel(views.EditorPanelData{
		Active:    m.Session.Open(),
		Mode:      mode,
		TitleView: m.titleInput.View(),
		NoteView:  m.noteArea.View(),
		Field:     string(m.Editor.Field),
		ErrorText: m.Editor.Err,
	})
}

func (m Model) renderMetadataPane() string {
	task, ok := m.Store.Get(m.SelectedTaskID)
	if !ok {
		return views.RenderMetadataPane(views.MetadataData{MissingSelected: true})
	}
	preview := ""
	if m.NotePreview {
		preview = views.RenderMarkdown(task.Note)
	} else {
		preview = firstLine(task.Note)
	}
	return views.RenderMetadataPane(views.MetadataData{
		SelectedID:  task.ID,
		Completed:   task.Completed,
		NotePreview: preview,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

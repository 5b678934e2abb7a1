package update

import (
	"fmt"

	"todolite/internal/model"
)

// The cursor indexes the derived List() snapshot, not canonical order, so
// under active-first ordering it follows the partitioned display.
func (m Model) visibleTasks() []model.Task {
	return m.Store.List()
}

func (m Model) taskAtCursor() (model.Task, bool) {
	tasks := m.visibleTasks()
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) moveCursor(delta int) {
	tasks := m.visibleTasks()
	next := m.Cursor + delta
	if next < 0 || next >= len(tasks) {
		return
	}
	m.Cursor = next
	m.syncSelectedToCursor()
	m.syncTaskList()
}

func (m *Model) toggleAtCursor() {
	task, ok := m.taskAtCursor()
	if !ok {
		return
	}
	m.applyToggle(task.ID)
}

func (m *Model) removeAtCursor() {
	task, ok := m.taskAtCursor()
	if !ok {
		return
	}
	m.applyRemove(task.ID)
}

func (m *Model) applyAdd(title, note string) {
	task, ok := m.Store.Add(title, note)
	if !ok {
		m.Status = StatusBar{Text: "title is required", IsError: true}
		return
	}
	m.moveCursorToTask(task.ID)
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Title), IsError: false}
	m.syncTaskList()
}

func (m *Model) applyToggle(id string) {
	if !m.Store.Toggle(id) {
		return
	}
	task, _ := m.Store.Get(id)
	state := "active"
	if task.Completed {
		state = "done"
	}
	m.moveCursorToTask(id)
	m.Status = StatusBar{Text: fmt.Sprintf("marked %s: %s", state, task.Title), IsError: false}
	m.syncTaskList()
}

func (m *Model) applyRemove(id string) {
	task, ok := m.Store.Get(id)
	if !ok || !m.Store.Remove(id) {
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title), IsError: false}
	m.syncTaskList()
}

func (m *Model) applyOrdering(ordering model.Ordering) {
	if !ordering.IsValid() {
		return
	}
	selected := m.SelectedTaskID
	m.Store.SetOrdering(ordering)
	if selected != "" {
		m.moveCursorToTask(selected)
	}
	m.Status = StatusBar{Text: fmt.Sprintf("ordering: %s", ordering), IsError: false}
	m.syncTaskList()
}

func (m *Model) moveCursorToTask(id string) {
	for i, task := range m.visibleTasks() {
		if task.ID == id {
			m.Cursor = i
			m.SelectedTaskID = id
			return
		}
	}
}

func (m *Model) syncSelectedToCursor() {
	if task, ok := m.taskAtCursor(); ok {
		m.SelectedTaskID = task.ID
		return
	}
	m.SelectedTaskID = ""
}

func (m *Model) ensureListState() {
	tasks := m.visibleTasks()
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(tasks) && len(tasks) > 0 {
		m.Cursor = len(tasks) - 1
	}
	m.syncSelectedToCursor()
}

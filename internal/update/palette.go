package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todolite/internal/commands"
	"todolite/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.applyAdd(a.Title, "")
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Title)}, nil
		},
		Edit: func(a commands.EditArgs) (commands.Result, error) {
			task, err := m.taskAtPosition(a.Position)
			if err != nil {
				return commands.Result{}, err
			}
			m.openEditEditorFor(task.ID)
			return commands.Result{Message: fmt.Sprintf("editing: %s", task.Title)}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			task, err := m.taskAtPosition(a.Position)
			if err != nil {
				return commands.Result{}, err
			}
			m.applyToggle(task.ID)
			return commands.Result{Message: fmt.Sprintf("toggled: %s", task.Title)}, nil
		},
		Remove: func(a commands.RemoveArgs) (commands.Result, error) {
			task, err := m.taskAtPosition(a.Position)
			if err != nil {
				return commands.Result{}, err
			}
			m.applyRemove(task.ID)
			return commands.Result{Message: fmt.Sprintf("removed: %s", task.Title)}, nil
		},
		Order: func(a commands.OrderArgs) (commands.Result, error) {
			ordering, err := model.ParseOrdering(a.Mode)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "order mode must be insertion or active-first"}
			}
			m.applyOrdering(ordering)
			return commands.Result{Message: fmt.Sprintf("ordering set: %s", ordering)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m *Model) taskAtPosition(pos int) (model.Task, error) {
	tasks := m.visibleTasks()
	if pos < 1 || pos > len(tasks) {
		return model.Task{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("no task at position %d", pos),
		}
	}
	return tasks[pos-1], nil
}

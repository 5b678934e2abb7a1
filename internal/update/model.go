package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"todolite/internal/model"
	"todolite/internal/session"
	"todolite/internal/store"
)

type EditorField string

const (
	FieldTitle EditorField = "title"
	FieldNote  EditorField = "note"
)

type EditorState struct {
	Field EditorField
	Err   string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add    string
	Edit   string
	Toggle string
	Delete string
	Help   string
	Quit   string
}

type Model struct {
	Store          *store.Store
	Session        session.Session
	Cursor         int
	SelectedTaskID string
	Editor         EditorState
	Palette        CommandPaletteState
	HelpVisible    bool
	NotePreview    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	// Bubble components used for rich TUI controls
	taskList     list.Model
	titleInput   textinput.Model
	noteArea     textarea.Model
	commandInput textinput.Model
	helpModel    help.Model
	titleLimit   int
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Title string
	Note  string
}

type ToggleTaskMsg struct {
	ID string
}

type RemoveTaskMsg struct {
	ID string
}

type BeginEditMsg struct {
	ID string
}

type SetOrderingMsg struct {
	Ordering model.Ordering
}

func NewModel() Model {
	return NewModelWithConfig(DefaultRuntimeConfig())
}

func NewModelWithConfig(cfg RuntimeConfig) Model {
	m := Model{
		Store:       store.New(cfg.Ordering),
		NotePreview: cfg.NotePreview,
		Editor:      EditorState{Field: FieldTitle},
		Keys: GlobalKeyMap{
			Add:    "a",
			Edit:   "e",
			Toggle: " ",
			Delete: "d",
			Help:   "?",
			Quit:   "q",
		},
		titleLimit: cfg.TitleLimit,
	}
	m.initBubbleComponents()
	m.syncTaskList()
	return m
}

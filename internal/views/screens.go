package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID        string
	Title     string
	Note      string
	Completed bool
}

type TaskPanelData struct {
	ListView   string
	Items      []TaskItemData
	SelectedID string
	Ordering   string
}

type EditorPanelData struct {
	Active    bool
	Mode      string
	TitleView string
	NoteView  string
	Field     string
	ErrorText string
}

type MetadataData struct {
	SelectedID      string
	Completed       bool
	NotePreview     string
	MissingSelected bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(fmt.Sprintf("ordering: %s\n", data.Ordering))
	b.WriteString("actions: [a]dd [e]dit [space]toggle [d]elete [j/k]move\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(list empty)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %2d %s %s\n", cursor, i+1, checkbox(item.Completed), item.Title))
	}
	return strings.TrimSpace(b.String())
}

func RenderEditorPanel(data EditorPanelData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("editor (%s):\n", data.Mode))
	b.WriteString("keys: [tab] field [enter/ctrl+s] save [esc] cancel\n")
	marker := func(field string) string {
		if data.Field == field {
			return "*"
		}
		return " "
	}
	b.WriteString(fmt.Sprintf("%stitle: %s\n", marker("title"), data.TitleView))
	b.WriteString(fmt.Sprintf("%snote:\n%s\n", marker("note"), data.NoteView))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimSpace(b.String())
}

func RenderMetadataPane(data MetadataData) string {
	if data.MissingSelected || strings.TrimSpace(data.SelectedID) == "" {
		return "metadata:\n(no selection)"
	}
	state := "active"
	if data.Completed {
		state = "done"
	}
	var b strings.Builder
	b.WriteString("metadata:\n")
	b.WriteString(fmt.Sprintf("id: %s\n", data.SelectedID))
	b.WriteString(fmt.Sprintf("state: %s\n", state))
	b.WriteString("note-preview:\n")
	if data.NotePreview == "" {
		b.WriteString("(no note)")
	} else {
		b.WriteString(data.NotePreview)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

package session

import (
	"strings"

	"todolite/internal/model"
	"todolite/internal/store"
)

type Phase string

const (
	PhaseClosed Phase = "closed"
	PhaseCreate Phase = "create"
	PhaseEdit   Phase = "edit"
)

// Session tracks the transient create/edit surface: whether it is open and
// which record, if any, it targets. At most one session is open at a time;
// a fresh Begin replaces whatever was open before.
type Session struct {
	phase        Phase
	targetID     string
	initialTitle string
	initialNote  string
}

// Phase reports the current state; the zero value counts as closed.
func (s *Session) Phase() Phase {
	if s.phase == "" {
		return PhaseClosed
	}
	return s.phase
}

func (s *Session) Open() bool    { return s.phase == PhaseCreate || s.phase == PhaseEdit }
func (s *Session) Editing() bool { return s.phase == PhaseEdit }

// TargetID is the id under edit, empty when creating or closed.
func (s *Session) TargetID() string { return s.targetID }

// InitialTitle and InitialNote seed the entry fields when editing.
func (s *Session) InitialTitle() string { return s.initialTitle }
func (s *Session) InitialNote() string  { return s.initialNote }

// BeginCreate opens the session with no target record.
func (s *Session) BeginCreate() {
	*s = Session{phase: PhaseCreate}
}

// BeginEdit opens the session targeting an existing record, seeding the
// initial field values from it. It refuses and stays closed when the id is
// not in the store.
func (s *Session) BeginEdit(st *store.Store, id string) bool {
	task, ok := st.Get(id)
	if !ok {
		return false
	}
	*s = Session{
		phase:        PhaseEdit,
		targetID:     task.ID,
		initialTitle: task.Title,
		initialNote:  task.Note,
	}
	return true
}

// Cancel closes the session, discarding any unsaved input.
func (s *Session) Cancel() {
	*s = Session{phase: PhaseClosed}
}

// Commit finalizes the session into a store mutation: Update when a target
// record was set, Add otherwise, then the session closes. An empty trimmed
// title suppresses the commit and keeps the session open. Committing against
// a target removed mid-session is a silent no-op on the store.
func (s *Session) Commit(st *store.Store, title, note string) (model.Task, bool) {
	if !s.Open() || strings.TrimSpace(title) == "" {
		return model.Task{}, false
	}
	var task model.Task
	if s.phase == PhaseEdit {
		st.Update(s.targetID, title, note)
		task, _ = st.Get(s.targetID)
	} else {
		task, _ = st.Add(title, note)
	}
	*s = Session{phase: PhaseClosed}
	return task, true
}

package store

import (
	"testing"

	"todolite/internal/model"
)

func TestAddRemoveLengthAccounting(t *testing.T) {
	s := New(model.OrderInsertion)
	titles := []string{"one", "two", "three", "four"}
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		task, ok := s.Add(title, "")
		if !ok {
			t.Fatalf("add %q rejected", title)
		}
		ids = append(ids, task.ID)
	}
	if s.Len() != len(titles) {
		t.Fatalf("expected %d tasks, got %d", len(titles), s.Len())
	}

	if !s.Remove(ids[1]) {
		t.Fatal("expected remove to report success")
	}
	if !s.Remove(ids[3]) {
		t.Fatal("expected remove to report success")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tasks after removes, got %d", s.Len())
	}
	if got := len(s.List()); got != 2 {
		t.Fatalf("expected list length 2, got %d", got)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	s := New(model.OrderInsertion)
	if _, ok := s.Add("", "note"); ok {
		t.Fatal("expected empty title to be rejected")
	}
	if _, ok := s.Add("   \t ", ""); ok {
		t.Fatal("expected whitespace-only title to be rejected")
	}
	if s.Len() != 0 {
		t.Fatalf("expected store unchanged, got %d tasks", s.Len())
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s := New(model.OrderInsertion)
	task, _ := s.Add("flip me", "")

	s.Toggle(task.ID)
	got, _ := s.Get(task.ID)
	if !got.Completed {
		t.Fatal("expected completed after first toggle")
	}

	s.Toggle(task.ID)
	got, _ = s.Get(task.ID)
	if got.Completed {
		t.Fatal("expected original flag restored after second toggle")
	}
}

func TestOperationsAfterRemoveAreNoOps(t *testing.T) {
	s := New(model.OrderInsertion)
	task, _ := s.Add("doomed", "")
	keep, _ := s.Add("keeper", "")
	s.Remove(task.ID)

	if s.Update(task.ID, "new title", "n") {
		t.Fatal("expected update on removed id to be a no-op")
	}
	if s.Toggle(task.ID) {
		t.Fatal("expected toggle on removed id to be a no-op")
	}
	if s.Remove(task.ID) {
		t.Fatal("expected second remove to be a no-op")
	}
	if _, ok := s.Get(task.ID); ok {
		t.Fatal("expected removed id to be gone")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 remaining task, got %d", s.Len())
	}
	if got, _ := s.Get(keep.ID); got.Title != "keeper" {
		t.Fatalf("expected keeper untouched, got %+v", got)
	}
}

func TestUpdateReplacesTitleAndNote(t *testing.T) {
	s := New(model.OrderInsertion)
	task, _ := s.Add("draft", "old")

	if !s.Update(task.ID, "  final  ", "new") {
		t.Fatal("expected update to succeed")
	}
	got, _ := s.Get(task.ID)
	if got.Title != "final" || got.Note != "new" {
		t.Fatalf("unexpected record after update: %+v", got)
	}
	if got.ID != task.ID {
		t.Fatalf("expected id immutable, got %q want %q", got.ID, task.ID)
	}

	if s.Update(task.ID, "   ", "x") {
		t.Fatal("expected blank title update to be rejected")
	}
	got, _ = s.Get(task.ID)
	if got.Title != "final" {
		t.Fatalf("expected record unchanged after rejected update, got %+v", got)
	}
}

func TestActiveFirstOrderingIsStablePartition(t *testing.T) {
	s := New(model.OrderActiveFirst)
	first, _ := s.Add("first", "")
	second, _ := s.Add("second", "")
	third, _ := s.Add("third", "")
	fourth, _ := s.Add("fourth", "")

	s.Toggle(first.ID)
	s.Toggle(third.ID)

	got := s.List()
	wantIDs := []string{second.ID, fourth.ID, first.ID, third.ID}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q (%s), want %q", i, got[i].ID, got[i].Title, id)
		}
	}
	seenDone := false
	for _, task := range got {
		if task.Completed {
			seenDone = true
		} else if seenDone {
			t.Fatalf("incomplete task %q listed after a completed one", task.Title)
		}
	}

	// Canonical insertion order is not mutated by the derived view.
	s.SetOrdering(model.OrderInsertion)
	got = s.List()
	wantIDs = []string{first.ID, second.ID, third.ID, fourth.ID}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("canonical position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestListReturnsFreshSnapshot(t *testing.T) {
	s := New(model.OrderInsertion)
	task, _ := s.Add("original", "")

	snapshot := s.List()
	snapshot[0].Title = "mutated"

	got, _ := s.Get(task.ID)
	if got.Title != "original" {
		t.Fatalf("expected store unaffected by snapshot mutation, got %q", got.Title)
	}
}

func TestNewFallsBackToInsertionOrdering(t *testing.T) {
	s := New(model.Ordering("bogus"))
	if s.Ordering() != model.OrderInsertion {
		t.Fatalf("expected insertion fallback, got %q", s.Ordering())
	}
	s.SetOrdering(model.Ordering("still bogus"))
	if s.Ordering() != model.OrderInsertion {
		t.Fatalf("expected invalid SetOrdering ignored, got %q", s.Ordering())
	}
}

func TestBuyMilkLifecycle(t *testing.T) {
	s := New(model.OrderInsertion)
	task, ok := s.Add("Buy milk", "")
	if !ok {
		t.Fatal("add rejected")
	}

	got := s.List()
	if len(got) != 1 || got[0].Title != "Buy milk" || got[0].Completed {
		t.Fatalf("unexpected list after add: %+v", got)
	}

	s.Toggle(task.ID)
	got = s.List()
	if len(got) != 1 || !got[0].Completed {
		t.Fatalf("unexpected list after toggle: %+v", got)
	}

	s.Remove(task.ID)
	if got := s.List(); len(got) != 0 {
		t.Fatalf("expected empty list after remove, got %+v", got)
	}
}

package model

import (
	"errors"
	"testing"
)

func TestNewTaskAssignsUniqueIDs(t *testing.T) {
	a := NewTask("first", "")
	b := NewTask("second", "")
	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both were %q", a.ID)
	}
	if a.Completed || b.Completed {
		t.Fatal("expected new tasks to start incomplete")
	}
}

func TestNewTaskTrimsTitle(t *testing.T) {
	task := NewTask("  buy milk  ", "note")
	if task.Title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Note != "note" {
		t.Fatalf("expected note preserved, got %q", task.Note)
	}
}

func TestTaskValidate(t *testing.T) {
	task := NewTask("write docs", "")
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}

	task.Title = "   "
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}

	task = Task{Title: "no id"}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestParseOrdering(t *testing.T) {
	cases := []struct {
		in   string
		want Ordering
	}{
		{"insertion", OrderInsertion},
		{"Insert", OrderInsertion},
		{"active_first", OrderActiveFirst},
		{"active-first", OrderActiveFirst},
		{" ACTIVE ", OrderActiveFirst},
	}
	for _, tc := range cases {
		got, err := ParseOrdering(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q = %q, want %q", tc.in, got, tc.want)
		}
	}

	_, err := ParseOrdering("alphabetical")
	if err == nil || !errors.Is(err, ErrInvalidOrdering) {
		t.Fatalf("expected ErrInvalidOrdering, got: %v", err)
	}
}

func TestOrderingIsValid(t *testing.T) {
	if !OrderInsertion.IsValid() || !OrderActiveFirst.IsValid() {
		t.Fatal("expected built-in orderings to be valid")
	}
	if Ordering("priority").IsValid() {
		t.Fatal("expected unknown ordering to be invalid")
	}
}

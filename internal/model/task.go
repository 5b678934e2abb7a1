package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidOrdering = errors.New("model: invalid ordering")

// Ordering selects how the store derives its display order. Insertion keeps
// canonical append order; ActiveFirst stably partitions incomplete records
// ahead of completed ones without touching canonical order.
type Ordering string

const (
	OrderInsertion   Ordering = "insertion"
	OrderActiveFirst Ordering = "active_first"
)

func (o Ordering) IsValid() bool {
	switch o {
	case OrderInsertion, OrderActiveFirst:
		return true
	default:
		return false
	}
}

// ParseOrdering accepts the enum values plus the spellings users type into
// config and the command palette.
func ParseOrdering(raw string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "insertion", "insert":
		return OrderInsertion, nil
	case "active_first", "active-first", "active":
		return OrderActiveFirst, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrdering, raw)
	}
}

// Task is a single to-do entry. The ID is immutable once assigned; every
// other field is mutable in place.
type Task struct {
	ID        string
	Title     string
	Note      string
	Completed bool
}

// NewTask mints a record with a fresh random identifier, never a wall-clock
// one, so two additions in the same instant cannot collide.
func NewTask(title, note string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
		Note:  note,
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	return nil
}

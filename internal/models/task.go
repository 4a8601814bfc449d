package models

import (
	"time"

	"github.com/thenoetrevino/lanes/internal/types"
)

// Task represents a single card on the kanban board.
// Tasks are never mutated in place once they are part of a Board; the engine
// replaces them with modified copies so older snapshots stay valid.
type Task struct {
	ID                types.TaskID   `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Priority          types.Priority `json:"priority,omitempty"`
	Attachments       int            `json:"attachments,omitempty"`
	Comments          int            `json:"comments,omitempty"`
	Assignee          string         `json:"assignee,omitempty"`
	AIGeneratedPrompt string         `json:"aiGeneratedPrompt,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// Clone returns a copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// GetID returns the task id (used by quiet CLI output)
func (t *Task) GetID() string {
	return string(t.ID)
}

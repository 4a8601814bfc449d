package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/lanes/internal/types"
)

// Column represents a kanban board lane (e.g., "To Do", "In Progress", "Completed").
// TaskIDs is ordered top to bottom and never holds the same id twice.
type Column struct {
	ID        types.ColumnID    `json:"id"`
	Title     string            `json:"title"`
	TaskIDs   []types.TaskID    `json:"taskIds"`
	Color     types.ColumnColor `json:"color"`
	Icon      string            `json:"icon,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Clone returns a copy of the column with its own TaskIDs slice
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	cp := *c
	cp.TaskIDs = slices.Clone(c.TaskIDs)
	if cp.TaskIDs == nil {
		cp.TaskIDs = []types.TaskID{}
	}
	return &cp
}

// IndexOf returns the position of taskID in the column, or -1
func (c *Column) IndexOf(taskID types.TaskID) int {
	return slices.Index(c.TaskIDs, taskID)
}

// GetID returns the column id (used by quiet CLI output)
func (c *Column) GetID() string {
	return string(c.ID)
}

package models

import (
	"time"

	"github.com/thenoetrevino/lanes/internal/types"
)

// ============================================================================
// DEFAULT BOARD
// ============================================================================

// Identifiers of the columns seeded on a fresh board
const (
	DefaultTodoColumnID       types.ColumnID = "todo"
	DefaultInProgressColumnID types.ColumnID = "in-progress"
	DefaultCompletedColumnID  types.ColumnID = "completed"
)

// DefaultBoard returns the board a new user starts with: three empty columns
func DefaultBoard(now time.Time) *Board {
	return &Board{
		Tasks: map[types.TaskID]*Task{},
		Columns: []*Column{
			{
				ID:        DefaultTodoColumnID,
				Title:     "To Do",
				TaskIDs:   []types.TaskID{},
				Color:     types.ColorBlue,
				Icon:      "⏳",
				CreatedAt: now,
			},
			{
				ID:        DefaultInProgressColumnID,
				Title:     "In Progress",
				TaskIDs:   []types.TaskID{},
				Color:     types.ColorPurple,
				Icon:      "🔄",
				CreatedAt: now,
			},
			{
				ID:        DefaultCompletedColumnID,
				Title:     "Completed",
				TaskIDs:   []types.TaskID{},
				Color:     types.ColorGreen,
				Icon:      "✅",
				CreatedAt: now,
			},
		},
	}
}

// ============================================================================
// LIMITS
// ============================================================================

// MaxTitleLength is the longest task or column title accepted by the engine
const MaxTitleLength = 255

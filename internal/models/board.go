package models

import (
	"fmt"

	"github.com/thenoetrevino/lanes/internal/types"
)

// Board is the aggregate root: every task and the ordered list of columns.
//
// A Board returned by the engine is an immutable snapshot. Callers read it
// through the accessors below and hand it back to the engine to derive the
// next snapshot; they must not modify maps, slices or the pointed-to values.
type Board struct {
	Tasks   map[types.TaskID]*Task `json:"tasks"`
	Columns []*Column              `json:"columns"`
}

// Location is where a task currently sits on the board
type Location struct {
	ColumnID types.ColumnID
	Index    int
}

// NewBoard returns an empty board with no columns
func NewBoard() *Board {
	return &Board{
		Tasks:   map[types.TaskID]*Task{},
		Columns: []*Column{},
	}
}

// ColumnList returns the columns in display order
func (b *Board) ColumnList() []*Column {
	return b.Columns
}

// Column returns the column with the given id
func (b *Board) Column(id types.ColumnID) (*Column, error) {
	idx := b.ColumnIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	return b.Columns[idx], nil
}

// ColumnIndex returns the position of the column in the board, or -1
func (b *Board) ColumnIndex(id types.ColumnID) int {
	for i, col := range b.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the given id exists
func (b *Board) HasColumn(id types.ColumnID) bool {
	return b.ColumnIndex(id) >= 0
}

// Task returns the task with the given id
func (b *Board) Task(id types.TaskID) (*Task, error) {
	task, ok := b.Tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return task, nil
}

// TasksIn returns the tasks of a column in display order.
// Ids with no backing task are skipped; a valid board never has any.
func (b *Board) TasksIn(columnID types.ColumnID) ([]*Task, error) {
	col, err := b.Column(columnID)
	if err != nil {
		return nil, err
	}

	tasks := make([]*Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if task, ok := b.Tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Locate finds the column holding the task and the task's index within it.
// It scans every column; a task appears in at most one.
func (b *Board) Locate(taskID types.TaskID) (Location, error) {
	for _, col := range b.Columns {
		if idx := col.IndexOf(taskID); idx >= 0 {
			return Location{ColumnID: col.ID, Index: idx}, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
}

// TaskCount returns the number of tasks on the board
func (b *Board) TaskCount() int {
	return len(b.Tasks)
}

// ShallowCopy returns a new board whose map and slice are fresh but whose
// tasks and columns are shared with b. The engine uses it to derive the next
// snapshot and then swaps in copies of whatever it changes.
func (b *Board) ShallowCopy() *Board {
	cp := &Board{
		Tasks:   make(map[types.TaskID]*Task, len(b.Tasks)),
		Columns: make([]*Column, len(b.Columns)),
	}
	for id, task := range b.Tasks {
		cp.Tasks[id] = task
	}
	copy(cp.Columns, b.Columns)
	return cp
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cp := &Board{
		Tasks:   make(map[types.TaskID]*Task, len(b.Tasks)),
		Columns: make([]*Column, len(b.Columns)),
	}
	for id, task := range b.Tasks {
		cp.Tasks[id] = task.Clone()
	}
	for i, col := range b.Columns {
		cp.Columns[i] = col.Clone()
	}
	return cp
}

// Validate checks the structural invariants of the board:
// every referenced task exists, every task sits in exactly one column, column
// ids are unique, and no task was updated before it was created.
func (b *Board) Validate() error {
	if b.Tasks == nil {
		return fmt.Errorf("%w: tasks map is missing", ErrInvariant)
	}

	columnSeen := make(map[types.ColumnID]bool, len(b.Columns))
	taskSeen := make(map[types.TaskID]types.ColumnID, len(b.Tasks))

	for i, col := range b.Columns {
		if col == nil {
			return fmt.Errorf("%w: column %d is empty", ErrInvariant, i)
		}
		if col.ID == "" {
			return fmt.Errorf("%w: column %d has no id", ErrInvariant, i)
		}
		if columnSeen[col.ID] {
			return fmt.Errorf("%w: duplicate column id %q", ErrInvariant, col.ID)
		}
		columnSeen[col.ID] = true

		for _, taskID := range col.TaskIDs {
			if _, ok := b.Tasks[taskID]; !ok {
				return fmt.Errorf("%w: column %q references unknown task %q", ErrInvariant, col.ID, taskID)
			}
			if owner, dup := taskSeen[taskID]; dup {
				return fmt.Errorf("%w: task %q appears in column %q and column %q", ErrInvariant, taskID, owner, col.ID)
			}
			taskSeen[taskID] = col.ID
		}
	}

	for id, task := range b.Tasks {
		if task == nil {
			return fmt.Errorf("%w: task %q is empty", ErrInvariant, id)
		}
		if task.ID != id {
			return fmt.Errorf("%w: task stored under %q has id %q", ErrInvariant, id, task.ID)
		}
		if _, placed := taskSeen[id]; !placed {
			return fmt.Errorf("%w: task %q is not in any column", ErrInvariant, id)
		}
		if task.UpdatedAt.Before(task.CreatedAt) {
			return fmt.Errorf("%w: task %q updated before it was created", ErrInvariant, id)
		}
	}

	return nil
}

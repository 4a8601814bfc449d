package task

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// Service defines all task-related board mutations.
//
// Every method treats the given board as read-only and returns a new board
// snapshot. On error the returned board is nil and the input is untouched, so
// the caller keeps using its previous snapshot.
type Service interface {
	CreateTask(state *models.Board, req CreateTaskRequest) (*models.Board, *models.Task, error)
	EditTask(state *models.Board, req EditTaskRequest) (*models.Board, error)
	UpdateTaskDetails(state *models.Board, req UpdateDetailsRequest) (*models.Board, error)
	ApplyGeneratedPrompt(state *models.Board, taskID types.TaskID, prompt string) (*models.Board, error)
	DeleteTask(state *models.Board, taskID types.TaskID) (*models.Board, error)
	MoveTask(state *models.Board, req MoveTaskRequest) (*models.Board, error)
}

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	ColumnID    types.ColumnID
	Title       string
	Description string
}

// EditTaskRequest encapsulates the text fields replaced by an edit
type EditTaskRequest struct {
	TaskID      types.TaskID
	Title       string
	Description string
}

// UpdateDetailsRequest carries optional metadata changes; nil fields are left alone
type UpdateDetailsRequest struct {
	TaskID      types.TaskID
	Priority    *types.Priority
	Assignee    *string
	Attachments *int
	Comments    *int
}

// MoveTaskRequest describes a drop: the task is inserted immediately before
// AnchorID. AnchorID may name a task, a column (dropped onto the column body,
// meaning the end of that column), or be empty (end of TargetColumnID).
type MoveTaskRequest struct {
	TaskID         types.TaskID
	TargetColumnID types.ColumnID
	AnchorID       string
}

// service implements Service. It holds no board state.
type service struct {
	now   func() time.Time
	newID func() string
}

// Option configures a task service
type Option func(*service)

// WithClock overrides the time source used for createdAt/updatedAt
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides how new task ids are minted
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// NewService creates a new task service
func NewService(opts ...Option) Service {
	s := &service{
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask appends a new task to the end of the column
func (s *service) CreateTask(state *models.Board, req CreateTaskRequest) (*models.Board, *models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, nil, err
	}

	if _, err := state.Column(req.ColumnID); err != nil {
		return nil, nil, err
	}
	colIdx := state.ColumnIndex(req.ColumnID)

	id := types.TaskID(s.newID())
	if _, exists := state.Tasks[id]; exists {
		return nil, nil, models.NewValidationError("generated task ID collides with an existing task")
	}

	now := s.now()
	task := &models.Task{
		ID:          id,
		Title:       title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := state.ShallowCopy()
	next.Tasks[id] = task

	col := state.Columns[colIdx].Clone()
	col.TaskIDs = append(col.TaskIDs, id)
	next.Columns[colIdx] = col

	return next, task, nil
}

// EditTask replaces the title and description of a task
func (s *service) EditTask(state *models.Board, req EditTaskRequest) (*models.Board, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	return s.updateTask(state, req.TaskID, func(t *models.Task) error {
		t.Title = title
		t.Description = req.Description
		return nil
	})
}

// UpdateTaskDetails changes priority, assignee and the display counters
func (s *service) UpdateTaskDetails(state *models.Board, req UpdateDetailsRequest) (*models.Board, error) {
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if (req.Attachments != nil && *req.Attachments < 0) || (req.Comments != nil && *req.Comments < 0) {
		return nil, ErrInvalidCounter
	}

	return s.updateTask(state, req.TaskID, func(t *models.Task) error {
		if req.Priority != nil {
			t.Priority = *req.Priority
		}
		if req.Assignee != nil {
			t.Assignee = strings.TrimSpace(*req.Assignee)
		}
		if req.Attachments != nil {
			t.Attachments = *req.Attachments
		}
		if req.Comments != nil {
			t.Comments = *req.Comments
		}
		return nil
	})
}

// ApplyGeneratedPrompt commits AI-generated prompt text to a task.
// The prompt replaces the description and is kept in AIGeneratedPrompt.
func (s *service) ApplyGeneratedPrompt(state *models.Board, taskID types.TaskID, prompt string) (*models.Board, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	return s.updateTask(state, taskID, func(t *models.Task) error {
		t.Description = prompt
		t.AIGeneratedPrompt = prompt
		return nil
	})
}

// DeleteTask removes a task from the board and from whichever column holds it.
// Deleting a task that is already gone (or an empty id) returns the board unchanged.
func (s *service) DeleteTask(state *models.Board, taskID types.TaskID) (*models.Board, error) {
	if taskID == "" {
		return state, nil
	}

	_, inTasks := state.Tasks[taskID]
	loc, locErr := state.Locate(taskID)
	if !inTasks && locErr != nil {
		return state, nil
	}

	next := state.ShallowCopy()
	delete(next.Tasks, taskID)

	if locErr == nil {
		colIdx := state.ColumnIndex(loc.ColumnID)
		col := state.Columns[colIdx].Clone()
		col.TaskIDs = slices.Delete(col.TaskIDs, loc.Index, loc.Index+1)
		next.Columns[colIdx] = col
	}

	return next, nil
}

// MoveTask relocates a task so it sits immediately before the anchor.
//
// The destination is resolved in this order: an anchor naming a column means
// the end of that column; an anchor naming a task means that task's column at
// that task's index; anything else means the end of TargetColumnID. Dropping a
// task onto itself is a no-op. Moves never touch updatedAt.
func (s *service) MoveTask(state *models.Board, req MoveTaskRequest) (*models.Board, error) {
	if req.TaskID == "" {
		return nil, ErrEmptyTaskID
	}

	src, err := state.Locate(req.TaskID)
	if err != nil {
		return nil, err
	}

	if req.AnchorID == string(req.TaskID) {
		return state, nil
	}

	destID, insertAt, err := resolveDestination(state, req)
	if err != nil {
		return nil, err
	}

	next := state.ShallowCopy()
	srcIdx := state.ColumnIndex(src.ColumnID)

	if destID == src.ColumnID {
		// Splice out at the old index, then splice in at the anchor's index as
		// it was before the removal.
		col := state.Columns[srcIdx].Clone()
		col.TaskIDs = slices.Delete(col.TaskIDs, src.Index, src.Index+1)
		col.TaskIDs = slices.Insert(col.TaskIDs, min(insertAt, len(col.TaskIDs)), req.TaskID)
		next.Columns[srcIdx] = col
		return next, nil
	}

	srcCol := state.Columns[srcIdx].Clone()
	srcCol.TaskIDs = slices.Delete(srcCol.TaskIDs, src.Index, src.Index+1)
	next.Columns[srcIdx] = srcCol

	destIdx := state.ColumnIndex(destID)
	destCol := state.Columns[destIdx].Clone()
	destCol.TaskIDs = slices.Insert(destCol.TaskIDs, min(insertAt, len(destCol.TaskIDs)), req.TaskID)
	next.Columns[destIdx] = destCol

	return next, nil
}

// resolveDestination works out the destination column and insertion index of a move
func resolveDestination(state *models.Board, req MoveTaskRequest) (types.ColumnID, int, error) {
	if req.AnchorID != "" {
		if col, err := state.Column(types.ColumnID(req.AnchorID)); err == nil {
			return col.ID, len(col.TaskIDs), nil
		}
		if loc, err := state.Locate(types.TaskID(req.AnchorID)); err == nil {
			return loc.ColumnID, loc.Index, nil
		}
	}

	col, err := state.Column(req.TargetColumnID)
	if err != nil {
		return "", 0, err
	}
	return col.ID, len(col.TaskIDs), nil
}

// updateTask copies a task, applies fn to the copy and refreshes updatedAt
func (s *service) updateTask(state *models.Board, taskID types.TaskID, fn func(*models.Task) error) (*models.Board, error) {
	if taskID == "" {
		return nil, ErrEmptyTaskID
	}

	current, err := state.Task(taskID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}

	updated.UpdatedAt = s.now()
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		updated.UpdatedAt = updated.CreatedAt
	}

	next := state.ShallowCopy()
	next.Tasks[taskID] = updated
	return next, nil
}

// validateTitle trims the title and checks its length
func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len(title) > models.MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

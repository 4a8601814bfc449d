package column

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// Service defines all column-related board mutations.
// Like the task service it derives new snapshots and never modifies its input.
type Service interface {
	AddColumn(state *models.Board, req AddColumnRequest) (*models.Board, *models.Column, error)
	RenameColumn(state *models.Board, id types.ColumnID, title string) (*models.Board, error)
	DeleteColumn(state *models.Board, id types.ColumnID) (*models.Board, error)
}

// AddColumnRequest encapsulates data for creating a column
type AddColumnRequest struct {
	Title string
	Color types.ColumnColor // Defaults to gray when empty
	Icon  string
}

// service implements Service
type service struct {
	now   func() time.Time
	newID func() string
}

// Option configures a column service
type Option func(*service)

// WithClock overrides the time source used for createdAt
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides how new column ids are minted
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// NewService creates a new column service
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

// AddColumn appends an empty column to the right end of the board
func (s *service) AddColumn(state *models.Board, req AddColumnRequest) (*models.Board, *models.Column, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, nil, err
	}

	color := req.Color
	if color == "" {
		color = types.ColorGray
	}
	if !color.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	id := types.ColumnID(s.newID())
	if state.HasColumn(id) {
		return nil, nil, models.NewValidationError("generated column ID collides with an existing column")
	}

	col := &models.Column{
		ID:        id,
		Title:     title,
		TaskIDs:   []types.TaskID{},
		Color:     color,
		Icon:      strings.TrimSpace(req.Icon),
		CreatedAt: s.now(),
	}

	next := state.ShallowCopy()
	next.Columns = append(next.Columns, col)
	return next, col, nil
}

// RenameColumn changes the display title of a column
func (s *service) RenameColumn(state *models.Board, id types.ColumnID, title string) (*models.Board, error) {
	if id == "" {
		return nil, ErrEmptyColumnID
	}

	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	if _, err := state.Column(id); err != nil {
		return nil, err
	}
	idx := state.ColumnIndex(id)

	next := state.ShallowCopy()
	col := state.Columns[idx].Clone()
	col.Title = title
	next.Columns[idx] = col
	return next, nil
}

// DeleteColumn removes a column and every task it contains.
// The column is the only container of its tasks, so none can be left behind.
func (s *service) DeleteColumn(state *models.Board, id types.ColumnID) (*models.Board, error) {
	if id == "" {
		return nil, ErrEmptyColumnID
	}

	col, err := state.Column(id)
	if err != nil {
		return nil, err
	}
	idx := state.ColumnIndex(id)

	next := state.ShallowCopy()
	for _, taskID := range col.TaskIDs {
		delete(next.Tasks, taskID)
	}
	next.Columns = slices.Delete(next.Columns, idx, idx+1)
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

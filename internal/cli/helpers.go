package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// ParsePriority converts a priority flag value to types.Priority.
// "none" and the empty string clear the priority.
func ParsePriority(s string) (types.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return types.PriorityNone, nil
	case "low":
		return types.PriorityLow, nil
	case "medium", "med":
		return types.PriorityMedium, nil
	case "high":
		return types.PriorityHigh, nil
	default:
		return "", models.NewValidationError(fmt.Sprintf("invalid priority %q (must be: none, low, medium, high)", s))
	}
}

// ParseColor converts a color flag value to types.ColumnColor
func ParseColor(s string) (types.ColumnColor, error) {
	color := types.ColumnColor(strings.ToLower(strings.TrimSpace(s)))
	if color == "" {
		return types.ColorGray, nil
	}
	if !color.Valid() {
		names := make([]string, len(types.ColumnColors))
		for i, c := range types.ColumnColors {
			names[i] = string(c)
		}
		return "", models.NewValidationError(fmt.Sprintf("invalid color %q (must be one of: %s)", s, strings.Join(names, ", ")))
	}
	return color, nil
}

// ReadDescription returns the flag value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ResolveColumn finds a column by exact id, then by case-insensitive title
func ResolveColumn(board *models.Board, ref string) (*models.Column, error) {
	if col, err := board.Column(types.ColumnID(ref)); err == nil {
		return col, nil
	}

	var match *models.Column
	for _, col := range board.Columns {
		if strings.EqualFold(col.Title, strings.TrimSpace(ref)) {
			if match != nil {
				return nil, models.NewValidationError(fmt.Sprintf("column title %q is ambiguous, use the column id", ref))
			}
			match = col
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", models.ErrColumnNotFound, ref)
	}
	return match, nil
}

// ResolveTask finds a task by exact id or by a unique id prefix
func ResolveTask(board *models.Board, ref string) (*models.Task, error) {
	if ref == "" {
		return nil, models.NewValidationError("task id is required")
	}
	if t, err := board.Task(types.TaskID(ref)); err == nil {
		return t, nil
	}

	var match *models.Task
	for id, t := range board.Tasks {
		if strings.HasPrefix(string(id), ref) {
			if match != nil {
				return nil, models.NewValidationError(fmt.Sprintf("task id prefix %q is ambiguous", ref))
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", models.ErrTaskNotFound, ref)
	}
	return match, nil
}

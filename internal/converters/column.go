package converters

import (
	"fmt"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// ColumnDocument is the persisted shape of a column
type ColumnDocument struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	TaskIDs   []string `json:"taskIds"`
	Color     string   `json:"color"`
	Icon      string   `json:"icon,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

// ColumnToDocument converts a domain column into its persisted shape.
// TaskIDs is always emitted as an array, never null.
func ColumnToDocument(c *models.Column) ColumnDocument {
	ids := make([]string, len(c.TaskIDs))
	for i, id := range c.TaskIDs {
		ids[i] = string(id)
	}
	return ColumnDocument{
		ID:        string(c.ID),
		Title:     c.Title,
		TaskIDs:   ids,
		Color:     string(c.Color),
		Icon:      c.Icon,
		CreatedAt: FormatTimestamp(c.CreatedAt),
	}
}

// ColumnFromValue converts a revived JSON object into a domain column
func ColumnFromValue(path string, v any) (*models.Column, error) {
	obj, err := asObject(path, v)
	if err != nil {
		return nil, err
	}

	id, err := stringField(obj, path, "id", true)
	if err != nil {
		return nil, err
	}
	title, err := stringField(obj, path, "title", true)
	if err != nil {
		return nil, err
	}
	color, err := stringField(obj, path, "color", false)
	if err != nil {
		return nil, err
	}
	if color == "" {
		color = string(types.ColorGray)
	}
	if !types.ColumnColor(color).Valid() {
		return nil, fieldErr(path+".color", fmt.Sprintf("unknown color %q", color))
	}
	icon, err := stringField(obj, path, "icon", false)
	if err != nil {
		return nil, err
	}
	createdAt, err := timeField(obj, path, "createdAt")
	if err != nil {
		return nil, err
	}

	rawIDs, ok := obj["taskIds"]
	if !ok || rawIDs == nil {
		return nil, fieldErr(path+".taskIds", "is required")
	}
	list, ok := rawIDs.([]any)
	if !ok {
		return nil, fieldErr(path+".taskIds", "must be an array")
	}

	taskIDs := make([]types.TaskID, 0, len(list))
	for i, item := range list {
		switch val := item.(type) {
		case string:
			taskIDs = append(taskIDs, types.TaskID(val))
		case RevivedTime:
			taskIDs = append(taskIDs, types.TaskID(val.Raw))
		default:
			return nil, fieldErr(fmt.Sprintf("%s.taskIds[%d]", path, i), "must be a string")
		}
	}

	return &models.Column{
		ID:        types.ColumnID(id),
		Title:     title,
		TaskIDs:   taskIDs,
		Color:     types.ColumnColor(color),
		Icon:      icon,
		CreatedAt: createdAt,
	}, nil
}

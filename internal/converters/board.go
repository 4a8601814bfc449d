package converters

import (
	"fmt"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// BoardDocument is the persisted shape of the whole board
type BoardDocument struct {
	Tasks   map[string]TaskDocument `json:"tasks"`
	Columns []ColumnDocument        `json:"columns"`
}

// BoardToDocument converts a board into its persisted shape
func BoardToDocument(b *models.Board) BoardDocument {
	doc := BoardDocument{
		Tasks:   make(map[string]TaskDocument, len(b.Tasks)),
		Columns: make([]ColumnDocument, 0, len(b.Columns)),
	}
	for id, t := range b.Tasks {
		doc.Tasks[string(id)] = TaskToDocument(t)
	}
	for _, c := range b.Columns {
		doc.Columns = append(doc.Columns, ColumnToDocument(c))
	}
	return doc
}

// BoardFromValue converts a revived JSON value into a board.
// Both "tasks" and "columns" must be present. Structural invariants are not
// checked here; callers run Board.Validate on the result.
func BoardFromValue(v any) (*models.Board, error) {
	obj, err := asObject("board", v)
	if err != nil {
		return nil, err
	}

	rawTasks, ok := obj["tasks"]
	if !ok || rawTasks == nil {
		return nil, fieldErr("board.tasks", "is required")
	}
	taskObj, err := asObject("board.tasks", rawTasks)
	if err != nil {
		return nil, err
	}

	rawColumns, ok := obj["columns"]
	if !ok || rawColumns == nil {
		return nil, fieldErr("board.columns", "is required")
	}
	columnList, ok := rawColumns.([]any)
	if !ok {
		return nil, fieldErr("board.columns", "must be an array")
	}

	b := models.NewBoard()
	for key, raw := range taskObj {
		path := fmt.Sprintf("board.tasks[%q]", key)
		t, err := TaskFromValue(path, raw)
		if err != nil {
			return nil, err
		}
		if string(t.ID) != key {
			return nil, fieldErr(path+".id", fmt.Sprintf("does not match its key (%q)", t.ID))
		}
		b.Tasks[types.TaskID(key)] = t
	}

	for i, raw := range columnList {
		c, err := ColumnFromValue(fmt.Sprintf("board.columns[%d]", i), raw)
		if err != nil {
			return nil, err
		}
		b.Columns = append(b.Columns, c)
	}

	return b, nil
}

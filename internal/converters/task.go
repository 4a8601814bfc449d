package converters

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/types"
)

// TaskDocument is the persisted shape of a task
type TaskDocument struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Priority          string `json:"priority,omitempty"`
	Attachments       int    `json:"attachments,omitempty"`
	Comments          int    `json:"comments,omitempty"`
	Assignee          string `json:"assignee,omitempty"`
	AIGeneratedPrompt string `json:"aiGeneratedPrompt,omitempty"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// TaskToDocument converts a domain task into its persisted shape
func TaskToDocument(t *models.Task) TaskDocument {
	return TaskDocument{
		ID:                string(t.ID),
		Title:             t.Title,
		Description:       t.Description,
		Priority:          string(t.Priority),
		Attachments:       t.Attachments,
		Comments:          t.Comments,
		Assignee:          t.Assignee,
		AIGeneratedPrompt: t.AIGeneratedPrompt,
		CreatedAt:         FormatTimestamp(t.CreatedAt),
		UpdatedAt:         FormatTimestamp(t.UpdatedAt),
	}
}

// TaskFromValue converts a revived JSON object into a domain task.
// path is used to point at the offending field in errors.
func TaskFromValue(path string, v any) (*models.Task, error) {
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
	if strings.TrimSpace(title) == "" {
		return nil, fieldErr(path+".title", "cannot be empty")
	}
	description, err := stringField(obj, path, "description", false)
	if err != nil {
		return nil, err
	}
	priority, err := stringField(obj, path, "priority", false)
	if err != nil {
		return nil, err
	}
	if !types.Priority(priority).Valid() {
		return nil, fieldErr(path+".priority", fmt.Sprintf("unknown priority %q", priority))
	}
	assignee, err := stringField(obj, path, "assignee", false)
	if err != nil {
		return nil, err
	}
	prompt, err := stringField(obj, path, "aiGeneratedPrompt", false)
	if err != nil {
		return nil, err
	}
	attachments, err := countField(obj, path, "attachments")
	if err != nil {
		return nil, err
	}
	comments, err := countField(obj, path, "comments")
	if err != nil {
		return nil, err
	}
	createdAt, err := timeField(obj, path, "createdAt")
	if err != nil {
		return nil, err
	}
	updatedAt, err := timeField(obj, path, "updatedAt")
	if err != nil {
		return nil, err
	}

	return &models.Task{
		ID:                types.TaskID(id),
		Title:             title,
		Description:       description,
		Priority:          types.Priority(priority),
		Attachments:       attachments,
		Comments:          comments,
		Assignee:          assignee,
		AIGeneratedPrompt: prompt,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

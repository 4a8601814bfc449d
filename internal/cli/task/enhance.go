package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/models"
	taskservice "github.com/thenoetrevino/lanes/internal/services/task"
)

// EnhanceCmd returns the task enhance subcommand
func EnhanceCmd() *cobra.Command {
	categories := make([]string, 0)
	for _, c := range ai.Categories() {
		categories = append(categories, string(c))
	}

	cmd := &cobra.Command{
		Use:   "enhance [id]",
		Short: "Rewrite a task's title and description with AI",
		Long: fmt.Sprintf(`Ask the language model for a clearer title and a more detailed
description, then save them on the task.

Templates: %s

Examples:
  lanes task enhance 3f2a --template=coding

  # Preview without saving
  lanes task enhance 3f2a --template=marketing --dry-run --json
`, strings.Join(categories, ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: runEnhance,
	}

	addIDFlag(cmd)
	cmd.Flags().String("template", string(ai.CategoryGeneral), "Prompt template for the task's domain")
	cmd.Flags().String("api-key", "", "API key (defaults to the configured key)")
	cmd.Flags().Bool("dry-run", false, "Print the suggestion without saving it")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runEnhance(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	template, _ := cmd.Flags().GetString("template")
	apiKey, _ := cmd.Flags().GetString("api-key")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task enhance <id> --template=<template>"); err != nil {
		return err
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	if apiKey == "" {
		apiKey = cliInstance.App.APIKey()
	}

	board, err := cliInstance.App.Board(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "")
	}
	task, err := cli.ResolveTask(board, ref)
	if err != nil {
		return formatter.Fail(err, "Run 'lanes task list' to see available tasks")
	}

	enhanced, err := cliInstance.App.AI.Enhance(cmd.Context(), apiKey, ai.EnhanceRequest{
		Title:       task.Title,
		Description: task.Description,
		Category:    ai.Category(template),
	})
	if err != nil {
		return formatter.Fail(err, aiSuggestion(err))
	}

	if dryRun {
		if formatter.JSON {
			return formatter.JSONSuccess("enhancement", enhanced)
		}
		formatter.Printf("%s\n\n%s\n", styles.TitleStyle.Render(enhanced.Title), styles.RenderMarkdown(enhanced.Description))
		return nil
	}

	// The board may have changed during the request; the edit is applied to
	// the latest snapshot and fails if the task is gone.
	var updated *models.Task
	board, err = cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
		next, err := cliInstance.App.TaskService.EditTask(state, taskservice.EditTaskRequest{
			TaskID:      task.ID,
			Title:       enhanced.Title,
			Description: enhanced.Description,
		})
		if err != nil {
			return nil, err
		}
		updated, err = next.Task(task.ID)
		return next, err
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	return outputTask(formatter, board, updated, "enhanced")
}

func aiSuggestion(err error) string {
	if errors.Is(err, ai.ErrMissingAPIKey) {
		return "Set OPENAI_API_KEY, add ai.api_key to the config file, or pass --api-key"
	}
	return ""
}

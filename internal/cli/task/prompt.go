package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/ai"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// PromptCmd returns the task prompt subcommand
func PromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt [id]",
		Short: "Generate a coding-assistant prompt from a task",
		Long: `Turn a task into a detailed prompt for an AI coding assistant.
The prompt replaces the task's description and is kept on the task.

Examples:
  lanes task prompt 3f2a

  # Print the prompt only, without saving it
  lanes task prompt 3f2a --dry-run --quiet | pbcopy
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPrompt,
	}

	addIDFlag(cmd)
	cmd.Flags().String("api-key", "", "API key (defaults to the configured key)")
	cmd.Flags().Bool("dry-run", false, "Print the prompt without saving it")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runPrompt(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	apiKey, _ := cmd.Flags().GetString("api-key")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task prompt <id>"); err != nil {
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

	prompt, err := cliInstance.App.AI.GeneratePrompt(cmd.Context(), apiKey, ai.PromptRequest{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Attachments: task.Attachments,
		Comments:    task.Comments,
		Assignee:    task.Assignee,
	})
	if err != nil {
		return formatter.Fail(err, aiSuggestion(err))
	}

	if !dryRun {
		_, err = cliInstance.App.Mutate(cmd.Context(), func(state *models.Board) (*models.Board, error) {
			return cliInstance.App.TaskService.ApplyGeneratedPrompt(state, task.ID, prompt)
		})
		if err != nil {
			return formatter.Fail(err, "")
		}
	}

	if formatter.JSON {
		return formatter.JSONSuccess("prompt", map[string]any{
			"taskId": task.ID,
			"prompt": prompt,
			"saved":  !dryRun,
		})
	}

	formatter.Printf("%s\n", prompt)
	return nil
}

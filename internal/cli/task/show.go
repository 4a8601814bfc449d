package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/styles"
	"github.com/thenoetrevino/lanes/internal/converters"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its column, metadata and rendered description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	addIDFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ref := taskRef(cmd, args)
	formatter := cli.FormatterFor(cmd)
	if err := requireRef(formatter, ref, "lanes task show <id> or lanes task show --id=<id>"); err != nil {
		return err
	}

	cliInstance, cleanup, err := cli.Start(cmd, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	board, err := cliInstance.App.Board(cmd.Context())
	if err != nil {
		return formatter.Fail(err, "")
	}
	task, err := cli.ResolveTask(board, ref)
	if err != nil {
		return formatter.Fail(err, "Run 'lanes task list' to see available tasks")
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}
	if formatter.JSON {
		return formatter.JSONSuccess("task", viewOf(board, task))
	}

	formatter.Printf("%s\n", renderTask(board, task))
	return nil
}

func renderTask(board *models.Board, task *models.Task) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(string(task.ID)))
	content.WriteString("\n\n")

	field := func(label, value string) {
		content.WriteString(styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}

	if loc, err := board.Locate(task.ID); err == nil {
		column, _ := board.Column(loc.ColumnID)
		field("Column", fmt.Sprintf("%s (position %d)", columnTitle(column, loc.ColumnID), loc.Index+1))
	}
	if task.Priority != "" {
		content.WriteString(styles.LabelStyle.Render("Priority:") + " " + styles.RenderPriorityChip(task.Priority) + "\n")
	}
	if task.Assignee != "" {
		field("Assignee", task.Assignee)
	}
	if task.Attachments > 0 || task.Comments > 0 {
		field("Activity", fmt.Sprintf("%d attachment(s), %d comment(s)", task.Attachments, task.Comments))
	}
	field("Created", converters.FormatTimestamp(task.CreatedAt))
	field("Updated", converters.FormatTimestamp(task.UpdatedAt))

	if task.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(styles.RenderMarkdown(task.Description))
		content.WriteString("\n")
	}
	if task.AIGeneratedPrompt != "" && task.AIGeneratedPrompt != task.Description {
		content.WriteString(styles.SectionStyle.Render("Generated Prompt"))
		content.WriteString("\n")
		content.WriteString(styles.RenderMarkdown(task.AIGeneratedPrompt))
		content.WriteString("\n")
	}

	return styles.RenderCard(strings.TrimRight(content.String(), "\n"))
}

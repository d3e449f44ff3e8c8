package main

import (
	"fmt"

	"github.com/amonks/todoboard/internal/ui"
	"github.com/amonks/todoboard/todo"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List todos by column",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listStatus string
	listJSON   bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Only list todos with this status")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	addFlagAliases(listCmd)
}

func runList(cmd *cobra.Command, args []string) (err error) {
	statuses := todo.ValidStatuses()
	if listStatus != "" {
		status, err := todo.ParseStatus(listStatus)
		if err != nil {
			return err
		}
		statuses = []todo.Status{status}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close(&err)

	items := make([]todo.Todo, 0, s.store.Len())
	for _, status := range statuses {
		items = append(items, s.store.ListByStatus(status)...)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return encodeJSON(out, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, emptyListMessage(s.store.Len(), listStatus, statuses))
		return nil
	}

	fmt.Fprint(out, formatTodoTable(ui.NewRenderer(out, ui.ColorEnabled()), items))
	return nil
}

func formatTodoTable(renderer *lipgloss.Renderer, items []todo.Todo) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "TITLE", "CREATED", "COMPLETED"}, len(items))
	for _, item := range items {
		completed := ui.Muted(renderer, "-")
		if item.CompletedDate != nil {
			completed = *item.CompletedDate
		}
		builder.AddRow(
			fmt.Sprintf("%d", item.ID),
			ui.FormatStatus(renderer, item.Status),
			ui.TruncateCell(item.Title, ui.DefaultCellWidth),
			item.CreateDate,
			completed,
		)
	}
	return builder.String()
}

func emptyListMessage(total int, filter string, statuses []todo.Status) string {
	if total == 0 || filter == "" {
		return "No todos found."
	}
	return fmt.Sprintf("No todos found with status %s.", statuses[0])
}

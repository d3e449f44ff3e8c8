package main

import (
	"fmt"
	"io"

	"github.com/amonks/todoboard/internal/markdown"
	"github.com/amonks/todoboard/internal/ui"
	"github.com/amonks/todoboard/todo"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show todos in detail",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

const showLineWidth = 80

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) (err error) {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close(&err)

	items := make([]todo.Todo, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		item, ok := s.store.Get(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		items = append(items, item)
	}

	out := cmd.OutOrStdout()
	if showJSON {
		if err := encodeJSON(out, items); err != nil {
			return err
		}
		return notFoundError(missing)
	}

	renderer := ui.NewRenderer(out, ui.ColorEnabled())
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printTodoDetail(out, renderer, item)
	}
	return notFoundError(missing)
}

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(out io.Writer, renderer *lipgloss.Renderer, t todo.Todo) {
	fmt.Fprintf(out, "ID:        %d\n", t.ID)
	fmt.Fprintf(out, "Title:     %s\n", t.Title)
	fmt.Fprintf(out, "Status:    %s\n", ui.FormatStatus(renderer, t.Status))
	fmt.Fprintf(out, "Created:   %s\n", t.CreateDate)
	if t.CompletedDate != nil {
		fmt.Fprintf(out, "Completed: %s\n", *t.CompletedDate)
	}

	if description := markdown.Render(showLineWidth, 2, t.Description); description != "" {
		fmt.Fprintf(out, "\nDescription:\n%s\n", description)
	}
}

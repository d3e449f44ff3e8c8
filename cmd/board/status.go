package main

import (
	"fmt"
	"io"

	"github.com/amonks/todoboard/todo"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move a todo to another column",
	Long: `Move a todo to another column.

Status is one of Todo, "In Progress", or Done. Lowercase and hyphenated
spellings such as in-progress, doing, or complete are accepted.`,
	Aliases: []string{"mv"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := todo.ParseStatus(args[1])
		if err != nil {
			return err
		}
		return runChangeStatus(cmd.OutOrStdout(), status, args[:1])
	},
}

var todoCmd = &cobra.Command{
	Use:     "todo <id>...",
	Short:   "Move todos back to the Todo column",
	Aliases: []string{"reopen"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    statusRunE(todo.StatusTodo),
}

var startCmd = &cobra.Command{
	Use:   "start <id>...",
	Short: "Move todos to the In Progress column",
	Args:  cobra.MinimumNArgs(1),
	RunE:  statusRunE(todo.StatusInProgress),
}

var doneCmd = &cobra.Command{
	Use:     "done <id>...",
	Short:   "Move todos to the Done column",
	Aliases: []string{"finish", "complete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    statusRunE(todo.StatusDone),
}

func init() {
	rootCmd.AddCommand(moveCmd, todoCmd, startCmd, doneCmd)
}

func statusRunE(status todo.Status) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runChangeStatus(cmd.OutOrStdout(), status, args)
	}
}

func runChangeStatus(out io.Writer, status todo.Status, args []string) (err error) {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close(&err)

	var missing []int64
	for _, id := range ids {
		found, err := s.store.ChangeStatus(id, status)
		if err != nil {
			return err
		}
		if !found {
			missing = append(missing, id)
			continue
		}
		fmt.Fprintf(out, "Moved todo %d to %s\n", id, status)
	}
	return notFoundError(missing)
}

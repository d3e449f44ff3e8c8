package main

import (
	"errors"
	"os"

	"github.com/amonks/todoboard/internal/boardtui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive board",
	Long: `Open the interactive board.

The top pane adds todos: type a title, press tab for the description, and
enter (or ctrl+s) to add. Press esc to move to the board, where the arrow
keys select a card, 1/2/3 move it to Todo/In Progress/Done, and x removes it.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close(&err)

	return boardtui.Run(cmd.Context(), s.store)
}

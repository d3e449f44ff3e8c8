package main

import (
	"fmt"
	"os"

	"github.com/amonks/todoboard/internal/boardview"
	"github.com/amonks/todoboard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the board as three columns",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

var viewWidth int

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().IntVarP(&viewWidth, "width", "w", 0, "Board width in columns (default: terminal width)")
	addFlagAliases(viewCmd)
}

func runView(cmd *cobra.Command, args []string) (err error) {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close(&err)

	out := cmd.OutOrStdout()
	board := boardview.Render(s.store, boardview.Options{
		Width:    boardWidth(viewWidth, s.cfg.Display.Width),
		Renderer: ui.NewRenderer(out, ui.ColorEnabled()),
		Focused:  -1,
	})
	fmt.Fprintln(out, board)
	return nil
}

// boardWidth picks the flag width, then the configured width, then the
// terminal width.
func boardWidth(flagWidth, configWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if configWidth > 0 {
		return configWidth
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return boardview.DefaultWidth
}

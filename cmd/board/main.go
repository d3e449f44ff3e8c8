// Package main implements the board CLI: a three-column todo board.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "board",
	Short: "A todo board with Todo, In Progress, and Done columns",
	Long: `board keeps a list of todos in three columns: Todo, In Progress, and Done.

Todos are saved after every change. Storage, time format, and logging are
configured in ~/.config/todoboard/config.toml and ./board.toml, or with the
BOARD_STORAGE, BOARD_PATH, and BOARD_LOG_LEVEL environment variables.`,
	SilenceUsage: true,
}

var (
	rootStorage  string
	rootPath     string
	rootKey      string
	rootLogLevel string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootStorage, "storage", "", "Storage backend (file, sqlite, memory)")
	flags.StringVar(&rootPath, "path", "", "Storage directory (file) or database file (sqlite)")
	flags.StringVar(&rootKey, "key", "", "Name of the board to use")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// exitError carries a process exit code alongside an error.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	return e.code
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>...",
	Short:   "Remove todos from the board",
	Aliases: []string{"rm", "delete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) (err error) {
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
		if !s.store.Remove(id) {
			missing = append(missing, id)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed todo %d\n", id)
	}
	return notFoundError(missing)
}
